package registry

import "github.com/matzehuels/pagesmith/pkg/layout"

func hero() []Definition {
	return []Definition{
		{
			Type:        "hero-title",
			Label:       "Hero Title",
			Icon:        "Heading1",
			Category:    CategoryHero,
			Description: "Large centered page title",
			Defaults:    layout.Props{"text": "Hero Title"},
			Fallbacks: layout.Props{
				"text": "Hero Title", "className": "", "color": "#000000",
				"textAlign": "center", "fontSize": "3.5rem", "fontWeight": "bold",
			},
			Render: func(v View, _ Context) string {
				return `<h1 className="` + v.String("className") + `" style={{color: "` + v.String("color") +
					`", textAlign: "` + v.String("textAlign") + `", fontSize: "` + v.String("fontSize") +
					`", fontWeight: "` + v.String("fontWeight") + `"}}>` + v.String("text") + `</h1>`
			},
			Summary: func(v View) string { return summarize("Hero Title", v, "text") },
		},
		{
			Type:        "hero-subtitle",
			Label:       "Hero Subtitle",
			Icon:        "Heading2",
			Category:    CategoryHero,
			Description: "Supporting line below a hero title",
			Defaults:    layout.Props{"text": "Hero subtitle description"},
			Fallbacks: layout.Props{
				"text": "Hero subtitle description", "className": "", "color": "#666666",
				"textAlign": "center", "fontSize": "1.25rem", "fontWeight": "normal", "marginTop": "1rem",
			},
			Render: func(v View, _ Context) string {
				return `<p className="` + v.String("className") + `" style={{color: "` + v.String("color") +
					`", textAlign: "` + v.String("textAlign") + `", fontSize: "` + v.String("fontSize") +
					`", fontWeight: "` + v.String("fontWeight") + `", marginTop: "` + v.String("marginTop") +
					`"}}>` + v.String("text") + `</p>`
			},
			Summary: func(v View) string { return summarize("Hero Subtitle", v, "text") },
		},
		{
			Type:        "hero-section",
			Label:       "Hero Section",
			Icon:        "LayoutTemplate",
			Category:    CategoryHero,
			Description: "Full-width banner section",
			Defaults:    layout.Props{"content": "Hero Section Content"},
			Fallbacks: layout.Props{
				"content": "Hero Section Content", "className": "", "backgroundColor": "#ffffff",
				"minHeight": "500px", "alignItems": "center", "justifyContent": "center", "textAlign": "center",
			},
			Render: func(v View, _ Context) string {
				return `<section className="` + v.String("className") + `" style={{backgroundColor: "` +
					v.String("backgroundColor") + `", minHeight: "` + v.String("minHeight") +
					`", display: "flex", alignItems: "` + v.String("alignItems") + `", justifyContent: "` +
					v.String("justifyContent") + `", textAlign: "` + v.String("textAlign") + `"}}>
    <div className="max-w-4xl mx-auto">
      ` + v.String("content") + `
    </div>
  </section>`
			},
			Summary: func(v View) string { return summarize("Hero Section", v, "content") },
		},
		{
			Type:        "text-rotate",
			Label:       "Text Rotate",
			Icon:        "RefreshCw",
			Category:    CategoryHero,
			Description: "Prefix followed by animated rotating words",
			Defaults:    layout.Props{"prefix": "Make it ", "texts": []any{"work!", "fancy ✽", "right", "fast", "fun", "rock", "🕶️🕶️🕶️"}},
			Fallbacks: layout.Props{
				"texts":            []any{"work!", "fancy ✽", "right", "fast", "fun", "rock", "🕶️🕶️🕶️"},
				"className":        "",
				"prefixColor":      "#000000",
				"fontSize":         "2rem",
				"fontWeight":       "normal",
				"prefix":           "Make it ",
				"backgroundColor":  "#ff5941",
				"textColor":        "#ffffff",
				"staggerFrom":      "last",
				"staggerDuration":  0.025,
				"rotationInterval": 2000,
			},
			Imports: []Import{
				{uiModule, "TextRotate"},
				{"motion/react", "LayoutGroup"},
				{"motion/react", "motion"},
			},
			Render: func(v View, _ Context) string {
				return `<div className="` + v.String("className") + `">
    <div className="flex items-center justify-center">
      <span className="mr-2" style={{color: "` + v.String("prefixColor") + `", fontSize: "` + v.String("fontSize") +
					`", fontWeight: "` + v.String("fontWeight") + `"}}>` + v.String("prefix") + `</span>
      <TextRotate
        texts={` + JSON(v.Value("texts")) + `}
        mainClassName="px-3 py-2 rounded-lg overflow-hidden justify-center"
        style={{backgroundColor: "` + v.String("backgroundColor") + `", color: "` + v.String("textColor") +
					`", fontSize: "` + v.String("fontSize") + `"}}
        staggerFrom="` + v.String("staggerFrom") + `"
        initial={{ y: "100%" }}
        animate={{ y: 0 }}
        exit={{ y: "-120%" }}
        staggerDuration={` + v.String("staggerDuration") + `}
        splitLevelClassName="overflow-hidden pb-1"
        transition={{ type: "spring", damping: 30, stiffness: 400 }}
        rotationInterval={` + v.String("rotationInterval") + `}
      />
    </div>
  </div>`
			},
			Summary: func(v View) string {
				return truncate("Text Rotate: "+v.String("prefix")+JSON(v.Value("texts")), 60)
			},
		},
		{
			Type:        "gooey-text",
			Label:       "Gooey Text",
			Icon:        "Droplets",
			Category:    CategoryHero,
			Description: "Words morphing into each other",
			Defaults:    layout.Props{"texts": []any{"Design", "Engineering", "Is", "Awesome"}},
			Fallbacks: layout.Props{
				"texts":          []any{"Design", "Engineering", "Is", "Awesome"},
				"morphTime":      1,
				"cooldownTime":   0.25,
				"className":      "",
				"gooeyClassName": "font-bold",
				"textClassName":  "",
			},
			Imports: []Import{{uiModule, "GooeyText"}},
			Render: func(v View, _ Context) string {
				return `<div className="h-[200px] flex items-center justify-center ` + v.String("className") + `">
    <GooeyText
      texts={` + JSON(v.Value("texts")) + `}
      morphTime={` + v.String("morphTime") + `}
      cooldownTime={` + v.String("cooldownTime") + `}
      className="` + v.String("gooeyClassName") + `"
      textClassName="` + v.String("textClassName") + `"
    />
  </div>`
			},
			Summary: func(v View) string { return truncate("Gooey Text: "+JSON(v.Value("texts")), 60) },
		},
		{
			Type:        "gradient-headline",
			Label:       "Gradient Headline",
			Icon:        "Palette",
			Category:    CategoryHero,
			Description: "Headline with a color gradient",
			Defaults:    layout.Props{"text": "Gradient Headline", "fromColor": "from-blue-500", "toColor": "to-cyan-500"},
			Fallbacks: layout.Props{
				"text": "Gradient Headline", "fromColor": "from-blue-500", "toColor": "to-cyan-500",
				"element": "h2", "className": "text-4xl font-bold",
			},
			Imports: []Import{{uiModule, "GradientHeadline"}},
			Render: func(v View, _ Context) string {
				return `<GradientHeadline text="` + v.String("text") + `" fromColor="` + v.String("fromColor") +
					`" toColor="` + v.String("toColor") + `" element="` + v.String("element") +
					`" className="` + v.String("className") + `" />`
			},
			Summary: func(v View) string { return summarize("Gradient Headline", v, "text") },
		},
	}
}
