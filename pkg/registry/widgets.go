package registry

import (
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

// widget describes a prebuilt component whose generated code passes every
// prop through as an attribute.
type widget struct {
	typ, label, icon, description string
	category                      Category
	symbol                        string // import symbol; "default as X" for default exports
	defaults                      layout.Props
	rename                        map[string]string
	children                      bool
	summaryKeys                   []string
}

func (w widget) definition() Definition {
	tag := w.symbol
	if name, ok := strings.CutPrefix(tag, "default as "); ok {
		tag = name
	}
	return Definition{
		Type:        w.typ,
		Label:       w.label,
		Icon:        w.icon,
		Category:    w.category,
		Description: w.description,
		Defaults:    w.defaults,
		Imports:     []Import{{uiModule + "/" + w.typ, w.symbol}},
		Render: func(v View, ctx Context) string {
			attrs := spreadAttrs(v, w.rename)
			if w.children && ctx.Children != "" {
				return "<" + tag + attrs + ">" + ctx.Children + "</" + tag + ">"
			}
			return "<" + tag + attrs + " />"
		},
		Summary: func(v View) string {
			s := summarize(w.label, v, w.summaryKeys...)
			for _, k := range []string{"items", "dockItems", "testimonials", "mediaItems", "navigationItems", "menu"} {
				if n := len(v.List(k)); n > 0 {
					return s + " (" + format(n) + " " + strings.ToLower(k) + ")"
				}
			}
			return s
		},
	}
}

func interactive() []Definition {
	return definitions(
		widget{
			typ:         "animated-tooltip",
			label:       "Animated Tooltip",
			icon:        "InfoIcon",
			description: "Hover tooltips with animation",
			category:    CategoryInteractive,
			symbol:      "AnimatedTooltip",
			defaults: layout.Props{
				"items": []any{
					map[string]any{"id": 1, "name": "John Doe", "designation": "Software Engineer", "image": "/placeholder.svg?height=100&width=100"},
					map[string]any{"id": 2, "name": "Jane Smith", "designation": "Product Manager", "image": "/placeholder.svg?height=100&width=100"},
				},
			},
		},
		widget{
			typ:         "animated-glowing-search-bar",
			label:       "Glowing Search Bar",
			icon:        "Search",
			description: "Animated search input with glow effects",
			category:    CategoryInteractive,
			symbol:      "default as SearchComponent",
			defaults: layout.Props{
				"placeholder":    "Search...",
				"primaryColor":   "#402fb5",
				"secondaryColor": "#cf30aa",
				"showBorder":     true,
			},
			summaryKeys: []string{"placeholder"},
		},
		widget{
			typ:         "spotlight-card",
			label:       "Spotlight Card",
			icon:        "CreditCard",
			description: "Card with spotlight hover effect",
			category:    CategoryInteractive,
			symbol:      "GlowCard",
			defaults:    layout.Props{"glowColor": "blue", "size": "md"},
			children:    true,
			summaryKeys: []string{"glowColor"},
		},
		widget{
			typ:         "dock",
			label:       "Dock",
			icon:        "Dock",
			description: "macOS-style dock component",
			category:    CategoryInteractive,
			symbol:      "Dock",
			defaults: layout.Props{
				"dockItems": []any{
					map[string]any{"icon": "Home", "label": "Home"},
					map[string]any{"icon": "Search", "label": "Search"},
					map[string]any{"icon": "Music", "label": "Music"},
					map[string]any{"icon": "Heart", "label": "Favorites"},
					map[string]any{"icon": "Settings", "label": "Settings"},
				},
				"isMobile": false,
			},
			rename: map[string]string{"dockItems": "items"},
		},
	)
}

func content() []Definition {
	return definitions(
		widget{
			typ:         "about-us-section",
			label:       "About Us Section",
			icon:        "User",
			description: "Complete about us section with stats",
			category:    CategoryContent,
			symbol:      "default as AboutUsSection",
			defaults: layout.Props{
				"title":       "About Us",
				"subtitle":    "DISCOVER OUR STORY",
				"description": "We are a passionate team dedicated to creating amazing experiences.",
				"mainImage":   "/placeholder.svg?height=400&width=300",
			},
			summaryKeys: []string{"title"},
		},
		widget{
			typ:         "animated-testimonials",
			label:       "Animated Testimonials",
			icon:        "MessageSquare",
			description: "Testimonial carousel with animations",
			category:    CategoryContent,
			symbol:      "AnimatedTestimonials",
			defaults: layout.Props{
				"testimonials": []any{
					map[string]any{
						"quote":       "This product has completely transformed how we work. Highly recommended!",
						"name":        "Sarah Johnson",
						"designation": "CEO, TechCorp",
						"src":         "/placeholder.svg?height=400&width=400",
					},
					map[string]any{
						"quote":       "Amazing experience from start to finish. The team is incredibly professional.",
						"name":        "Mike Chen",
						"designation": "Designer, CreativeStudio",
						"src":         "/placeholder.svg?height=400&width=400",
					},
				},
				"autoplay": true,
			},
		},
		widget{
			typ:         "shuffle-grid",
			label:       "Shuffle Grid",
			icon:        "Grid",
			description: "Animated shuffling image grid",
			category:    CategoryContent,
			symbol:      "ShuffleHero",
			defaults: layout.Props{
				"title":       "Let's change it up a bit",
				"subtitle":    "Better every day",
				"description": "Lorem ipsum dolor sit amet consectetur, adipisicing elit.",
				"buttonText":  "Get Started",
			},
			summaryKeys: []string{"title"},
		},
		widget{
			typ:         "interactive-bento-gallery",
			label:       "Bento Gallery",
			icon:        "GalleryHorizontal",
			description: "Interactive masonry-style gallery",
			category:    CategoryContent,
			symbol:      "default as InteractiveBentoGallery",
			defaults: layout.Props{
				"title":       "Interactive Gallery",
				"description": "Click on any item to view in detail",
				"mediaItems": []any{
					map[string]any{
						"id": 1, "type": "image", "title": "Sample Image", "desc": "Beautiful landscape",
						"url":  "/placeholder.svg?height=300&width=400",
						"span": "md:col-span-1 md:row-span-3 sm:col-span-1 sm:row-span-2",
					},
					map[string]any{
						"id": 2, "type": "image", "title": "Another Image", "desc": "Stunning view",
						"url":  "/placeholder.svg?height=200&width=400",
						"span": "md:col-span-2 md:row-span-2 col-span-1 sm:col-span-2 sm:row-span-2",
					},
				},
			},
			summaryKeys: []string{"title"},
		},
	)
}

func definitions(ws ...widget) []Definition {
	out := make([]Definition, len(ws))
	for i, w := range ws {
		out[i] = w.definition()
	}
	return out
}
