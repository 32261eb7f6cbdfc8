package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

func render(t *testing.T, typ string, props layout.Props) string {
	t.Helper()
	def, ok := Default().Lookup(typ)
	require.True(t, ok, typ)
	return def.Render(def.View(props), Context{ID: "component-1"})
}

func TestDefaultRegistryComplete(t *testing.T) {
	reg := Default()
	want := []string{
		"text", "image", "button", "input", "div", "nested-column",
		"hero-title", "hero-subtitle", "hero-section", "text-rotate", "gooey-text", "gradient-headline",
		"animated-tooltip", "animated-glowing-search-bar", "spotlight-card", "dock",
		"about-us-section", "animated-testimonials", "shuffle-grid", "interactive-bento-gallery",
		"reveal-image-list", "product-card", "masonry-gallery",
		"navbar-menu", "header-1", "navbar-1",
	}
	assert.Equal(t, want, reg.Types())

	for _, typ := range reg.Types() {
		def, _ := reg.Lookup(typ)
		assert.NotEmpty(t, def.Label, typ)
		assert.NotEmpty(t, def.Icon, typ)
		assert.Contains(t, Categories, def.Category, typ)
		require.NotNil(t, def.Render, typ)
		require.NotNil(t, def.Summary, typ)

		out := def.Render(def.View(reg.Defaults(typ)), Context{ID: "component-x"})
		assert.NotEmpty(t, out, typ)
		assert.NotEmpty(t, def.Summary(def.View(reg.Defaults(typ))), typ)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	reg := Default()
	d := reg.Defaults("button")
	assert.Equal(t, layout.Props{"text": "Click me", "variant": "default"}, d)

	d["text"] = "changed"
	assert.Equal(t, "Click me", reg.Defaults("button")["text"])
	assert.Equal(t, layout.Props{}, reg.Defaults("nope"))
}

func TestPalette(t *testing.T) {
	groups := Default().Palette()
	var cats []Category
	for _, g := range groups {
		cats = append(cats, g.Category)
	}
	assert.Equal(t, Categories, cats)
	assert.Equal(t, "text", groups[0].Definitions[0].Type)
}

func TestSearch(t *testing.T) {
	reg := Default()

	groups := reg.Search("GALLERY")
	var types []string
	for _, g := range groups {
		for _, d := range g.Definitions {
			types = append(types, d.Type)
		}
	}
	assert.Equal(t, []string{"interactive-bento-gallery", "masonry-gallery"}, types)

	groups = reg.Search("dock component")
	require.Len(t, groups, 1)
	assert.Equal(t, CategoryInteractive, groups[0].Category)

	assert.Empty(t, reg.Search("no such thing"))
}

func TestRegisterReplaces(t *testing.T) {
	reg := New(Definition{Type: "a", Label: "A"}, Definition{Type: "b", Label: "B"})
	reg.Register(Definition{Type: "a", Label: "A2"})

	assert.Equal(t, []string{"a", "b"}, reg.Types())
	d, _ := reg.Lookup("a")
	assert.Equal(t, "A2", d.Label)
	assert.False(t, reg.Has("c"))
}

func TestRenderButton(t *testing.T) {
	tests := []struct {
		name  string
		props layout.Props
		want  string
	}{
		{
			name:  "defaults",
			props: layout.Props{"text": "Click me", "variant": "default"},
			want:  `<Button variant="default">Click me</Button>`,
		},
		{
			name:  "fallback text",
			props: layout.Props{},
			want:  `<Button>Button</Button>`,
		},
		{
			name:  "empty text falls back",
			props: layout.Props{"text": ""},
			want:  `<Button>Button</Button>`,
		},
		{
			name:  "class and style",
			props: layout.Props{"text": "Go", "className": "mt-2", "size": "lg", "padding": "4px", "width": "100px"},
			want:  `<Button className="mt-2" size="lg" style={{width: "100px", padding: "4px"}}>Go</Button>`,
		},
		{
			name:  "variant wins over size",
			props: layout.Props{"variant": "outline", "size": "sm"},
			want:  `<Button variant="outline">Button</Button>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, "button", tt.props))
		})
	}
}

func TestRenderText(t *testing.T) {
	assert.Equal(t, `<p>Paragraph text</p>`, render(t, "text", layout.Props{}))
	assert.Equal(t, `<h2>H2 Heading</h2>`, render(t, "text", layout.Props{"element": "h2"}))
	assert.Equal(t, `<h1 className="big">Hi</h1>`, render(t, "text", layout.Props{"element": "h1", "text": "Hi", "className": "big"}))
}

func TestRenderImage(t *testing.T) {
	assert.Equal(t, `<img src="/a.png" alt="A" />`, render(t, "image", layout.Props{"src": "/a.png", "alt": "A"}))
	assert.Equal(t,
		`<a href="/x" target="_blank" rel="noopener noreferrer"><img src="/a.png" /></a>`,
		render(t, "image", layout.Props{"src": "/a.png", "link": "/x", "linkTarget": "_blank"}))
	assert.Equal(t,
		`<a href="/x" target="_self"><img src="/a.png" /></a>`,
		render(t, "image", layout.Props{"src": "/a.png", "link": "/x"}))
}

func TestRenderInputTypeNotDiv(t *testing.T) {
	assert.Equal(t, `<Input type="email" />`, render(t, "input", layout.Props{"type": "email"}))
	assert.Equal(t, `<Input />`, render(t, "input", layout.Props{"type": "div"}))
}

func TestRenderDivChildren(t *testing.T) {
	def, _ := Default().Lookup("div")
	v := def.View(layout.Props{"className": "box"})
	assert.Equal(t, `<div className="box">Div Container</div>`, def.Render(v, Context{}))
	assert.Equal(t, `<div className="box"><p>x</p></div>`, def.Render(v, Context{Children: "<p>x</p>"}))
}

func TestRenderHeroTitle(t *testing.T) {
	got := render(t, "hero-title", layout.Props{"text": "Welcome", "color": "#fff"})
	assert.Equal(t,
		`<h1 className="" style={{color: "#fff", textAlign: "center", fontSize: "3.5rem", fontWeight: "bold"}}>Welcome</h1>`,
		got)
}

func TestRenderTextRotate(t *testing.T) {
	got := render(t, "text-rotate", layout.Props{"texts": []any{"a", "b"}, "staggerDuration": 0.05})
	assert.Contains(t, got, `texts={["a","b"]}`)
	assert.Contains(t, got, `staggerDuration={0.05}`)
	assert.Contains(t, got, `rotationInterval={2000}`)
	assert.Contains(t, got, `Make it </span>`)
}

func TestRenderProductCard(t *testing.T) {
	got := render(t, "product-card", layout.Props{"productName": "Mug", "price": 12.5, "originalPrice": 20})
	assert.Equal(t,
		`<ProductCard imageUrl="" productName="Mug" price={12.5} originalPrice={20} rating={4.5} className="" />`,
		got)

	linked := render(t, "product-card", layout.Props{"productLink": "/mug"})
	assert.True(t, strings.HasPrefix(linked, `<a href="/mug" target="_self">`))
}

func TestRenderRevealAndMasonry(t *testing.T) {
	assert.Equal(t, `<RevealImageList  />`, render(t, "reveal-image-list", layout.Props{}))
	assert.Equal(t, `<RevealImageList title="T" />`, render(t, "reveal-image-list", layout.Props{"title": "T", "items": []any{}}))
	assert.Equal(t, `<MasonryGallery  columns={3} gap={4} className="" />`, render(t, "masonry-gallery", layout.Props{}))
	assert.Equal(t,
		`<MasonryGallery images={["/a.png"]} columns={2} gap={4} className="" />`,
		render(t, "masonry-gallery", layout.Props{"images": []any{"/a.png"}, "columns": 2}))
}

func TestRenderWidgets(t *testing.T) {
	assert.Equal(t,
		`<SearchComponent placeholder="Find" showBorder={true} />`,
		render(t, "animated-glowing-search-bar", layout.Props{"placeholder": "Find", "showBorder": true}))
	assert.Equal(t,
		`<Dock items={[{"icon":"Home","label":"Home"}]} isMobile={false} />`,
		render(t, "dock", layout.Props{"dockItems": []any{map[string]any{"label": "Home", "icon": "Home"}}, "isMobile": false}))

	def, _ := Default().Lookup("spotlight-card")
	assert.Equal(t, `<GlowCard size="md"><p>in</p></GlowCard>`,
		def.Render(def.View(layout.Props{"size": "md"}), Context{Children: "<p>in</p>"}))
	assert.Equal(t, `<AboutUsSection title={"say \"hi\""} />`,
		render(t, "about-us-section", layout.Props{"title": `say "hi"`}))
}

func TestWidgetImports(t *testing.T) {
	def, _ := Default().Lookup("interactive-bento-gallery")
	assert.Equal(t, []Import{{"@/components/ui/interactive-bento-gallery", "default as InteractiveBentoGallery"}}, def.Imports)
}

func TestNavbarMenu(t *testing.T) {
	def, ok := Default().Lookup("navbar-menu")
	require.True(t, ok)
	ctx := Context{ID: "component-ab-12"}
	v := def.View(layout.Props{"items": []any{map[string]any{"id": "a", "title": "A"}}})

	assert.Equal(t, "<NavbarMenu_component_ab_12 />", def.Render(v, ctx))

	helper := def.Helper(v, ctx)
	assert.True(t, strings.HasPrefix(helper, "\nfunction NavbarMenu_component_ab_12() {\n"))
	assert.Contains(t, helper, "const items = [\n  {\n    \"id\": \"a\",\n    \"title\": \"A\"\n  }\n];")
	assert.Contains(t, helper, `    1: "w-1/12",`)
	assert.Contains(t, helper, `    12: "w-full",`+"\n"+`  }[w] || "w-full");`)

	empty := def.Helper(def.View(layout.Props{}), ctx)
	assert.Contains(t, empty, "const items = [];")
}

func TestSummaries(t *testing.T) {
	reg := Default()
	summary := func(typ string, p layout.Props) string {
		def, _ := reg.Lookup(typ)
		return def.Summary(def.View(p))
	}
	assert.Equal(t, "Button: Click me (default)", summary("button", reg.Defaults("button")))
	assert.Equal(t, "Text <h2>: Hello", summary("text", layout.Props{"element": "h2", "text": "Hello"}))
	assert.Equal(t, "Navbar Menu: Services | Products", summary("navbar-menu", reg.Defaults("navbar-menu")))
	assert.Equal(t, "Dock (5 dockitems)", summary("dock", reg.Defaults("dock")))
	assert.Equal(t, "Product Card: Cool Product $99.99", summary("product-card", layout.Props{}))
}

func TestView(t *testing.T) {
	v := NewView(
		layout.Props{"a": "", "b": 0, "c": false, "d": "set", "e": []any{}, "n": 2.50},
		layout.Props{"a": "fa", "b": 7, "c": true, "e": []any{"x"}, "z": "fz"},
	)
	assert.Equal(t, "fa", v.String("a"))
	assert.Equal(t, "7", v.String("b"))
	assert.Equal(t, "true", v.String("c"))
	assert.Equal(t, "set", v.String("d"))
	assert.Equal(t, "2.5", v.String("n"))
	assert.Equal(t, "fz", v.String("z"))
	assert.Equal(t, "", v.String("missing"))
	assert.Equal(t, []any{"x"}, v.List("e"))
	assert.Equal(t, []any{}, v.Value("e"), "empty lists count as set")
	assert.True(t, v.Has("a"))
	assert.False(t, v.Set("a"))
	assert.False(t, v.Has("z"))
}

func TestJSON(t *testing.T) {
	assert.Equal(t, `{"a":1,"b":"<x>"}`, JSON(map[string]any{"b": "<x>", "a": 1}))
	assert.Equal(t, "[\n  1,\n  2\n]", JSONIndent([]int{1, 2}))
}
