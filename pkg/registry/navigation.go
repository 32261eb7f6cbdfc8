package registry

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

const navbarModule = "@/components/ui/navbar-menu"

// NavbarComponentName returns the helper component name generated for a
// navbar-menu instance.
func NavbarComponentName(id string) string {
	return "NavbarMenu_" + strings.ReplaceAll(id, "-", "_")
}

func navigation() []Definition {
	return append([]Definition{
		{
			Type:        "navbar-menu",
			Label:       "Navbar Menu",
			Icon:        "Menu",
			Category:    CategoryNavigation,
			Description: "Navigation bar with mega menus",
			Defaults: layout.Props{
				"items": []any{
					map[string]any{
						"id":    "services",
						"title": "Services",
						"megaMenu": map[string]any{
							"type": "links",
							"items": []any{
								map[string]any{"text": "Web Development", "href": "/web-dev"},
								map[string]any{"text": "Interface Design", "href": "/interface-design"},
							},
						},
					},
					map[string]any{
						"id":    "products",
						"title": "Products",
						"megaMenu": map[string]any{
							"type":    "products",
							"columns": 2,
							"items": []any{
								map[string]any{
									"title":       "Algochurn",
									"href":        "https://algochurn.com",
									"src":         "/placeholder.svg?height=70&width=140",
									"description": "Prepare for tech interviews like never before.",
								},
							},
						},
					},
				},
			},
			Imports: []Import{
				{navbarModule, "Menu"},
				{navbarModule, "MenuItem"},
				{navbarModule, "ProductItem"},
				{navbarModule, "HoveredLink"},
				{"react", "useState"},
				{"next/link", "default as Link"},
				{"next/image", "default as Image"},
				{"@/lib/utils", "cn"},
			},
			Render: func(_ View, ctx Context) string {
				return "<" + NavbarComponentName(ctx.ID) + " />"
			},
			Helper: navbarHelper,
			Summary: func(v View) string {
				var titles []string
				for _, it := range v.List("items") {
					if m, ok := it.(map[string]any); ok {
						titles = append(titles, format(m["title"]))
					}
				}
				if len(titles) == 0 {
					return "Navbar Menu"
				}
				return truncate("Navbar Menu: "+strings.Join(titles, " | "), 60)
			},
		},
	}, definitions(
		widget{
			typ:         "header-1",
			label:       "Header 1",
			icon:        "Heading1",
			description: "Modern header with navigation",
			category:    CategoryNavigation,
			symbol:      "Header1",
			defaults: layout.Props{
				"logoText": "Brand",
				"navigationItems": []any{
					map[string]any{"title": "Home", "href": "/"},
					map[string]any{"title": "About", "href": "/about"},
					map[string]any{"title": "Contact", "href": "/contact"},
				},
				"cta1Text": "Book a demo",
				"cta2Text": "Sign in",
				"cta3Text": "Get started",
			},
			summaryKeys: []string{"logoText"},
		},
		widget{
			typ:         "navbar-1",
			label:       "Navbar 1",
			icon:        "Navigation",
			description: "Responsive navbar with dropdowns",
			category:    CategoryNavigation,
			symbol:      "Navbar1",
			defaults: layout.Props{
				"logo": map[string]any{
					"url":   "#",
					"src":   "/placeholder.svg?height=32&width=32",
					"alt":   "Logo",
					"title": "Brand",
				},
				"menu": []any{
					map[string]any{"title": "Home", "url": "#"},
					map[string]any{"title": "About", "url": "#"},
					map[string]any{"title": "Services", "url": "#"},
					map[string]any{"title": "Contact", "url": "#"},
				},
			},
		},
	)...)
}

// navbarWidthMap is the body of the getWidth lookup embedded in navbar
// helpers, built from the same table as the page body.
func navbarWidthMap() string {
	var b strings.Builder
	for w := layout.MinWidth; w <= layout.MaxWidth; w++ {
		b.WriteString("    " + strconv.Itoa(w) + `: "` + layout.WidthClass(w) + "\",\n")
	}
	return b.String()
}

func navbarHelper(v View, ctx Context) string {
	items := v.List("items")
	if items == nil {
		items = []any{}
	}
	return `
function ` + NavbarComponentName(ctx.ID) + `() {
  const [active, setActive] = useState(null);
  const items = ` + JSONIndent(items) + `;

  const getWidth = (w) => ({
` + navbarWidthMap() + `  }[w] || "w-full");

  const renderCustomLayout = (layout) => {
    if (!layout || !layout.columns) return null;
    return (
      <div className="flex flex-wrap" style={{ width: layout.containerWidth || "100%" }}>
        {layout.columns.map((col) => (
          <div key={col.id} className={getWidth(col.width) + " p-2"}>
            <div
              className={
                "flex " +
                (col.orientation === "vertical" ? "flex-col " : "") +
                (col.flexLayout || "") +
                " gap-" + (col.gap || 0)
              }
            >
              {col.components?.map((cmp) =>
                cmp.type === "text" ? (
                  <p key={cmp.id}>{cmp.props.text}</p>
                ) : (
                  <Image
                    key={cmp.id}
                    src={cmp.props.src || "/placeholder.svg"}
                    alt={cmp.props.alt}
                    width={100}
                    height={100}
                    className="w-full h-auto"
                  />
                )
              )}
            </div>
          </div>
        ))}
      </div>
    );
  };

  return (
    <div className="relative w-full flex items-center justify-center">
      <Menu setActive={setActive}>
        {items.map((item) => (
          <MenuItem key={item.id} setActive={setActive} active={active} item={item}>
            {item.megaMenu?.type === "links" && (
              <div className="flex flex-col space-y-4 text-sm">
                {item.megaMenu.items.map((l, i) => (
                  <HoveredLink key={i} href={l.href}>{l.text}</HoveredLink>
                ))}
              </div>
            )}

            {item.megaMenu?.type === "products" && (
              <div
                className="text-sm grid gap-10 p-4"
                style={{ gridTemplateColumns: "repeat(" + (item.megaMenu.columns || 2) + ", minmax(0, 1fr))" }}
              >
                {item.megaMenu.items.map((p, i) => (
                  <ProductItem
                    key={i}
                    title={p.title}
                    href={p.href}
                    src={p.src}
                    description={p.description}
                  />
                ))}
              </div>
            )}

            {item.megaMenu?.type === "custom" && item.megaMenu.layout && (
              <div className="p-4" style={{ width: item.megaMenu.layout.containerWidth || "600px" }}>
                {renderCustomLayout(item.megaMenu.layout)}
              </div>
            )}
          </MenuItem>
        ))}
      </Menu>
    </div>
  );
}
`
}
