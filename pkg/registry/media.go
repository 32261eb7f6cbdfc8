package registry

import (
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

func media() []Definition {
	return []Definition{
		{
			Type:        "reveal-image-list",
			Label:       "Reveal Image List",
			Icon:        "GalleryVertical",
			Category:    CategoryMedia,
			Description: "List that reveals an image on hover",
			Defaults:    layout.Props{"title": "Our services"},
			Imports:     []Import{{uiModule, "RevealImageList"}},
			Render: func(v View, _ Context) string {
				var attrs []string
				if v.Set("title") {
					attrs = append(attrs, `title="`+v.String("title")+`"`)
				}
				if v.Set("className") {
					attrs = append(attrs, `className="`+v.String("className")+`"`)
				}
				if items := asList(v.props["items"]); len(items) > 0 {
					attrs = append(attrs, "items={"+JSON(items)+"}")
				}
				return "<RevealImageList " + strings.Join(attrs, " ") + " />"
			},
			Summary: func(v View) string {
				s := summarize("Reveal Image List", v, "title")
				if n := len(asList(v.props["items"])); n > 0 {
					s += " (" + format(n) + " items)"
				}
				return s
			},
		},
		{
			Type:        "product-card",
			Label:       "Product Card",
			Icon:        "ShoppingBag",
			Category:    CategoryMedia,
			Description: "Product image with name, price and rating",
			Defaults:    layout.Props{"productName": "Cool Product", "price": 99.99, "rating": 4.5},
			Fallbacks: layout.Props{
				"imageUrl": "", "productName": "Cool Product", "price": 99.99,
				"rating": 4.5, "className": "", "linkTarget": "_self",
			},
			Imports: []Import{{uiModule, "ProductCard"}},
			Render: func(v View, _ Context) string {
				original := ""
				if v.Set("originalPrice") {
					original = " originalPrice={" + v.String("originalPrice") + "}"
				}
				card := `<ProductCard imageUrl="` + v.String("imageUrl") + `" productName="` + v.String("productName") +
					`" price={` + v.String("price") + `}` + original + ` rating={` + v.String("rating") +
					`} className="` + v.String("className") + `" />`
				return linkWrap(v, "productLink", card)
			},
			Summary: func(v View) string {
				return summarize("Product Card", v, "productName") + " $" + v.String("price")
			},
		},
		{
			Type:        "masonry-gallery",
			Label:       "Masonry Gallery",
			Icon:        "LayoutGrid",
			Category:    CategoryMedia,
			Description: "Image grid with staggered rows",
			Defaults:    layout.Props{"columns": 3, "gap": 4},
			Fallbacks:   layout.Props{"columns": 3, "gap": 4, "className": ""},
			Imports:     []Import{{uiModule, "MasonryGallery"}},
			Render: func(v View, _ Context) string {
				images := ""
				if v.Set("images") {
					images = "images={" + JSON(v.props["images"]) + "}"
				}
				return "<MasonryGallery " + images + " columns={" + v.String("columns") + "} gap={" +
					v.String("gap") + `} className="` + v.String("className") + `" />`
			},
			Summary: func(v View) string {
				return "Masonry Gallery: " + v.String("columns") + " columns, " +
					format(len(v.List("images"))) + " images"
			},
		},
	}
}
