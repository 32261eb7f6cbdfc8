package registry

import (
	"strings"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

const uiModule = "@/components/ui"

func basic() []Definition {
	return []Definition{
		{
			Type:        "text",
			Label:       "Text",
			Icon:        "Type",
			Category:    CategoryBasic,
			Description: "Simple text element",
			Defaults:    layout.Props{"text": "Sample text", "element": "p"},
			Fallbacks:   layout.Props{"element": "p"},
			Render: func(v View, _ Context) string {
				el := v.String("element")
				text := v.String("text")
				if !v.Set("text") {
					text = "Paragraph text"
					if el != "p" {
						text = strings.ToUpper(el) + " Heading"
					}
				}
				return "<" + el + renderProps(v) + ">" + text + "</" + el + ">"
			},
			Summary: func(v View) string {
				return summarize("Text <"+v.String("element")+">", v, "text")
			},
		},
		{
			Type:        "image",
			Label:       "Image",
			Icon:        "ImageIcon",
			Category:    CategoryBasic,
			Description: "Image component",
			Defaults:    layout.Props{"src": "/placeholder.svg?height=200&width=300", "alt": "Sample image"},
			Fallbacks:   layout.Props{"linkTarget": "_self"},
			Render: func(v View, _ Context) string {
				return linkWrap(v, "link", "<img"+renderProps(v)+" />")
			},
			Summary: func(v View) string { return summarize("Image", v, "alt", "src") },
		},
		{
			Type:        "button",
			Label:       "Button",
			Icon:        "MousePointer",
			Category:    CategoryBasic,
			Description: "Interactive button",
			Defaults:    layout.Props{"text": "Click me", "variant": "default"},
			Fallbacks:   layout.Props{"text": "Button"},
			Imports:     []Import{{uiModule, "Button"}},
			Render: func(v View, _ Context) string {
				return "<Button" + renderProps(v) + ">" + v.String("text") + "</Button>"
			},
			Summary: func(v View) string {
				s := summarize("Button", v, "text")
				if v.Set("variant") {
					s += " (" + v.String("variant") + ")"
				}
				return s
			},
		},
		{
			Type:        "input",
			Label:       "Input",
			Icon:        "TextCursorInput",
			Category:    CategoryBasic,
			Description: "Text input field",
			Defaults:    layout.Props{"placeholder": "Enter text..."},
			Imports:     []Import{{uiModule, "Input"}},
			Render: func(v View, _ Context) string {
				return "<Input" + renderProps(v) + " />"
			},
			Summary: func(v View) string { return summarize("Input", v, "placeholder") },
		},
		{
			Type:        "div",
			Label:       "Container",
			Icon:        "Square",
			Category:    CategoryBasic,
			Description: "Generic container",
			Defaults:    layout.Props{"text": "Container", "className": "p-4 border rounded"},
			Fallbacks:   layout.Props{"text": "Div Container"},
			Render: func(v View, ctx Context) string {
				inner := ctx.Children
				if inner == "" {
					inner = v.String("text")
				}
				return "<div" + renderProps(v) + ">" + inner + "</div>"
			},
			Summary: func(v View) string { return summarize("Container", v, "text") },
		},
		{
			Type:        "nested-column",
			Label:       "Nested Column",
			Icon:        "Columns",
			Category:    CategoryBasic,
			Description: "Placeholder for a nested column group",
			Render: func(View, Context) string {
				return `<div className="nested-column-container">Nested Column</div>`
			},
			Summary: func(View) string { return "Nested Column" },
		},
	}
}
