package registry

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
)

// JSON returns v as a compact JSON literal with map keys sorted and HTML
// characters left unescaped.
func JSON(v any) string { return jsonLiteral(v) }

// JSONIndent is [JSON] with two-space indentation.
func JSONIndent(v any) string { return encodeJSON(v, "  ") }

func jsonLiteral(v any) string { return encodeJSON(v, "") }

func encodeJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// styleProps are copied into an inline style object by renderProps, in
// this order.
var styleProps = []string{"width", "height", "backgroundColor", "padding", "borderRadius", "border", "fontSize"}

// renderProps renders the common attribute set of the primitive elements:
// className, then the first present of variant, size, placeholder and type,
// then src and alt, then an inline style for any style props. Attributes
// are taken from the raw props; fallbacks do not apply.
func renderProps(v View) string {
	var b strings.Builder
	if v.Set("className") {
		attr(&b, "className", format(v.props["className"]))
	}

	switch {
	case v.Has("variant"):
		attr(&b, "variant", format(v.props["variant"]))
	case v.Has("size"):
		attr(&b, "size", format(v.props["size"]))
	case v.Has("placeholder"):
		attr(&b, "placeholder", format(v.props["placeholder"]))
	case v.Has("type") && v.props["type"] != "div":
		attr(&b, "type", format(v.props["type"]))
	}

	if v.Has("src") {
		attr(&b, "src", format(v.props["src"]))
	}
	if v.Has("alt") {
		attr(&b, "alt", format(v.props["alt"]))
	}

	var style []string
	for _, p := range styleProps {
		if v.Has(p) {
			style = append(style, p+`: "`+format(v.props[p])+`"`)
		}
	}
	if len(style) > 0 {
		b.WriteString(" style={{")
		b.WriteString(strings.Join(style, ", "))
		b.WriteString("}}")
	}
	return b.String()
}

func attr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(value)
	b.WriteString(`"`)
}

// spreadAttrs renders every raw prop as a JSX attribute, keys sorted.
// Plain strings become quoted attributes, everything else an expression.
// rename maps prop names to attribute names.
func spreadAttrs(v View, rename map[string]string) string {
	keys := make([]string, 0, len(v.props))
	for k := range v.props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		name := k
		if r, ok := rename[k]; ok {
			name = r
		}
		val := v.props[k]
		if s, ok := val.(string); ok && !strings.ContainsAny(s, "\"\n{}") {
			attr(&b, name, s)
			continue
		}
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString("={")
		b.WriteString(jsonLiteral(val))
		b.WriteString("}")
	}
	return b.String()
}

// summarize builds the one-line preview "Label: first set value".
func summarize(label string, v View, keys ...string) string {
	for _, k := range keys {
		if s := v.String(k); s != "" {
			return label + ": " + truncate(s, 48)
		}
	}
	return label
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// linkWrap wraps element in an anchor when the link prop is set.
func linkWrap(v View, linkKey, element string) string {
	if !v.Set(linkKey) {
		return element
	}
	target := v.String("linkTarget")
	rel := ""
	if target == "_blank" {
		rel = ` rel="noopener noreferrer"`
	}
	return `<a href="` + v.String(linkKey) + `" target="` + target + `"` + rel + `>` + element + `</a>`
}
