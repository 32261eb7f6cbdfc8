package registry

import (
	"math"
	"strconv"

	"github.com/matzehuels/pagesmith/pkg/layout"
)

// View reads a component's props with fallback substitution. A prop that is
// missing or empty (nil, "", 0, false) resolves to the definition's
// fallback; lists and objects always count as set.
type View struct {
	props     layout.Props
	fallbacks layout.Props
}

// NewView returns a view over props with the given fallbacks.
func NewView(props, fallbacks layout.Props) View {
	return View{props: props, fallbacks: fallbacks}
}

// Props returns the raw props, without fallbacks.
func (v View) Props() layout.Props { return v.props }

// Has reports whether key is present in the raw props, set or not.
func (v View) Has(key string) bool {
	_, ok := v.props[key]
	return ok
}

// Raw returns the raw prop without fallback.
func (v View) Raw(key string) (any, bool) {
	val, ok := v.props[key]
	return val, ok
}

// Set reports whether key is present and non-empty.
func (v View) Set(key string) bool {
	return truthy(v.props[key])
}

// Value returns the prop, or its fallback if the prop is empty.
func (v View) Value(key string) any {
	if val := v.props[key]; truthy(val) {
		return val
	}
	return v.fallbacks[key]
}

// String returns the prop formatted for interpolation into markup, or the
// formatted fallback. It returns "" when neither is set.
func (v View) String(key string) string {
	return format(v.Value(key))
}

// List returns the prop as a list, or the fallback if the prop is not a
// non-empty list.
func (v View) List(key string) []any {
	if l := asList(v.props[key]); len(l) > 0 {
		return l
	}
	return asList(v.fallbacks[key])
}

func asList(val any) []any {
	switch t := val.(type) {
	case []any:
		return t
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, m := range t {
			out[i] = m
		}
		return out
	}
	return nil
}

func truthy(val any) bool {
	switch t := val.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	}
	return true
}

// format renders a scalar the way it reads in markup. Numbers use the
// shortest representation, composites are JSON.
func format(val any) string {
	switch t := val.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return jsonLiteral(val)
}
