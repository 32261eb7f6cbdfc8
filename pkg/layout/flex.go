package layout

import (
	"regexp"
	"slices"
)

// Orientation selects how a column lays out its content.
type Orientation string

const (
	// Horizontal columns are side-by-side tracks sized on the grid.
	Horizontal Orientation = "horizontal"
	// Vertical columns stack full-width and ignore their width.
	Vertical Orientation = "vertical"
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool { return o == Horizontal || o == Vertical }

// Align is a cross-axis alignment keyword.
type Align string

// Cross-axis alignment keywords.
const (
	AlignStart    Align = "start"
	AlignCenter   Align = "center"
	AlignEnd      Align = "end"
	AlignStretch  Align = "stretch"
	AlignBaseline Align = "baseline"
)

// Justify is a main-axis distribution keyword.
type Justify string

// Main-axis distribution keywords.
const (
	JustifyStart   Justify = "start"
	JustifyCenter  Justify = "center"
	JustifyEnd     Justify = "end"
	JustifyBetween Justify = "between"
	JustifyAround  Justify = "around"
	JustifyEvenly  Justify = "evenly"
)

// Aligns and Justifies list the accepted vocabularies in display order.
var (
	Aligns    = []Align{AlignStart, AlignCenter, AlignEnd, AlignStretch, AlignBaseline}
	Justifies = []Justify{JustifyStart, JustifyCenter, JustifyEnd, JustifyBetween, JustifyAround, JustifyEvenly}
)

// Valid reports whether a is in the accepted vocabulary.
func (a Align) Valid() bool { return slices.Contains(Aligns, a) }

// Valid reports whether j is in the accepted vocabulary.
func (j Justify) Valid() bool { return slices.Contains(Justifies, j) }

// FlexLayout is the (cross-axis, main-axis) alignment pair of a column.
//
// Its text form is the utility-class pair "items-<align> justify-<justify>",
// which is also how it is persisted.
type FlexLayout struct {
	Items   Align
	Justify Justify
}

// DefaultFlexLayout aligns content to the start on both axes.
var DefaultFlexLayout = FlexLayout{Items: AlignStart, Justify: JustifyStart}

// Valid reports whether both keywords are in their vocabularies.
func (f FlexLayout) Valid() bool { return f.Items.Valid() && f.Justify.Valid() }

// String returns the class-pair form, e.g. "items-center justify-between".
func (f FlexLayout) String() string {
	items, justify := f.Items, f.Justify
	if items == "" {
		items = AlignStart
	}
	if justify == "" {
		justify = JustifyStart
	}
	return "items-" + string(items) + " justify-" + string(justify)
}

// MarshalText implements encoding.TextMarshaler.
func (f FlexLayout) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

var (
	itemsRe   = regexp.MustCompile(`items-([a-z-]+)`)
	justifyRe = regexp.MustCompile(`justify-([a-z-]+)`)
)

// UnmarshalText implements encoding.TextUnmarshaler. Missing halves default
// to start; unknown keywords are kept and left to [Sanitize].
func (f *FlexLayout) UnmarshalText(text []byte) error {
	*f = ParseFlexLayout(string(text))
	return nil
}

// ParseFlexLayout parses the class-pair form. Missing halves default to
// start.
func ParseFlexLayout(s string) FlexLayout {
	out := DefaultFlexLayout
	if m := itemsRe.FindStringSubmatch(s); m != nil {
		out.Items = Align(m[1])
	}
	if m := justifyRe.FindStringSubmatch(s); m != nil {
		out.Justify = Justify(m[1])
	}
	return out
}

// Gap is a spacing token from a fixed set.
type Gap string

// DefaultGap is no spacing.
const DefaultGap Gap = "0"

// Gaps lists the accepted spacing tokens.
var Gaps = []Gap{"0", "1", "2", "3", "4", "6", "8"}

// Valid reports whether g is an accepted token.
func (g Gap) Valid() bool { return slices.Contains(Gaps, g) }
