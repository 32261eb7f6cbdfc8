// Package pipeline exports a layout to its artifact formats with caching.
//
// One export turns a layout into any of:
//
//   - tsx: the generated React component
//   - json: the layout itself, in canonical form
//   - dot: the layout tree as Graphviz source
//   - svg: the layout tree diagram
//
// Every format is a pure function of the layout and the options, so
// artifacts are cached under the layout's content hash. The CLI and the
// HTTP API share the same [Runner].
//
//	runner := pipeline.NewRunner(c, nil, logger, nil)
//	res, err := runner.Export(ctx, l, pipeline.Options{Formats: []string{"tsx"}})
//	if err != nil {
//	    return err
//	}
//	code := res.Artifacts["tsx"]
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/pagesmith/pkg/errors"
)

// Format constants for export formats.
const (
	FormatTSX  = "tsx"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists the supported formats.
var Formats = []string{FormatTSX, FormatJSON, FormatDOT, FormatSVG}

// DefaultFormat is exported when Options.Formats is empty.
const DefaultFormat = FormatTSX

// ContentType returns the media type of a format.
func ContentType(format string) string {
	switch format {
	case FormatTSX:
		return "text/typescript; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	case FormatSVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// Extension returns the file extension for a format, with the dot.
func Extension(format string) string { return "." + format }

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list. An empty string yields the
// default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{DefaultFormat}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// Options configures an export.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	// Detailed adds flex, gap and component summaries to diagrams.
	Detailed bool `json:"detailed,omitempty"`
	// Refresh bypasses cached artifacts.
	Refresh bool `json:"refresh,omitempty"`
}

// ValidateAndSetDefaults checks the formats and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	return ValidateFormats(o.Formats)
}

// Result contains the outputs of an export.
type Result struct {
	// Hash is the content hash of the exported layout.
	Hash string
	// Artifacts holds the output of each requested format.
	Artifacts map[string][]byte
	// Unknown lists component types the code generator had no definition
	// for. Only set when tsx was generated in this run.
	Unknown []string
	Stats   Stats
	// CacheInfo tracks which formats were served from cache.
	CacheInfo CacheInfo
}

// Stats contains export statistics.
type Stats struct {
	Columns    int
	Components int
	Duration   time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits []string
}

// AllHit reports whether every format came from cache.
func (c CacheInfo) AllHit(formats []string) bool {
	for _, f := range formats {
		if !slices.Contains(c.Hits, f) {
			return false
		}
	}
	return true
}

func (r *Result) String() string {
	return fmt.Sprintf("export(%d artifacts, %d columns, %d components)", len(r.Artifacts), r.Stats.Columns, r.Stats.Components)
}
