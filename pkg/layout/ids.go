package layout

import "github.com/google/uuid"

// Identifier prefixes. Columns and components share one namespace; the
// prefix only makes ids readable in generated code and logs.
const (
	ColumnPrefix    = "column"
	ComponentPrefix = "component"
)

// newID returns a fresh identifier. Replaced in tests for stable output.
var newID = func(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
