package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/matzehuels/pagesmith/pkg/editor"
	"github.com/matzehuels/pagesmith/pkg/layout"
	"github.com/matzehuels/pagesmith/pkg/registry"
)

// stdout receives status output. Replaced in tests.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
	colorIndigo = lipgloss.Color("105") // Columns
	colorAmber  = lipgloss.Color("179") // Components
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorBlue)

	styleColumn    = lipgloss.NewStyle().Foreground(colorIndigo)
	styleComponent = lipgloss.NewStyle().Foreground(colorAmber)
	styleSelected  = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(stdout, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printStats prints export statistics on a single line.
func printStats(columns, components int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d columns", columns),
		fmt.Sprintf("%d components", components),
	}
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	line := "  " + StyleDim.Render(strings.Join(parts, " · ")) + StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Fprintln(stdout, line)
}

// printOutcome reports a request that changed nothing.
func printOutcome(out layout.Outcome) bool {
	switch {
	case out.Refused:
		printWarning("Nothing changed: the last root column cannot be deleted")
	case len(out.Unresolved) > 0:
		printWarning("Nothing changed: %s not found", strings.Join(out.Unresolved, ", "))
	default:
		return true
	}
	return false
}

// =============================================================================
// Layout Tree
// =============================================================================

// renderTree draws the layout as a tree of columns and components. The
// selection is highlighted.
func renderTree(l layout.Layout, reg *registry.Registry, sel editor.Selection) string {
	t := tree.Root(StyleTitle.Render("Page") + " " + StyleDim.Render(l.ContainerWidth)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(StyleDim)
	for _, col := range l.Columns {
		t.Child(columnTree(col, reg, sel))
	}
	return t.String()
}

func columnTree(col layout.Column, reg *registry.Registry, sel editor.Selection) *tree.Tree {
	idStyle := styleColumn
	if col.ID == sel.ColumnID && sel.ComponentID == "" {
		idStyle = styleSelected
	}
	label := idStyle.Render(col.ID) + " " + StyleDim.Render(fmt.Sprintf("%s %s gap-%s %s",
		layout.WidthClass(col.Width), col.Orientation, col.Gap, col.FlexLayout))
	t := tree.Root(label)
	for _, comp := range col.Components {
		t.Child(componentLabel(comp, reg, sel))
	}
	for _, child := range col.ChildColumns {
		t.Child(columnTree(child, reg, sel))
	}
	return t
}

func componentLabel(comp layout.Component, reg *registry.Registry, sel editor.Selection) string {
	id := styleComponent.Render(comp.ID)
	if comp.ID == sel.ComponentID {
		id = styleSelected.Render(comp.ID)
	}
	summary := comp.Type + " (unknown type)"
	if def, ok := reg.Lookup(comp.Type); ok && def.Summary != nil {
		summary = def.Summary(def.View(comp.Props))
	}
	return id + " " + StyleValue.Render(summary)
}
