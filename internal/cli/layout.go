package cli

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/layout"
)

// =============================================================================
// column
// =============================================================================

func (c *CLI) columnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Add, resize, restyle, move and delete columns",
	}
	cmd.AddCommand(c.columnAddCommand())
	cmd.AddCommand(c.columnRemoveCommand())
	cmd.AddCommand(c.columnWidthCommand())
	cmd.AddCommand(c.columnSetCommand())
	cmd.AddCommand(c.columnMoveCommand())
	return cmd
}

func (c *CLI) columnAddCommand() *cobra.Command {
	var parent, orientation string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a column at the root or inside --parent",
		Long: `Add a column. Root columns and columns added to a horizontal parent
split the width evenly with their horizontal siblings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.apply(cmd, layout.Request{
				Op:          layout.OpAddColumn,
				ParentID:    parent,
				Orientation: layout.Orientation(orientation),
			}, func(out layout.Outcome) { printSuccess("Added column %s", StyleHighlight.Render(out.CreatedID)) })
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent column id (default: root)")
	cmd.Flags().StringVar(&orientation, "orientation", string(layout.Horizontal), "horizontal or vertical")
	return cmd
}

func (c *CLI) columnRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm COLUMN",
		Aliases: []string{"delete"},
		Short:   "Delete a column with everything inside it",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.apply(cmd, layout.Request{Op: layout.OpDeleteColumn, ColumnID: args[0]},
				func(layout.Outcome) { printSuccess("Deleted column %s", args[0]) })
		},
	}
}

func (c *CLI) columnWidthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "width COLUMN WIDTH",
		Short: "Set a column's width in twelfths (1-12)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "width must be a number, got %q", args[1])
			}
			return c.apply(cmd, layout.Request{Op: layout.OpUpdateColumnWidth, ColumnID: args[0], Width: w},
				func(layout.Outcome) {
					printSuccess("Column %s is now %s", args[0], layout.WidthClass(layout.ClampWidth(w)))
				})
		},
	}
}

func (c *CLI) columnSetCommand() *cobra.Command {
	var (
		orientation, flex, gap string
		width                  int
	)

	cmd := &cobra.Command{
		Use:     "set COLUMN",
		Short:   "Change a column's orientation, width, alignment or gap",
		Example: `  pagesmith column set column-1 --flex "items-center justify-between" --gap 4`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u layout.ColumnUpdate
			if cmd.Flags().Changed("orientation") {
				o := layout.Orientation(orientation)
				u.Orientation = &o
			}
			if cmd.Flags().Changed("width") {
				u.Width = &width
			}
			if cmd.Flags().Changed("flex") {
				f := layout.ParseFlexLayout(flex)
				if !f.Valid() {
					return errors.New(errors.ErrCodeInvalidInput, "invalid flex layout %q", flex)
				}
				u.FlexLayout = &f
			}
			if cmd.Flags().Changed("gap") {
				g := layout.Gap(gap)
				if !g.Valid() {
					return errors.New(errors.ErrCodeInvalidInput, "invalid gap %q (want one of %v)", gap, layout.Gaps)
				}
				u.Gap = &g
			}
			if u.IsZero() {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to change: pass --orientation, --width, --flex or --gap")
			}
			return c.apply(cmd, layout.Request{Op: layout.OpUpdateColumn, ColumnID: args[0], Update: &u},
				func(layout.Outcome) { printSuccess("Updated column %s", args[0]) })
		},
	}

	cmd.Flags().StringVar(&orientation, "orientation", "", "horizontal or vertical")
	cmd.Flags().IntVar(&width, "width", 0, "width in twelfths")
	cmd.Flags().StringVar(&flex, "flex", "", `alignment, e.g. "items-center justify-between"`)
	cmd.Flags().StringVar(&gap, "gap", "", "gap token")
	return cmd
}

func (c *CLI) columnMoveCommand() *cobra.Command {
	var parent string

	cmd := &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the column at index FROM to index TO among its siblings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseIndexes(args)
			if err != nil {
				return err
			}
			return c.apply(cmd, layout.Request{Op: layout.OpMoveColumn, ParentID: parent, DragIndex: from, HoverIndex: to},
				func(layout.Outcome) { printSuccess("Moved column %d to %d", from, to) })
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "parent column id (default: root)")
	return cmd
}

// =============================================================================
// component
// =============================================================================

func (c *CLI) componentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Add, update, move and delete components",
	}
	cmd.AddCommand(c.componentAddCommand())
	cmd.AddCommand(c.componentSetCommand())
	cmd.AddCommand(c.componentRemoveCommand())
	cmd.AddCommand(c.componentMoveCommand())
	return cmd
}

func (c *CLI) componentAddCommand() *cobra.Command {
	var (
		column string
		props  []string
	)

	cmd := &cobra.Command{
		Use:   "add TYPE",
		Short: "Add a component with its default props",
		Long: `Add a component to --column, or to the selected column, or to the first
root column. --prop values are parsed as JSON when they parse, otherwise
taken as strings; any --prop replaces the default props entirely.`,
		Example: `  pagesmith component add button --prop text="Buy now" --prop variant=outline`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseProps(props)
			if err != nil {
				return err
			}
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if column == "" {
				column = e.session.PaletteTarget()
			}
			res, err := e.session.Apply(cmd.Context(), layout.Request{
				Op: layout.OpAddComponent, ColumnID: column, Type: args[0], Props: p,
			})
			if err != nil {
				return err
			}
			if printOutcome(res.Outcome) {
				printSuccess("Added %s %s to %s", args[0], StyleHighlight.Render(res.Outcome.CreatedID), column)
				if !e.session.Registry().Has(args[0]) {
					printWarning("%q is not a known component type; it will render as a placeholder", args[0])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "target column id")
	cmd.Flags().StringArrayVar(&props, "prop", nil, "prop as key=value (repeatable)")
	return cmd
}

func (c *CLI) componentSetCommand() *cobra.Command {
	var (
		column string
		props  []string
	)

	cmd := &cobra.Command{
		Use:   "set COMPONENT",
		Short: "Merge props into a component",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseProps(props)
			if err != nil {
				return err
			}
			if len(p) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "nothing to change: pass --prop key=value")
			}
			return c.apply(cmd, layout.Request{
				Op: layout.OpUpdateComponent, ComponentID: args[0], ColumnID: column, Props: p,
			}, func(layout.Outcome) { printSuccess("Updated %s", args[0]) })
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "column that owns the component")
	cmd.Flags().StringArrayVar(&props, "prop", nil, "prop as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func (c *CLI) componentRemoveCommand() *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:     "rm COMPONENT",
		Aliases: []string{"delete"},
		Short:   "Delete a component",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.apply(cmd, layout.Request{Op: layout.OpDeleteComponent, ComponentID: args[0], ColumnID: column},
				func(layout.Outcome) { printSuccess("Deleted %s", args[0]) })
		},
	}

	cmd.Flags().StringVar(&column, "column", "", "column that owns the component")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func (c *CLI) componentMoveCommand() *cobra.Command {
	var source, target string

	cmd := &cobra.Command{
		Use:   "move FROM TO",
		Short: "Move the component at index FROM of --from to index TO of --to",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseIndexes(args)
			if err != nil {
				return err
			}
			if target == "" {
				target = source
			}
			return c.apply(cmd, layout.Request{
				Op: layout.OpMoveComponent, SourceColumnID: source, TargetColumnID: target,
				DragIndex: from, HoverIndex: to,
			}, func(layout.Outcome) { printSuccess("Moved component %s[%d] to %s[%d]", source, from, target, to) })
		},
	}

	cmd.Flags().StringVar(&source, "from", "", "source column id")
	cmd.Flags().StringVar(&target, "to", "", "target column id (default: --from)")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// =============================================================================
// Helpers
// =============================================================================

// parseProps parses key=value pairs. Values that are valid JSON are decoded
// (numbers, booleans, arrays, objects); anything else is a string.
func parseProps(pairs []string) (layout.Props, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	props := make(layout.Props, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid prop %q (want key=value)", pair)
		}
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		props[key] = v
	}
	return props, nil
}

func parseIndexes(args []string) (int, int, error) {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "index must be a number, got %q", args[0])
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "index must be a number, got %q", args[1])
	}
	if from < 0 || to < 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "indexes must not be negative")
	}
	return from, to, nil
}
