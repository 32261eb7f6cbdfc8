package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/registry"
)

// paletteCommand creates the palette command.
func (c *CLI) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [QUERY]",
		Short: "List the component types, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			groups := registry.Default().Search(query)
			if len(groups) == 0 {
				printInfo("No component matches %q", query)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable(groups))
			return nil
		},
	}
}

// paletteTable renders groups as one table, a category header row before
// each group.
func paletteTable(groups []registry.Group) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	categoryStyle := lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

	var (
		rows       [][]string
		categories = map[int]bool{}
	)
	for _, g := range groups {
		categories[len(rows)] = true
		rows = append(rows, []string{string(g.Category), "", ""})
		for _, d := range g.Definitions {
			rows = append(rows, []string{"  " + d.Type, d.Label, d.Description})
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Label", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case categories[row]:
				return categoryStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorAmber)
			case col == 2:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}
