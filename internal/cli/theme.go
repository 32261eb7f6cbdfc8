package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/errors"
	"github.com/matzehuels/pagesmith/pkg/theme"
)

// =============================================================================
// template
// =============================================================================

func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Save, list and activate templates for site parts",
		Long: `Templates are saved layouts assigned to a site part (header, footer,
homepage, ...). Each part has at most one active template.

TEMPLATE arguments accept an id, a unique id prefix, or a unique name.`,
	}
	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateActivateCommand())
	cmd.AddCommand(c.templateConditionCommand())
	cmd.AddCommand(c.templateRenameCommand())
	cmd.AddCommand(c.templateRemoveCommand())
	cmd.AddCommand(c.templateLoadCommand())
	cmd.AddCommand(c.templateNewCommand())
	cmd.AddCommand(c.templatePartsCommand())
	return cmd
}

func (c *CLI) templateSaveCommand() *cobra.Command {
	var part, category string

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Save the current layout as the active template of a site part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			st := e.session.State()
			sitePart := st.Context.SitePart
			if part != "" {
				if sitePart, err = parsePart(part); err != nil {
					return err
				}
			}
			if sitePart == "" {
				return errors.New(errors.ErrCodeInvalidInput, "no site part is being edited; pass --part")
			}

			var saved theme.Template
			if _, err := c.updateCatalog(ctx, e, func(cat theme.Catalog) (theme.Catalog, error) {
				next, t, err := cat.Save(args[0], sitePart, st.Layout, category)
				saved = t
				return next, err
			}); err != nil {
				return err
			}
			if _, err := e.session.Bind(ctx, saved); err != nil {
				return err
			}
			printSuccess("Saved %s as the active %s template", StyleHighlight.Render(saved.Name), saved.SitePart)
			printKeyValue("id", saved.ID)
			printKeyValue("condition", saved.DisplayCondition)
			return nil
		},
	}

	cmd.Flags().StringVar(&part, "part", "", "site part (default: the part being edited)")
	cmd.Flags().StringVar(&category, "category", "", "category id (default: general)")
	return cmd
}

func (c *CLI) templateListCommand() *cobra.Command {
	var part string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved templates",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			cat, err := c.loadCatalog(cmd.Context(), e)
			if err != nil {
				return err
			}

			var sitePart theme.SitePart
			if part != "" {
				if sitePart, err = parsePart(part); err != nil {
					return err
				}
			}
			templates := cat.ForPart(sitePart)
			if len(templates) == 0 {
				printInfo("No templates saved yet")
				printNextStep("Save one", "pagesmith template new site-header && pagesmith template save Header")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), templateTable(templates, cat))
			return nil
		},
	}

	cmd.Flags().StringVar(&part, "part", "", "only templates of this site part")
	return cmd
}

func templateTable(templates []theme.Template, cat theme.Catalog) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		active := ""
		if t.IsActive {
			active = iconSuccess
		}
		category := t.Category
		if c, ok := cat.FindCategory(t.Category); ok {
			category = c.Name
		}
		rows = append(rows, []string{shortID(t.ID), t.Name, string(t.SitePart), active, t.DisplayCondition, category})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Site part", "Active", "Condition", "Category").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case templates[row].IsActive:
				return StyleSuccess
			case col == 0:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

func (c *CLI) templateActivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "activate TEMPLATE",
		Short: "Make a template the active one for its site part",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTemplate(cmd, args[0], func(cat theme.Catalog, t theme.Template) (theme.Catalog, error) {
				next, err := cat.SetActive(t.ID)
				if err == nil {
					printSuccess("%s is now the active %s template", t.Name, t.SitePart)
				}
				return next, err
			})
		},
	}
}

func (c *CLI) templateConditionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "condition TEMPLATE [CONDITION]",
		Short: "Show or set where a template is displayed",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTemplate(cmd, args[0], func(cat theme.Catalog, t theme.Template) (theme.Catalog, error) {
				if len(args) == 1 {
					printKeyValue("condition", t.DisplayCondition)
					printDetail("options: %s", strings.Join(theme.ConditionOptions(t.SitePart), ", "))
					return cat, nil
				}
				next, err := cat.UpdateCondition(t.ID, args[1])
				if err == nil {
					printSuccess("%s is displayed on: %s", t.Name, args[1])
				}
				return next, err
			})
		},
	}
}

func (c *CLI) templateRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename TEMPLATE NAME",
		Short: "Rename a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTemplate(cmd, args[0], func(cat theme.Catalog, t theme.Template) (theme.Catalog, error) {
				next, err := cat.Rename(t.ID, args[1])
				if err == nil {
					printSuccess("Renamed %s to %s", t.Name, args[1])
				}
				return next, err
			})
		},
	}
}

func (c *CLI) templateRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm TEMPLATE",
		Aliases: []string{"delete"},
		Short:   "Delete a template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withTemplate(cmd, args[0], func(cat theme.Catalog, t theme.Template) (theme.Catalog, error) {
				next, err := cat.Delete(t.ID)
				if err == nil {
					printSuccess("Deleted %s", t.Name)
					if t.IsActive {
						printWarning("%s has no active template now", t.SitePart)
					}
				}
				return next, err
			})
		},
	}
}

func (c *CLI) templateLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load TEMPLATE",
		Short: "Open a copy of a template in the editor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()
			cat, err := c.loadCatalog(ctx, e)
			if err != nil {
				return err
			}
			t, err := resolveTemplate(cat, args[0])
			if err != nil {
				return err
			}
			if _, err := e.session.LoadTemplate(ctx, t); err != nil {
				return err
			}
			printSuccess("Editing %s (%s)", StyleHighlight.Render(t.Name), t.SitePart)
			return nil
		},
	}
}

func (c *CLI) templateNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new PART",
		Short: "Start a blank layout for a site part",
		Long: `Start a blank layout for a site part. PART is a name or slug, e.g.
"Site Header" or site-header.`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			slugs := make([]string, len(theme.SiteParts))
			for i, p := range theme.SiteParts {
				slugs[i] = p.Slug()
			}
			return slugs, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := parsePart(args[0])
			if err != nil {
				return err
			}
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			if _, err := e.session.CreateNew(cmd.Context(), part); err != nil {
				return err
			}
			printSuccess("Started a new %s layout", part)
			printNextStep("Save it when done", `pagesmith template save "My `+string(part)+`"`)
			return nil
		},
	}
}

func (c *CLI) templatePartsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List the site parts and their active templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			cat, err := c.loadCatalog(cmd.Context(), e)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range cat.Parts() {
				active := StyleDim.Render("none")
				if p.Active != nil {
					active = StyleSuccess.Render(p.Active.Name)
				}
				fmt.Fprintf(w, "%-22s %s %s\n", p.Slug, active, StyleDim.Render(fmt.Sprintf("(%d)", p.Templates)))
			}
			return nil
		},
	}
}

// withTemplate resolves ref and saves the catalog fn returns.
func (c *CLI) withTemplate(cmd *cobra.Command, ref string, fn func(theme.Catalog, theme.Template) (theme.Catalog, error)) error {
	e, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()
	_, err = c.updateCatalog(cmd.Context(), e, func(cat theme.Catalog) (theme.Catalog, error) {
		t, err := resolveTemplate(cat, ref)
		if err != nil {
			return cat, err
		}
		return fn(cat, t)
	})
	return err
}

// resolveTemplate finds a template by id, unique id prefix or unique name.
func resolveTemplate(cat theme.Catalog, ref string) (theme.Template, error) {
	if t, ok := cat.Find(ref); ok {
		return t, nil
	}
	var matches []theme.Template
	for _, t := range cat.Templates {
		if strings.HasPrefix(t.ID, ref) || strings.HasPrefix(shortID(t.ID), ref) || strings.EqualFold(t.Name, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return theme.Template{}, errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", ref)
	default:
		return theme.Template{}, errors.New(errors.ErrCodeConflict, "%q matches %d templates; use the id", ref, len(matches))
	}
}

// shortID drops the "template-" prefix and keeps the first uuid group.
func shortID(id string) string {
	id = strings.TrimPrefix(id, "template-")
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func parsePart(s string) (theme.SitePart, error) {
	p, ok := theme.ParseSitePart(s)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown site part %q", s)
	}
	return p, nil
}

// =============================================================================
// category
// =============================================================================

func (c *CLI) categoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage template categories",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(cat theme.Catalog) (theme.Catalog, error) {
				next, added, err := cat.AddCategory(args[0])
				if err == nil {
					printSuccess("Added category %s", StyleHighlight.Render(added.Name))
					printKeyValue("id", added.ID)
				}
				return next, err
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(cat theme.Catalog) (theme.Catalog, error) {
				next, err := cat.RenameCategory(args[0], args[1])
				if err == nil {
					printSuccess("Renamed category to %s", args[1])
				}
				return next, err
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a category; its templates move to General",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(cat theme.Catalog) (theme.Catalog, error) {
				next, err := cat.DeleteCategory(args[0])
				if err == nil {
					printSuccess("Deleted category %s", args[0])
				}
				return next, err
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withCatalog(cmd, func(cat theme.Catalog) (theme.Catalog, error) {
				for _, category := range cat.Categories {
					n := 0
					for _, t := range cat.Templates {
						if t.Category == category.ID {
							n++
						}
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s\n", StyleDim.Render(category.ID), StyleValue.Render(category.Name), StyleDim.Render(fmt.Sprintf("(%d)", n)))
				}
				return cat, nil
			})
		},
	})
	return cmd
}

// withCatalog opens the store and saves the catalog fn returns.
func (c *CLI) withCatalog(cmd *cobra.Command, fn func(theme.Catalog) (theme.Catalog, error)) error {
	e, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()
	_, err = c.updateCatalog(cmd.Context(), e, fn)
	return err
}
