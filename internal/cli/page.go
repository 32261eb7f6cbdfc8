package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/config"
	"github.com/matzehuels/pagesmith/pkg/layout"
)

// initCommand creates the init command.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file and start a blank page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				printInfo("Config already exists at %s", path)
			} else {
				if err := config.Write(config.Default(), path); err != nil {
					return err
				}
				printSuccess("Wrote config")
				printFile(path)
			}

			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()
			if _, err := e.session.Reset(cmd.Context()); err != nil {
				return err
			}
			printSuccess("Started a blank page")
			printKeyValue("store", e.cfg.Store.Backend)
			printNextStep("Add a component", "pagesmith component add text")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// showCommand creates the show command.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			st := e.session.State()
			if asJSON {
				return layout.Write(st.Layout, cmd.OutOrStdout())
			}
			if st.Context.SitePart != "" {
				editing := string(st.Context.SitePart)
				if st.Context.TemplateName != "" {
					editing += " / " + st.Context.TemplateName
				}
				printKeyValue("editing", editing)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTree(st.Layout, e.session.Registry(), st.Selection))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	return cmd
}

// containerWidthCommand creates the container-width command.
func (c *CLI) containerWidthCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "container-width WIDTH",
		Short:   "Set the page container width (auto or a CSS length)",
		Example: "  pagesmith container-width 1200px",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.apply(cmd, layout.Request{Op: layout.OpUpdateContainerWidth, ContainerWidth: args[0]},
				func(layout.Outcome) { printSuccess("Container width set to %s", args[0]) })
		},
	}
}

// apply runs req against the persisted session and reports the outcome.
func (c *CLI) apply(cmd *cobra.Command, req layout.Request, onSuccess func(layout.Outcome)) error {
	e, err := c.open(cmd.Context())
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := e.session.Apply(cmd.Context(), req)
	if err != nil {
		return err
	}
	if printOutcome(res.Outcome) && onSuccess != nil {
		onSuccess(res.Outcome)
	}
	return nil
}
