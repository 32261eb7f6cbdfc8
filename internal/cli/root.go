package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/buildinfo"
	"github.com/matzehuels/pagesmith/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pagesmith",
		Short: "Pagesmith builds page layouts and generates React code from them",
		Long: `Pagesmith edits a page as a tree of columns and components, keeps
templates for every part of a site, and generates a React/JSX component
from the current layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.Path()+")")
	root.PersistentFlags().BoolVar(&c.strict, "strict", false, "fail on unknown column and component ids")

	root.AddCommand(c.initCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.columnCommand())
	root.AddCommand(c.componentCommand())
	root.AddCommand(c.containerWidthCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.categoryCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
