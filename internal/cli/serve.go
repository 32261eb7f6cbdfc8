package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the editor over an HTTP JSON API",
		Long: `Serve the editor over an HTTP JSON API. The server edits the same
persisted page as the other commands and stops on interrupt.`,
		Example: "  pagesmith serve --addr 127.0.0.1:8080",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			runner := c.newRunner(ctx, e.cfg, noCache)
			defer runner.Close()

			srv, err := server.New(ctx, e.session, e.store, runner, c.Logger)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = e.cfg.Server.Addr
			}
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			printDetail("store: %s", e.cfg.Store.Backend)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}
