package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator over HTTP until interrupted.

Endpoints:
  GET  /healthz
  POST /v1/compute      (?format=json|svg|text)
  POST /v1/count
  POST /v1/height
  POST /v1/sweep        (?from=&to=&step=)
  POST /v1/lockscreen

Request bodies are JSON scenarios, or lock signals for /v1/lockscreen.
Cache entries are kept apart from the CLI's under a "server:" prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cache.NewScopedKeyer(nil, "server:"))
			if err != nil {
				return err
			}
			defer runner.Close()

			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			srv := server.New(runner,
				server.WithResources(cfg.Dimens),
				server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
				server.WithLogger(c.Logger),
			)
			printInfo("Listening on %s", cfg.Server.Addr)
			return srv.ListenAndServe(cmd.Context(), server.ListenOptions{
				Addr:         cfg.Server.Addr,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
