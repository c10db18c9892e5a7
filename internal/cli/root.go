package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "notifstack sizes notification stacks",
		Long: `notifstack computes how many notification rows fit into the available space
together with the trailing shelf, and how much height they take.

Scenarios describe rows, budgets and lock state in TOML or JSON.
Run 'notifstack init' to write a sample.`,
		Version:           buildinfo.Get().Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/notifstack/config.toml, ./notifstack.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable caching")

	root.AddCommand(c.initCommand())
	root.AddCommand(c.countCommand())
	root.AddCommand(c.heightCommand())
	root.AddCommand(c.explainCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.lockscreenCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// preRun loads the configuration and sets the log level: --verbose wins,
// then [log] level from the config. Completion works without a config.
func (c *CLI) preRun(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "completion" {
		return nil
	}
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}
	cfg, err := c.config()
	if err != nil {
		return err
	}
	if !c.verbose {
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		c.SetLogLevel(level)
	}
	c.Logger.Debug("config loaded", "backend", backendName(cfg.Cache, c.noCache), "density", cfg.Dimens.Density)
	return nil
}
