package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/scenario"
)

// initCommand creates the init command that writes a sample scenario.
func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample scenario file",
		Long: `Write a sample lock screen scenario sized from the configured dimensions.

The format follows the extension (.toml or .json). Existing files are kept
unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := scenarioPath(args)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			cfg, err := c.config()
			if err != nil {
				return err
			}
			if err := scenario.Save(path, scenario.Sample(cfg.Dimens)); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Wrote sample scenario")
			printFile(path)
			printNewline()
			printNextStep("Explain it", "notifstack explain "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
