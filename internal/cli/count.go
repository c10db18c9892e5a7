package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	var (
		flags scenarioFlags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "count [scenario]",
		Short: "Compute how many rows fit together with the shelf",
		Long: `Compute the maximum number of rows that fit in the notification budget.

Rows are taken in order. A row is accepted while the running height stays
within space_for_notifications and the running height plus the shelf stays
within space_for_notifications + space_for_shelf. The scan stops at the
first row that does not fit.

The scenario defaults to ./scenario.toml (see 'notifstack init').`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(cmd, args, &flags)
			if err != nil {
				return err
			}
			result, err := c.evaluate(cmd.Context(), sc, flags.refresh, nil)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Println(result.Plan.Count)
				return nil
			}
			p := result.Plan
			printKeyValue("count", StyleNumber.Render(fmt.Sprint(p.Count))+fmt.Sprintf(" of %d rows", p.Eligible))
			printKeyValue("height", px(p.Height))
			fmt.Println(planStats(p, result.CacheInfo.ResultHit))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the number")

	return cmd
}
