package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// heightCommand creates the height command.
func (c *CLI) heightCommand() *cobra.Command {
	var (
		flags scenarioFlags
		count int
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "height [scenario]",
		Short: "Compute the height of the first rows plus the shelf",
		Long: `Compute the height consumed by the first N eligible rows plus the shelf.

N comes from --count, then from the scenario's "count" key. Without either,
the height of the rows that fit (see 'count') is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(cmd, args, &flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("count") {
				sc.Count = &count
				if err := sc.Validate(); err != nil {
					return err
				}
			}

			result, err := c.evaluate(cmd.Context(), sc, flags.refresh, nil)
			if err != nil {
				return err
			}

			n, height := result.Plan.Count, result.Plan.Height
			if result.Requested != nil {
				n, height = result.Requested.Count, result.Requested.Height
			}
			if quiet {
				fmt.Println(height)
				return nil
			}
			printKeyValue("rows", StyleNumber.Render(fmt.Sprint(n)))
			printKeyValue("height", px(height))
			fmt.Println(planStats(result.Plan, result.CacheInfo.ResultHit))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of rows to measure")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the number")

	return cmd
}
