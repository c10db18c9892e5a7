package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/pipeline"
)

// sweepCommand creates the sweep command.
func (c *CLI) sweepCommand() *cobra.Command {
	var (
		flags  scenarioFlags
		opts   pipeline.SweepOptions
		all    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sweep [scenario]",
		Short: "Evaluate count and height over a range of notification budgets",
		Long: `Evaluate the scenario at every notification budget from --from to --to.

The shelf budget and shelf height stay fixed. By default only the budgets
where the count changes are listed; --all lists every point. The sweep also
checks that the count never decreases as the budget grows.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(cmd, args, &flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				if math.IsInf(sc.Budget.Notifications, 0) {
					return errors.New(errors.ErrCodeInvalidInput, "--to is required when space_for_notifications is unbounded")
				}
				opts.To = sc.Budget.Notifications
			}

			runner, err := c.newRunner(nil)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			result, err := runner.Sweep(cmd.Context(), sc, c.options(nil, flags.refresh), opts)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Swept %d budgets", len(result.Points)))

			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(sweepTable(result, all))
			if result.Monotonic {
				printSuccess("count is monotonic over %s..%s", px(opts.From), px(opts.To))
			} else {
				printWarning("count drops to %d at %s", result.Violation.Count, px(result.Violation.Space))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&opts.From, "from", 0, "first notification budget (px)")
	cmd.Flags().Float64Var(&opts.To, "to", 0, "last notification budget (px, default: the scenario's budget)")
	cmd.Flags().Float64Var(&opts.Step, "step", pipeline.DefaultSweepStep, "budget increment (px)")
	cmd.Flags().BoolVar(&all, "all", false, "list every point, not only count changes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the sweep as JSON")

	return cmd
}

// sweepTable lists the sweep points. Unless all is set, only the first
// point and the points where the count changes are shown.
func sweepTable(r *pipeline.SweepResult, all bool) string {
	var rows [][]string
	for i, pt := range r.Points {
		if !all && i > 0 && pt.Count == r.Points[i-1].Count {
			continue
		}
		rows = append(rows, []string{num(pt.Space), strconv.Itoa(pt.Count), num(pt.Height)})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Budget", "Count", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
