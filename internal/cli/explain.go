package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

// explainCommand creates the explain command.
func (c *CLI) explainCommand() *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "explain [scenario]",
		Short: "Show the per-row cost breakdown",
		Long: `Show how every eligible row was measured and whether it fit.

Each row costs its separator (divider plus gap, none for the first row) and
its content height (minimal on the lock screen, intrinsic otherwise; sticky
rows always use intrinsic). "+shelf" is the running total with the shelf
appended after that row.`,
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

			p := result.Plan
			fmt.Println(StyleTitle.Render(result.Scenario))
			printDetail("budget %s for notifications, %s total", px(p.Budget.Notifications), px(p.Budget.Total()))
			printNewline()
			fmt.Println(planTable(p, -1))
			printNewline()
			printKeyValue("count", StyleNumber.Render(fmt.Sprint(p.Count))+fmt.Sprintf(" of %d rows", p.Eligible))
			printKeyValue("height", px(p.Height))
			fmt.Println(planStats(p, result.CacheInfo.ResultHit))
			if p.Truncated() {
				printNewline()
				printWarning("%d rows did not fit", p.Eligible-p.Count)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// planTable renders the steps of p. The row at index cursor is bold;
// pass -1 for no cursor.
func planTable(p sizecalc.Plan, cursor int) string {
	rows := make([][]string, len(p.Steps))
	for i, s := range p.Steps {
		fits := "✓"
		if !s.Accepted {
			fits = "✗"
		}
		id := s.RowID
		if s.Sticky {
			id += " *"
		}
		rows[i] = []string{
			strconv.Itoa(s.VisibleIndex),
			id,
			s.Section,
			num(s.Content),
			num(s.Separator),
			num(s.Cumulative),
			num(s.Cumulative + s.ShelfCost),
			fits,
		}
	}

	firstRejected := p.Count
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Row", "Section", "Content", "Separator", "Total", "+Shelf", "Fits").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row < p.Count:
				style = style.Foreground(colorGreen)
			case row == firstRejected:
				style = style.Foreground(colorRed)
			default:
				style = style.Foreground(colorDim)
			}
			if row == cursor {
				style = style.Bold(true)
			}
			return style
		}).
		Render()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
