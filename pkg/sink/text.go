package sink

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

// RenderText writes the plan as an unstyled table followed by a summary.
func RenderText(p sizecalc.Plan) []byte {
	rows := make([][]string, 0, len(p.Steps))
	for _, s := range p.Steps {
		status := "fits"
		if !s.Accepted {
			status = "-"
		}
		id := s.RowID
		if s.Sticky {
			id += "*"
		}
		rows = append(rows, []string{
			fmt.Sprint(s.VisibleIndex),
			id,
			s.Section,
			num(s.Content),
			num(s.Separator),
			num(s.Cumulative),
			num(s.Cumulative + s.ShelfCost),
			status,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ROW", "SECTION", "CONTENT", "SEP", "TOTAL", "+SHELF", "").
		Rows(rows...)

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	fmt.Fprintf(&b, "count %d of %d eligible (%d skipped), height %s\n",
		p.Count, p.Eligible, p.Skipped, num(p.Height))
	fmt.Fprintf(&b, "budget %s for notifications, %s total, shelf %s\n",
		num(p.Budget.Notifications), num(p.Budget.Total()), num(p.Budget.ShelfHeight))
	if p.OnLockscreen {
		b.WriteString("on lock screen: non-sticky rows use their minimal height\n")
	}
	return []byte(b.String())
}

func num(v float64) string {
	switch {
	case math.IsInf(v, 1), v >= math.MaxFloat64/2:
		return "unbounded"
	default:
		return fmt.Sprintf("%g", v)
	}
}
