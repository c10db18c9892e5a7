package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/scenario"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

// exploreCommand creates the interactive explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		flags scenarioFlags
		step  float64
	)

	cmd := &cobra.Command{
		Use:   "explore [scenario]",
		Short: "Resize the notification budget interactively",
		Long: `Open an interactive view of the scenario.

Keys:
  ←/→ or -/+   shrink or grow the notification budget
  [ / ]        divide or multiply the budget step by 10
  l            toggle between the lock screen and the shade
  ↑/↓          move the row cursor
  q            quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(cmd, args, &flags)
			if err != nil {
				return err
			}
			cfg, err := c.config()
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(newExploreModel(sc, cfg.Dimens, step), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("explore: %w", err)
			}
			m := final.(exploreModel)
			printKeyValue("budget", px(m.sc.Budget.Notifications))
			printKeyValue("count", StyleNumber.Render(fmt.Sprint(m.plan.Count))+fmt.Sprintf(" of %d rows", m.plan.Eligible))
			printKeyValue("height", px(m.plan.Height))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&step, "step", 10, "initial budget step (px)")

	return cmd
}

// =============================================================================
// exploreModel - Interactive budget exploration
// =============================================================================

const (
	minExploreStep = 1
	maxExploreStep = 1000
)

// exploreModel is the bubbletea model for the explore command. It owns a
// private copy of the scenario and recomputes the plan after every change.
type exploreModel struct {
	sc     *scenario.Scenario
	res    dimens.Resources
	calc   *sizecalc.Calculator
	step   float64
	cursor int
	plan   sizecalc.Plan
}

func newExploreModel(sc *scenario.Scenario, res dimens.Resources, step float64) exploreModel {
	if step < minExploreStep {
		step = minExploreStep
	}
	cp := *sc
	m := exploreModel{
		sc:   &cp,
		res:  res,
		calc: sc.Calculator(res),
		step: step,
	}
	m.recompute()
	return m
}

// recompute rebuilds the stack, since its gaps depend on the lock sample.
func (m *exploreModel) recompute() {
	m.plan = m.calc.Plan(m.sc.Stack(m.res), m.sc.Budget, m.sc.Lock)
	if m.cursor >= len(m.plan.Steps) {
		m.cursor = max(len(m.plan.Steps)-1, 0)
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// The scenario is shared with earlier model values; copy before writing.
	sc := *m.sc
	m.sc = &sc

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.plan.Steps)-1 {
			m.cursor++
		}
		return m, nil
	case "right", "+", "=":
		m.sc.Budget.Notifications += m.step
	case "left", "-":
		m.sc.Budget.Notifications = max(m.sc.Budget.Notifications-m.step, 0)
	case "]":
		m.step = min(m.step*10, maxExploreStep)
		return m, nil
	case "[":
		m.step = max(m.step/10, minExploreStep)
		return m, nil
	case "l":
		if m.sc.Lock.OnLockscreen() {
			m.sc.Lock = lockstate.Unlocked
		} else {
			m.sc.Lock = lockstate.Locked
		}
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.sc.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ budget  [/] step  l lock  ↑/↓ row  q quit"))
	b.WriteString("\n\n")

	lock := "shade"
	if m.plan.OnLockscreen {
		lock = "lock screen"
	}
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n\n",
		StyleDim.Render("budget"), StyleNumber.Render(px(m.sc.Budget.Notifications)),
		StyleDim.Render("step"), StyleValue.Render(px(m.step)),
		StyleDim.Render("mode"), StyleValue.Render(lock))

	b.WriteString(planTable(m.plan, m.cursor))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s %s\n",
		StyleDim.Render("count"), StyleNumber.Render(fmt.Sprint(m.plan.Count)),
		StyleDim.Render(fmt.Sprintf("of %d · height %s", m.plan.Eligible, px(m.plan.Height))))
	if m.plan.Truncated() && m.plan.Count < len(m.plan.Steps) {
		next := m.plan.Steps[m.plan.Count]
		need := next.Cumulative - m.sc.Budget.Notifications
		if over := next.Cumulative + next.ShelfCost - m.sc.Budget.Total(); over > need {
			need = over
		}
		b.WriteString(StyleRejected.Render(fmt.Sprintf("%s needs %s more", next.RowID, px(need))))
		b.WriteString("\n")
	}

	return b.String()
}
