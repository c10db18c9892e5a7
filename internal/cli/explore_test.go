package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/notifstack/pkg/dimens"
)

func press(m exploreModel, keys ...string) exploreModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(exploreModel)
	}
	return m
}

func TestExploreModelBudget(t *testing.T) {
	m := newExploreModel(parseTwoRows(t), dimens.Defaults(), 10)
	if m.plan.Count != 2 || m.plan.Height != 282 {
		t.Fatalf("initial plan = %d/%v, want 2/282", m.plan.Count, m.plan.Height)
	}

	// 233 + 13*10 = 363 leaves room for the third row at 354.
	grown := press(m, strings.Split(strings.Repeat("+", 13), "")...)
	if grown.sc.Budget.Notifications != 363 {
		t.Errorf("budget = %v, want 363", grown.sc.Budget.Notifications)
	}
	if grown.plan.Count != 3 {
		t.Errorf("count = %d, want 3", grown.plan.Count)
	}
	if m.sc.Budget.Notifications != 233 || m.plan.Count != 2 {
		t.Error("Update() modified an earlier model")
	}

	shrunk := press(m, "]", "]", "left")
	if shrunk.step != maxExploreStep {
		t.Errorf("step = %v, want %v", shrunk.step, maxExploreStep)
	}
	if shrunk.sc.Budget.Notifications != 0 {
		t.Errorf("budget = %v, want 0", shrunk.sc.Budget.Notifications)
	}
	if shrunk.plan.Count != 0 || shrunk.plan.Height != 36 {
		t.Errorf("plan = %d/%v, want 0/36", shrunk.plan.Count, shrunk.plan.Height)
	}
}

func TestExploreModelStepBounds(t *testing.T) {
	m := newExploreModel(parseTwoRows(t), dimens.Defaults(), 0)
	if m.step != minExploreStep {
		t.Errorf("step = %v, want %v", m.step, minExploreStep)
	}
	if got := press(m, "[").step; got != minExploreStep {
		t.Errorf("step after [ = %v, want %v", got, minExploreStep)
	}
	if got := press(m, "]", "]", "]", "]").step; got != maxExploreStep {
		t.Errorf("step after ]x4 = %v, want %v", got, maxExploreStep)
	}
}

func TestExploreModelCursor(t *testing.T) {
	m := newExploreModel(parseTwoRows(t), dimens.Defaults(), 10)

	if got := press(m, "up").cursor; got != 0 {
		t.Errorf("cursor after up = %d, want 0", got)
	}
	if got := press(m, "down", "j", "down", "down").cursor; got != 2 {
		t.Errorf("cursor after 4 downs = %d, want 2", got)
	}
	if got := press(m, "down", "k").cursor; got != 0 {
		t.Errorf("cursor after down, k = %d, want 0", got)
	}
}

func TestExploreModelLockToggle(t *testing.T) {
	m := newExploreModel(parseTwoRows(t), dimens.Defaults(), 10)

	locked := press(m, "l")
	if !locked.plan.OnLockscreen {
		t.Error("expected lock screen after l")
	}
	if press(locked, "l").plan.OnLockscreen {
		t.Error("expected shade after l, l")
	}
}

func TestExploreModelQuit(t *testing.T) {
	m := newExploreModel(parseTwoRows(t), dimens.Defaults(), 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestExploreModelView(t *testing.T) {
	view := newExploreModel(parseTwoRows(t), dimens.Defaults(), 10).View()

	for _, want := range []string{"space for two", "233px", "c needs 121px more"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
