package sink

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
	"github.com/matzehuels/notifstack/pkg/stack"
)

func testPlan(t *testing.T, b sizecalc.Budget) sizecalc.Plan {
	t.Helper()
	s := &stack.List{
		Rows: []stack.Row{
			{ID: "call", Section: "heads_up", MinimalHeight: 60, IntrinsicHeight: 140, Sticky: true},
			{ID: "chat", Section: "people", MinimalHeight: 60, IntrinsicHeight: 106},
			{ID: "old", Section: "people", Removed: true},
			{ID: "mail", Section: "alerting", MinimalHeight: 60, IntrinsicHeight: 106},
		},
		GapHeight:    16,
		ShelfSection: "shelf",
		Lock:         lockstate.Locked,
	}
	return sizecalc.New(sizecalc.WithDividerHeight(2)).Plan(s, b, lockstate.Locked)
}

var budget = sizecalc.Budget{Notifications: 240, Shelf: 50, ShelfHeight: 32}

func TestRenderJSON(t *testing.T) {
	p := testPlan(t, budget)

	data, err := RenderJSON(p, WithJSONName("lock"), WithJSONHash("abc"), WithJSONRequested(1, 190))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Scenario != "lock" || out.Hash != "abc" {
		t.Errorf("Scenario/Hash = %q/%q", out.Scenario, out.Hash)
	}
	if out.Count != 2 || out.Height != 268 {
		t.Errorf("Count/Height = %d/%v, want 2/268", out.Count, out.Height)
	}
	if out.Eligible != 3 || out.Skipped != 1 || !out.Truncated || !out.OnLockscreen {
		t.Errorf("summary = %+v", out)
	}
	if len(out.Steps) != 3 || out.Steps[0].RowID != "call" || !out.Steps[1].Accepted || out.Steps[2].Accepted {
		t.Errorf("Steps = %+v", out.Steps)
	}
	if out.Requested == nil || out.Requested.Count != 1 || out.Requested.Height != 190 {
		t.Errorf("Requested = %+v", out.Requested)
	}
	if out.Budget.Notifications == nil || *out.Budget.Notifications != 240 {
		t.Errorf("Budget = %+v", out.Budget)
	}
}

func TestRenderJSONInfiniteBudget(t *testing.T) {
	p := testPlan(t, sizecalc.Budget{Notifications: math.Inf(1), Shelf: math.Inf(1), ShelfHeight: 32})

	data, err := RenderJSON(p, WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !strings.Contains(string(data), `"space_for_notifications":null`) {
		t.Errorf("infinite budget should be null: %s", data)
	}
	if strings.Contains(string(data), "\n") {
		t.Error("compact output should be a single line")
	}
}

func TestRenderSVG(t *testing.T) {
	p := testPlan(t, budget)
	svg := string(RenderSVG(p, WithTitle("a <b>"), WithWidth(200)))

	if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("not an svg document:\n%s", svg)
	}
	for _, want := range []string{
		`id="row-call"`,
		`id="row-chat"`,
		`id="row-mail" class="row rejected"`,
		`id="shelf"`,
		`class="budget"`,
		"a &lt;b&gt;",
		"(sticky)",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, "row-old") {
		t.Error("removed row should not be drawn")
	}
	if got := strings.Count(svg, `class="budget"`); got != 2 {
		t.Errorf("budget lines = %d, want 2", got)
	}
}

func TestRenderSVGUnboundedBudget(t *testing.T) {
	p := testPlan(t, sizecalc.Budget{Notifications: math.MaxFloat64, Shelf: math.MaxFloat64, ShelfHeight: 32})
	svg := string(RenderSVG(p))

	if strings.Contains(svg, `class="budget"`) {
		t.Error("unbounded budgets should not be drawn")
	}
	// The stylesheet names the rejected class, so match the element.
	if strings.Contains(svg, `class="row rejected"`) {
		t.Error("no row should be rejected with an unbounded budget")
	}
	if !strings.Contains(svg, `id="row-mail" class="row"`) {
		t.Error("last row should be drawn as accepted")
	}
}

func TestRenderText(t *testing.T) {
	p := testPlan(t, budget)
	text := string(RenderText(p))

	for _, want := range []string{"call*", "chat", "mail", "count 2 of 3 eligible (1 skipped), height 268", "on lock screen"} {
		if !strings.Contains(text, want) {
			t.Errorf("text missing %q:\n%s", want, text)
		}
	}

	unbounded := string(RenderText(testPlan(t, sizecalc.Budget{Notifications: math.Inf(1), Shelf: 0, ShelfHeight: 32})))
	if !strings.Contains(unbounded, "unbounded") {
		t.Errorf("infinite budget should print as unbounded:\n%s", unbounded)
	}
}
