package sizecalc_test

import (
	"fmt"

	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
	"github.com/matzehuels/notifstack/pkg/stack"
)

func Example() {
	s := &stack.List{
		Rows: []stack.Row{
			{ID: "call", Section: "heads_up", MinimalHeight: 60, IntrinsicHeight: 140, Sticky: true},
			{ID: "chat", Section: "people", MinimalHeight: 60, IntrinsicHeight: 106},
			{ID: "mail", Section: "alerting", MinimalHeight: 60, IntrinsicHeight: 106},
		},
		GapHeight:    16,
		ShelfSection: "shelf",
		Lock:         lockstate.Locked,
	}
	calc := sizecalc.New(sizecalc.WithDividerHeight(2))
	b := sizecalc.Budget{Notifications: 240, Shelf: 50, ShelfHeight: 32}

	n := calc.ComputeMaxCount(s, b, lockstate.Locked)
	fmt.Println("count:", n)
	fmt.Println("height:", calc.ComputeHeight(s, n, b.ShelfHeight, lockstate.Locked))
	// Output:
	// count: 2
	// height: 268
}

func ExampleCalculator_Plan() {
	s := &stack.List{
		Rows: []stack.Row{
			{ID: "a", MinimalHeight: 50, IntrinsicHeight: 100},
			{ID: "b", MinimalHeight: 50, IntrinsicHeight: 100},
			{ID: "c", MinimalHeight: 50, IntrinsicHeight: 100},
		},
	}
	calc := sizecalc.New(sizecalc.WithDividerHeight(4))
	p := calc.Plan(s, sizecalc.Budget{Notifications: 210, Shelf: 40, ShelfHeight: 30}, lockstate.Unlocked)

	for _, st := range p.Steps {
		fmt.Printf("%s +%g = %g accepted=%v\n", st.RowID, st.Separator+st.Content, st.Cumulative, st.Accepted)
	}
	fmt.Println("count:", p.Count, "height:", p.Height)
	// Output:
	// a +100 = 100 accepted=true
	// b +104 = 204 accepted=true
	// c +104 = 308 accepted=false
	// count: 2 height: 238
}

func ExampleCalculator_SpaceNeeded() {
	calc := sizecalc.New()
	row := stack.Row{ID: "r", MinimalHeight: 5, IntrinsicHeight: 10}

	fmt.Println(calc.SpaceNeeded(row, true))
	fmt.Println(calc.SpaceNeeded(row, false))
	row.Sticky = true
	fmt.Println(calc.SpaceNeeded(row, true))
	// Output:
	// 5
	// 10
	// 10
}
