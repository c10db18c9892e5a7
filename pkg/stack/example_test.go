package stack_test

import (
	"fmt"

	"github.com/matzehuels/notifstack/pkg/stack"
)

func ExampleList_Gap() {
	l := &stack.List{
		Rows: []stack.Row{
			{ID: "call", Section: "heads_up", IntrinsicHeight: 120},
			{ID: "chat", Section: "people", IntrinsicHeight: 100},
			{ID: "news", Section: "people", IntrinsicHeight: 100},
		},
		GapHeight:    16,
		ShelfSection: "shelf",
	}

	rows := stack.Eligible(l)
	fmt.Println("call -> chat:", l.Gap(rows[0], rows[1], 1))
	fmt.Println("chat -> news:", l.Gap(rows[1], rows[2], 2))
	fmt.Println("news -> shelf:", l.Gap(rows[2], stack.Shelf, 3))
	// Output:
	// call -> chat: 16
	// chat -> news: 0
	// news -> shelf: 16
}

func ExampleEligible() {
	l := &stack.List{Rows: []stack.Row{
		{ID: "a"},
		{ID: "b", Removed: true},
		{ID: "c", Visibility: stack.Gone},
		{ID: "d"},
	}}

	for _, r := range stack.Eligible(l) {
		fmt.Println(r.ID)
	}
	// Output:
	// a
	// d
}
