package stack

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/lockstate"
)

func TestRowEligible(t *testing.T) {
	tests := []struct {
		name string
		row  Row
		want bool
	}{
		{"visible", Row{ID: "a"}, true},
		{"removed", Row{ID: "a", Removed: true}, false},
		{"invisible", Row{ID: "a", Visibility: Invisible}, false},
		{"gone", Row{ID: "a", Visibility: Gone}, false},
		{"sticky but removed", Row{ID: "a", Sticky: true, Removed: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.row.Eligible(); got != tt.want {
				t.Errorf("Eligible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEligiblePreservesOrder(t *testing.T) {
	l := &List{Rows: []Row{
		{ID: "a"},
		{ID: "b", Removed: true},
		{ID: "c"},
		{ID: "d", Visibility: Gone},
		{ID: "e"},
	}}

	rows := Eligible(l)
	var ids []string
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	if len(ids) != 3 || ids[0] != "a" || ids[1] != "c" || ids[2] != "e" {
		t.Errorf("Eligible() ids = %v, want [a c e]", ids)
	}
}

func TestListGap(t *testing.T) {
	a1 := Row{ID: "a1", Section: "alerting"}
	a2 := Row{ID: "a2", Section: "alerting"}
	s1 := Row{ID: "s1", Section: "silent"}

	l := &List{GapHeight: 16}
	tests := []struct {
		name         string
		prev, cur    Item
		visibleIndex int
		want         float64
	}{
		{"first item", nil, a1, 0, 0},
		{"index zero ignores sections", s1, a1, 0, 0},
		{"same section", a1, a2, 1, 0},
		{"new section", a2, s1, 2, 16},
		{"shelf without section", s1, Shelf, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Gap(tt.prev, tt.cur, tt.visibleIndex); got != tt.want {
				t.Errorf("Gap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListShelfSection(t *testing.T) {
	row := Row{ID: "a", Section: "alerting"}

	l := &List{GapHeight: 8, ShelfSection: "shelf"}
	if got := l.Gap(row, Shelf, 1); got != 8 {
		t.Errorf("Gap(row, Shelf) = %v, want 8", got)
	}
	if got := l.Gap(nil, Shelf, 0); got != 0 {
		t.Errorf("Gap(nil, Shelf, 0) = %v, want 0", got)
	}

	l.ShelfSection = "alerting"
	if got := l.Gap(row, Shelf, 1); got != 0 {
		t.Errorf("Gap(row, Shelf) in same section = %v, want 0", got)
	}
}

func TestListLockscreenGap(t *testing.T) {
	lockGap := 4.0
	a := Row{ID: "a", Section: "people"}
	b := Row{ID: "b", Section: "alerting"}

	tests := []struct {
		name string
		lock lockstate.Signals
		want float64
	}{
		{"shade", lockstate.Unlocked, 20},
		{"keyguard at rest", lockstate.Locked, 4},
		{"keyguard half way", lockstate.Signals{State: lockstate.Keyguard, FractionToShade: 0.5}, 12},
		{"keyguard fully dragged", lockstate.Signals{State: lockstate.Keyguard, FractionToShade: 1}, 20},
		{"shade locked", lockstate.Signals{State: lockstate.ShadeLocked}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{GapHeight: 20, LockscreenGapHeight: &lockGap, Lock: tt.lock}
			if got := l.Gap(a, b, 1); got != tt.want {
				t.Errorf("Gap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListWithLock(t *testing.T) {
	lockGap := 4.0
	a := Row{ID: "a", Section: "people"}
	b := Row{ID: "b", Section: "alerting"}
	l := &List{GapHeight: 20, LockscreenGapHeight: &lockGap}

	locked := l.WithLock(lockstate.Locked)
	if got := locked.Gap(a, b, 1); got != 4 {
		t.Errorf("WithLock(Locked).Gap() = %v, want 4", got)
	}
	if got := l.Gap(a, b, 1); got != 20 {
		t.Errorf("original Gap() = %v, want 20", got)
	}
}

func TestListRowAtOutOfRange(t *testing.T) {
	l := &List{Rows: []Row{{ID: "a"}}}

	defer func() {
		err := errors.FromPanic(recover())
		if !errors.Is(err, errors.ErrCodeContractViolation) {
			t.Fatalf("RowAt(1) recovered %v, want contract violation", err)
		}
	}()
	_ = l.RowAt(1)
}

func TestListValidate(t *testing.T) {
	neg := -1.0
	tests := []struct {
		name    string
		list    *List
		wantErr bool
	}{
		{"empty", &List{}, false},
		{"valid rows", &List{Rows: []Row{{ID: "a", MinimalHeight: 5, IntrinsicHeight: 10}}}, false},
		{"negative min height", &List{Rows: []Row{{ID: "a", MinimalHeight: -5}}}, true},
		{"negative gap", &List{GapHeight: -2}, true},
		{"negative lockscreen gap", &List{LockscreenGapHeight: &neg}, true},
		{"bad fraction", &List{Lock: lockstate.Signals{FractionToShade: 2}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVisibilityText(t *testing.T) {
	var r Row
	if err := json.Unmarshal([]byte(`{"id":"x","visibility":"gone"}`), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Visibility != Gone {
		t.Errorf("Visibility = %v, want gone", r.Visibility)
	}

	if err := json.Unmarshal([]byte(`{"id":"x","visibility":"hidden"}`), &r); err == nil {
		t.Error("Unmarshal should reject unknown visibility")
	}

	data, err := json.Marshal(Row{ID: "x", IntrinsicHeight: 10})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"x","min_height":0,"intrinsic_height":10,"visibility":"visible"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestIsShelf(t *testing.T) {
	if !IsShelf(Shelf) {
		t.Error("IsShelf(Shelf) = false")
	}
	if IsShelf(Row{}) {
		t.Error("IsShelf(Row{}) = true")
	}
	if IsShelf(nil) {
		t.Error("IsShelf(nil) = true")
	}
}
