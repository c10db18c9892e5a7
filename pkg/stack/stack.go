package stack

import (
	"fmt"
	"strings"

	"github.com/matzehuels/notifstack/pkg/errors"
)

// Visibility mirrors view visibility. Only Visible rows are eligible.
type Visibility int

const (
	Visible Visibility = iota
	Invisible
	Gone
)

var visibilityNames = map[Visibility]string{
	Visible:   "visible",
	Invisible: "invisible",
	Gone:      "gone",
}

func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v Visibility) MarshalText() ([]byte, error) {
	if _, ok := visibilityNames[v]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidRow, "unknown visibility %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for vis, name := range visibilityNames {
		if name == s {
			*v = vis
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidRow,
		"unknown visibility %q (must be one of: visible, invisible, gone)", string(text))
}

// Item is anything that can occupy a position in the stack: a Row or the Shelf.
type Item interface {
	isItem()
}

// Row is a single notification row as seen by the calculator.
// Rows are values; the calculator never modifies them.
type Row struct {
	ID      string `json:"id" toml:"id"`
	Section string `json:"section,omitempty" toml:"section"`

	// MinimalHeight is used when the row is compacted on the lock screen.
	MinimalHeight float64 `json:"min_height" toml:"min_height"`
	// IntrinsicHeight is the natural height. By convention >= MinimalHeight.
	IntrinsicHeight float64 `json:"intrinsic_height" toml:"intrinsic_height"`

	Removed    bool       `json:"removed,omitempty" toml:"removed"`
	Visibility Visibility `json:"visibility" toml:"visibility"`

	// Sticky rows (e.g. a fresh, non-demoted full-screen-intent alert) are
	// always measured at IntrinsicHeight.
	Sticky bool `json:"sticky,omitempty" toml:"sticky"`
}

func (Row) isItem() {}

// Eligible reports whether the row takes part in sizing.
func (r Row) Eligible() bool {
	return !r.Removed && r.Visibility == Visible
}

// Validate checks both heights are finite and non-negative.
func (r Row) Validate() error {
	if err := errors.ValidateHeight(fmt.Sprintf("row %q min_height", r.ID), r.MinimalHeight); err != nil {
		return err
	}
	return errors.ValidateHeight(fmt.Sprintf("row %q intrinsic_height", r.ID), r.IntrinsicHeight)
}

type shelf struct{}

func (shelf) isItem() {}

func (shelf) String() string { return "shelf" }

// Shelf is the marker passed to Gap for the trailing shelf element.
var Shelf Item = shelf{}

// IsShelf reports whether it is the Shelf marker.
func IsShelf(it Item) bool {
	_, ok := it.(shelf)
	return ok
}

// Stack is the read-only view of the notification stack.
//
// RowAt must accept every index in [0, RowCount()). Gap returns the extra
// distance required between previous and current when current sits at
// visibleIndex among eligible items; previous is nil for the first item.
type Stack interface {
	RowCount() int
	RowAt(index int) Row
	Gap(previous, current Item, visibleIndex int) float64
}

// Eligible reads the snapshot once and returns the eligible rows in order.
func Eligible(s Stack) []Row {
	n := s.RowCount()
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		if r := s.RowAt(i); r.Eligible() {
			rows = append(rows, r)
		}
	}
	return rows
}
