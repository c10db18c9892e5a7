package sizecalc

import (
	"github.com/matzehuels/notifstack/pkg/errors"
)

// Budget is the space available for one layout pass.
type Budget struct {
	// Notifications is the space reserved for rows, excluding the shelf.
	Notifications float64 `json:"space_for_notifications" toml:"space_for_notifications"`
	// Shelf is the space reserved for the shelf and its leading separator.
	Shelf float64 `json:"space_for_shelf" toml:"space_for_shelf"`
	// ShelfHeight is the shelf's own content height.
	ShelfHeight float64 `json:"shelf_height" toml:"shelf_height"`
}

// Total is the combined notifications and shelf budget.
func (b Budget) Total() float64 {
	return b.Notifications + b.Shelf
}

// Validate reports malformed budgets as INVALID_BUDGET errors.
func (b Budget) Validate() error {
	if err := errors.ValidateBudget("space_for_notifications", b.Notifications); err != nil {
		return err
	}
	if err := errors.ValidateBudget("space_for_shelf", b.Shelf); err != nil {
		return err
	}
	if err := errors.ValidateHeight("shelf_height", b.ShelfHeight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBudget, err, "invalid shelf height")
	}
	return nil
}

func mustBudget(b Budget) {
	if err := b.Validate(); err != nil {
		errors.Violation("%v", err)
	}
}
