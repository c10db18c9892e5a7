package scenario

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/lockstate"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
	"github.com/matzehuels/notifstack/pkg/stack"
)

// Scenario is one layout pass described as data.
type Scenario struct {
	Name        string `toml:"name" json:"name,omitempty"`
	Description string `toml:"description" json:"description,omitempty"`

	// DividerHeight overrides the divider from the resources, in pixels.
	DividerHeight *float64 `toml:"divider_height" json:"divider_height,omitempty"`
	// GapHeight overrides the section gap from the resources, in pixels.
	GapHeight *float64 `toml:"gap_height" json:"gap_height,omitempty"`
	// LockscreenGapHeight enables the keyguard gap. Nil keeps GapHeight.
	LockscreenGapHeight *float64 `toml:"lockscreen_gap_height" json:"lockscreen_gap_height,omitempty"`
	ShelfSection        string   `toml:"shelf_section" json:"shelf_section,omitempty"`

	Budget sizecalc.Budget   `toml:"budget" json:"budget"`
	Lock   lockstate.Signals `toml:"lock" json:"lock"`
	Rows   []stack.Row       `toml:"rows" json:"rows"`

	// Count, when set, asks for the height of exactly this many rows.
	Count *int `toml:"count" json:"count,omitempty"`
}

// Validate checks the scenario without panicking.
func (s *Scenario) Validate() error {
	seen := make(map[string]bool, len(s.Rows))
	eligible := 0
	for i, r := range s.Rows {
		if err := errors.ValidateRowID(r.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRow, err, "rows[%d]", i)
		}
		if seen[r.ID] {
			return errors.New(errors.ErrCodeInvalidScenario, "duplicate row id %q", r.ID)
		}
		seen[r.ID] = true
		if err := r.Validate(); err != nil {
			return err
		}
		if r.Eligible() {
			eligible++
		}
	}

	dims := []struct {
		name string
		v    *float64
	}{
		{"divider_height", s.DividerHeight},
		{"gap_height", s.GapHeight},
		{"lockscreen_gap_height", s.LockscreenGapHeight},
	}
	for _, d := range dims {
		if d.v == nil {
			continue
		}
		if err := errors.ValidateHeight(d.name, *d.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "invalid %s", d.name)
		}
	}

	if err := s.Budget.Validate(); err != nil {
		return err
	}
	if err := s.Lock.Validate(); err != nil {
		return err
	}
	if s.Count != nil && (*s.Count < 0 || *s.Count > eligible) {
		return errors.New(errors.ErrCodeInvalidScenario,
			"count %d out of range [0, %d]", *s.Count, eligible)
	}
	return nil
}

// Stack builds the in-memory stack for the scenario. Gaps missing from the
// scenario come from res.
func (s *Scenario) Stack(res dimens.Resources) *stack.List {
	l := &stack.List{
		Rows:                s.Rows,
		GapHeight:           res.GapHeight(),
		LockscreenGapHeight: s.LockscreenGapHeight,
		ShelfSection:        s.ShelfSection,
		Lock:                s.Lock,
	}
	if s.GapHeight != nil {
		l.GapHeight = *s.GapHeight
	}
	return l
}

// Calculator builds a calculator using the scenario's divider, or the one
// from res when the scenario has none.
func (s *Scenario) Calculator(res dimens.Resources) *sizecalc.Calculator {
	if s.DividerHeight != nil {
		return sizecalc.New(sizecalc.WithDividerHeight(*s.DividerHeight))
	}
	return sizecalc.New(sizecalc.WithResources(res))
}

// WithNotificationSpace returns a copy with the notifications budget replaced.
func (s *Scenario) WithNotificationSpace(space float64) *Scenario {
	cp := *s
	cp.Budget.Notifications = space
	return &cp
}

// WithLock returns a copy with the lock sample replaced.
func (s *Scenario) WithLock(lock lockstate.Signals) *Scenario {
	cp := *s
	cp.Lock = lock
	return &cp
}

// Hash returns a content hash of the scenario. Name and description do not
// take part, so renaming a scenario keeps its cached results. The TOML
// encoding is used because it can represent infinite budgets. A scenario
// that cannot be encoded is a contract violation; validate first.
func (s *Scenario) Hash() string {
	cp := *s
	cp.Name, cp.Description = "", ""
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cp); err != nil {
		errors.Violation("hash scenario: %v", err)
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
