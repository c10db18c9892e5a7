package sink

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	name      string
	hash      string
	requested *jsonRequested
	compact   bool
}

// WithJSONName records the scenario name.
func WithJSONName(name string) JSONOption { return func(r *jsonRenderer) { r.name = name } }

// WithJSONHash records the scenario content hash.
func WithJSONHash(hash string) JSONOption { return func(r *jsonRenderer) { r.hash = hash } }

// WithJSONRequested records the height computed for an explicitly requested
// row count.
func WithJSONRequested(count int, height float64) JSONOption {
	return func(r *jsonRenderer) { r.requested = &jsonRequested{Count: count, Height: height} }
}

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	Scenario     string         `json:"scenario,omitempty"`
	Hash         string         `json:"hash,omitempty"`
	Count        int            `json:"count"`
	Height       float64        `json:"height"`
	Eligible     int            `json:"eligible"`
	Skipped      int            `json:"skipped"`
	Truncated    bool           `json:"truncated"`
	OnLockscreen bool           `json:"on_lockscreen"`
	Budget       jsonBudget     `json:"budget"`
	Requested    *jsonRequested `json:"requested,omitempty"`
	Steps        []jsonStep     `json:"steps"`
}

// jsonBudget reports unbounded budgets as null.
type jsonBudget struct {
	Notifications *float64 `json:"space_for_notifications"`
	Shelf         *float64 `json:"space_for_shelf"`
	ShelfHeight   float64  `json:"shelf_height"`
}

type jsonRequested struct {
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

type jsonStep struct {
	RowID        string  `json:"row_id"`
	Section      string  `json:"section,omitempty"`
	VisibleIndex int     `json:"visible_index"`
	Sticky       bool    `json:"sticky,omitempty"`
	Content      float64 `json:"content"`
	Separator    float64 `json:"separator"`
	Cumulative   float64 `json:"cumulative"`
	ShelfCost    float64 `json:"shelf_cost"`
	Accepted     bool    `json:"accepted"`
}

// RenderJSON exports the plan as a JSON document. Infinite budgets become
// null because JSON has no infinity.
func RenderJSON(p sizecalc.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Scenario:     r.name,
		Hash:         r.hash,
		Count:        p.Count,
		Height:       p.Height,
		Eligible:     p.Eligible,
		Skipped:      p.Skipped,
		Truncated:    p.Truncated(),
		OnLockscreen: p.OnLockscreen,
		Budget: jsonBudget{
			Notifications: finite(p.Budget.Notifications),
			Shelf:         finite(p.Budget.Shelf),
			ShelfHeight:   p.Budget.ShelfHeight,
		},
		Requested: r.requested,
		Steps:     make([]jsonStep, len(p.Steps)),
	}
	for i, s := range p.Steps {
		out.Steps[i] = jsonStep(s)
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}
