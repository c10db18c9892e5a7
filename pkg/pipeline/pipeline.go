// Package pipeline evaluates scenarios with caching.
//
// This package is shared by the CLI and the HTTP server so both give the
// same answers for the same input and share cache entries when they share a
// backend.
//
// # Stages
//
//  1. Validate: reject malformed scenarios with coded errors
//  2. Compute: run the calculator and build a [sizecalc.Plan]
//  3. Render: turn the result into the requested output formats
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, sc, pipeline.Options{
//	    Resources: cfg.Dimens,
//	    Formats:   []string{pipeline.FormatSVG},
//	})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/dimens"
	"github.com/matzehuels/notifstack/pkg/errors"
	"github.com/matzehuels/notifstack/pkg/sizecalc"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSweepStep is the budget increment of a sweep when none is given.
	DefaultSweepStep = 1.0

	// MaxSweepPoints bounds the number of evaluations in one sweep.
	MaxSweepPoints = 100_000
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatText = "text"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatText: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configure one Execute call.
type Options struct {
	// Resources supply the divider and gap when the scenario has none.
	Resources dimens.Resources `json:"resources"`

	// Formats to render into Result.Artifacts. Empty renders nothing.
	Formats []string `json:"formats,omitempty"`

	// Refresh skips the cache read but still writes the new result.
	Refresh bool `json:"refresh,omitempty"`

	// TTL of cache entries. Zero means cache.DefaultTTL.
	TTL time.Duration `json:"-"`

	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills defaults.
func (o *Options) ValidateAndSetDefaults() error {
	o.Resources = o.Resources.WithDefaults()
	if err := o.Resources.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.TTL <= 0 {
		o.TTL = cache.DefaultTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SweepOptions select the notification budgets of a sweep: From, From+Step,
// ... up to and including To.
type SweepOptions struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
	Step float64 `json:"step"`
}

// Validate checks the range and fills the default step.
func (o *SweepOptions) Validate() error {
	if o.Step == 0 {
		o.Step = DefaultSweepStep
	}
	if err := errors.ValidateBudget("from", o.From); err != nil {
		return err
	}
	if err := errors.ValidateBudget("to", o.To); err != nil {
		return err
	}
	if o.Step < 0 || math.IsNaN(o.Step) || math.IsInf(o.Step, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "step must be a finite number > 0, got %v", o.Step)
	}
	if math.IsInf(o.To, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "to must be finite")
	}
	if o.To < o.From {
		return errors.New(errors.ErrCodeInvalidInput, "to (%v) must be >= from (%v)", o.To, o.From)
	}
	if n := o.Points(); n > MaxSweepPoints {
		return errors.New(errors.ErrCodeInvalidInput, "sweep has %d points (max %d)", n, MaxSweepPoints)
	}
	return nil
}

// Points returns the number of budgets the sweep evaluates.
func (o SweepOptions) Points() int {
	if o.Step <= 0 || o.To < o.From {
		return 0
	}
	span := (o.To - o.From) / o.Step
	if span > MaxSweepPoints {
		return MaxSweepPoints + 1
	}
	return int(span) + 1
}

// =============================================================================
// Results
// =============================================================================

// Result is the outcome of evaluating one scenario.
type Result struct {
	Scenario string        `json:"scenario,omitempty"`
	Hash     string        `json:"hash"`
	Plan     sizecalc.Plan `json:"plan"`

	// Requested holds the height for the scenario's explicit count.
	Requested *Requested `json:"requested,omitempty"`

	// Artifacts contains rendered outputs keyed by format. Not cached.
	Artifacts map[string][]byte `json:"-"`

	Stats     Stats     `json:"-"`
	CacheInfo CacheInfo `json:"-"`
}

// Requested is a height computed for a caller-supplied count.
type Requested struct {
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

// Stats contains execution statistics.
type Stats struct {
	Rows        int
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	ResultHit bool
}

// SweepPoint is one evaluation of a sweep.
type SweepPoint struct {
	Space  float64 `json:"space_for_notifications"`
	Count  int     `json:"count"`
	Height float64 `json:"height"`
}

// SweepResult is the outcome of a budget sweep.
type SweepResult struct {
	Scenario string       `json:"scenario,omitempty"`
	Hash     string       `json:"hash"`
	Options  SweepOptions `json:"options"`
	Points   []SweepPoint `json:"points"`

	// Monotonic reports whether the count never decreased as the budget grew.
	Monotonic bool `json:"monotonic"`
	// Violation is the first point whose count fell below its predecessor.
	Violation *SweepPoint `json:"violation,omitempty"`

	CacheInfo CacheInfo `json:"-"`
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list.
func ParseFormats(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if err := ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	sort.Strings(names)
	return names
}
