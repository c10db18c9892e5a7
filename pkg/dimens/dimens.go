// Package dimens holds the density-independent dimensions of the stack and
// converts them to pixels.
//
// Conversion follows pixel-size lookup rules: dp * density, rounded to the
// nearest whole pixel, with any non-zero dimension at least one pixel.
package dimens

import (
	"math"

	"github.com/matzehuels/notifstack/pkg/errors"
)

// Resources are the stack dimensions in dp plus the display density.
type Resources struct {
	Density float64 `koanf:"density" toml:"density" json:"density"`

	DividerHeightDp       float64 `koanf:"divider_height" toml:"divider_height" json:"divider_height"`
	GapHeightDp           float64 `koanf:"gap_height" toml:"gap_height" json:"gap_height"`
	LockscreenGapHeightDp float64 `koanf:"lockscreen_gap_height" toml:"lockscreen_gap_height" json:"lockscreen_gap_height"`
	ShelfHeightDp         float64 `koanf:"shelf_height" toml:"shelf_height" json:"shelf_height"`
	RowHeightDp           float64 `koanf:"row_height" toml:"row_height" json:"row_height"`
}

// Default dimensions.
const (
	DefaultDensity               = 1.0
	DefaultDividerHeightDp       = 2.0
	DefaultGapHeightDp           = 16.0
	DefaultLockscreenGapHeightDp = 8.0
	DefaultShelfHeightDp         = 32.0
	DefaultRowHeightDp           = 106.0
)

// Defaults returns the default resources at density 1.
func Defaults() Resources {
	return Resources{
		Density:               DefaultDensity,
		DividerHeightDp:       DefaultDividerHeightDp,
		GapHeightDp:           DefaultGapHeightDp,
		LockscreenGapHeightDp: DefaultLockscreenGapHeightDp,
		ShelfHeightDp:         DefaultShelfHeightDp,
		RowHeightDp:           DefaultRowHeightDp,
	}
}

// WithDefaults fills zero fields from Defaults.
func (r Resources) WithDefaults() Resources {
	d := Defaults()
	if r.Density <= 0 {
		r.Density = d.Density
	}
	if r.DividerHeightDp == 0 {
		r.DividerHeightDp = d.DividerHeightDp
	}
	if r.GapHeightDp == 0 {
		r.GapHeightDp = d.GapHeightDp
	}
	if r.LockscreenGapHeightDp == 0 {
		r.LockscreenGapHeightDp = d.LockscreenGapHeightDp
	}
	if r.ShelfHeightDp == 0 {
		r.ShelfHeightDp = d.ShelfHeightDp
	}
	if r.RowHeightDp == 0 {
		r.RowHeightDp = d.RowHeightDp
	}
	return r
}

// Validate checks the density is positive and every dimension non-negative.
func (r Resources) Validate() error {
	if math.IsNaN(r.Density) || math.IsInf(r.Density, 0) || r.Density <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "density must be > 0, got %v", r.Density)
	}
	dims := []struct {
		name string
		v    float64
	}{
		{"divider_height", r.DividerHeightDp},
		{"gap_height", r.GapHeightDp},
		{"lockscreen_gap_height", r.LockscreenGapHeightDp},
		{"shelf_height", r.ShelfHeightDp},
		{"row_height", r.RowHeightDp},
	}
	for _, d := range dims {
		if err := errors.ValidateHeight(d.name, d.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid dimension")
		}
	}
	return nil
}

// Px converts dp to whole pixels.
func (r Resources) Px(dp float64) float64 {
	v := dp * r.Density
	px := math.Floor(v + 0.5)
	if px == 0 && v > 0 {
		return 1
	}
	return px
}

func (r Resources) DividerHeight() float64       { return r.Px(r.DividerHeightDp) }
func (r Resources) GapHeight() float64           { return r.Px(r.GapHeightDp) }
func (r Resources) LockscreenGapHeight() float64 { return r.Px(r.LockscreenGapHeightDp) }
func (r Resources) ShelfHeight() float64         { return r.Px(r.ShelfHeightDp) }
func (r Resources) RowHeight() float64           { return r.Px(r.RowHeightDp) }
