package dimens

import (
	"math"
	"testing"

	"github.com/matzehuels/notifstack/pkg/errors"
)

func TestPx(t *testing.T) {
	tests := []struct {
		name    string
		density float64
		dp      float64
		want    float64
	}{
		{"identity", 1, 16, 16},
		{"xxhdpi", 3, 16, 48},
		{"rounds half up", 1.5, 3, 5},
		{"rounds down", 2.625, 2, 5},
		{"tiny dimension is one pixel", 1, 0.2, 1},
		{"zero stays zero", 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resources{Density: tt.density}
			if got := r.Px(tt.dp); got != tt.want {
				t.Errorf("Px(%v) at %vx = %v, want %v", tt.dp, tt.density, got, tt.want)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	r := Defaults()
	if err := r.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
	if r.DividerHeight() != 2 || r.GapHeight() != 16 || r.ShelfHeight() != 32 || r.RowHeight() != 106 {
		t.Errorf("unexpected default pixels: %+v", r)
	}
	if r.LockscreenGapHeight() != 8 {
		t.Errorf("LockscreenGapHeight() = %v, want 8", r.LockscreenGapHeight())
	}
}

func TestWithDefaults(t *testing.T) {
	r := Resources{Density: 2, GapHeightDp: 10}.WithDefaults()
	if r.Density != 2 {
		t.Errorf("Density = %v, want 2", r.Density)
	}
	if r.GapHeightDp != 10 {
		t.Errorf("GapHeightDp = %v, want 10", r.GapHeightDp)
	}
	if r.DividerHeightDp != DefaultDividerHeightDp {
		t.Errorf("DividerHeightDp = %v, want default", r.DividerHeightDp)
	}
	if r.GapHeight() != 20 {
		t.Errorf("GapHeight() = %v, want 20", r.GapHeight())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Resources
		wantErr bool
	}{
		{"defaults", Defaults(), false},
		{"zero density", Resources{}, true},
		{"NaN density", Resources{Density: math.NaN()}, true},
		{"negative divider", Resources{Density: 1, DividerHeightDp: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}
