package lockstate

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/notifstack/pkg/errors"
)

func TestOnLockscreen(t *testing.T) {
	tests := []struct {
		name     string
		state    StatusBarState
		fraction float64
		want     bool
	}{
		{"keyguard at rest", Keyguard, 0, true},
		{"keyguard going to shade", Keyguard, 0.5, false},
		{"keyguard tiny drag", Keyguard, 1e-6, false},
		{"shade fully open", Shade, 1, false},
		{"shade at rest", Shade, 0, false},
		{"shade locked", ShadeLocked, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnLockscreen(tt.state, tt.fraction); got != tt.want {
				t.Errorf("OnLockscreen(%v, %v) = %v, want %v", tt.state, tt.fraction, got, tt.want)
			}
			s := Signals{State: tt.state, FractionToShade: tt.fraction}
			if got := s.OnLockscreen(); got != tt.want {
				t.Errorf("Signals.OnLockscreen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	if Unlocked.OnLockscreen() {
		t.Error("Unlocked should not be on lock screen")
	}
	if !Locked.OnLockscreen() {
		t.Error("Locked should be on lock screen")
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		input   string
		want    StatusBarState
		wantErr bool
	}{
		{"keyguard", Keyguard, false},
		{"KEYGUARD", Keyguard, false},
		{" shade ", Shade, false},
		{"shade-locked", ShadeLocked, false},
		{"shade_locked", ShadeLocked, false},
		{"locked", Shade, true},
		{"", Shade, true},
	}

	for _, tt := range tests {
		got, err := ParseState(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseState(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, errors.ErrCodeInvalidLockState) {
				t.Errorf("ParseState(%q) code = %v", tt.input, errors.GetCode(err))
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseState(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	if Keyguard.String() != "keyguard" {
		t.Errorf("Keyguard.String() = %q", Keyguard.String())
	}
	if got := StatusBarState(9).String(); got != "StatusBarState(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestSignalsJSON(t *testing.T) {
	in := Signals{State: ShadeLocked, FractionToShade: 0.25}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"state":"shade_locked","fraction_to_shade":0.25}` {
		t.Errorf("Marshal = %s", data)
	}

	var out Signals
	if err := json.Unmarshal([]byte(`{"state":"keyguard"}`), &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != Locked {
		t.Errorf("Unmarshal = %+v, want %+v", out, Locked)
	}

	if err := json.Unmarshal([]byte(`{"state":"bogus"}`), &out); err == nil {
		t.Error("Unmarshal of unknown state should fail")
	}
}

func TestSignalsValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Signals
		wantErr bool
	}{
		{"unlocked", Unlocked, false},
		{"mid drag", Signals{State: Keyguard, FractionToShade: 0.3}, false},
		{"fraction above one", Signals{State: Keyguard, FractionToShade: 1.5}, true},
		{"negative fraction", Signals{State: Shade, FractionToShade: -0.1}, true},
		{"unknown state", Signals{State: StatusBarState(7)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type fakeController struct {
	state    StatusBarState
	fraction float64
}

func (f *fakeController) State() StatusBarState    { return f.state }
func (f *fakeController) FractionToShade() float64 { return f.fraction }

func TestQuerySamplesEachCall(t *testing.T) {
	c := &fakeController{state: Keyguard}
	if !Query(c, c).OnLockscreen() {
		t.Fatal("expected lock screen at rest")
	}

	c.fraction = 0.5
	if Query(c, c).OnLockscreen() {
		t.Error("expected full sizing once the shade drag starts")
	}
}
