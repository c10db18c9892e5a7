// Package lockstate derives the "on lock screen" flag used for row sizing.
//
// Two externally owned signals feed the derivation: the discrete status bar
// state and the continuous fraction of the lock screen to shade transition.
// The device counts as being on the lock screen only when the status bar is
// in [Keyguard] and the fraction is exactly zero. Any positive fraction means
// the user is dragging the shade open, and rows must be measured at full
// height to avoid snapping mid-gesture.
//
// Nothing here is cached. Hosts sample both signals at the start of every
// layout pass, either directly or through [Query].
package lockstate

import (
	"fmt"
	"strings"

	"github.com/matzehuels/notifstack/pkg/errors"
)

// StatusBarState is the discrete state of the status bar.
type StatusBarState int

const (
	// Shade is the regular unlocked notification shade.
	Shade StatusBarState = iota
	// Keyguard is the lock screen.
	Keyguard
	// ShadeLocked is the shade pulled down over the lock screen.
	ShadeLocked
)

var stateNames = map[StatusBarState]string{
	Shade:       "shade",
	Keyguard:    "keyguard",
	ShadeLocked: "shade_locked",
}

// String returns the lowercase name of the state.
func (s StatusBarState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StatusBarState(%d)", int(s))
}

// ParseState parses a state name. Matching is case-insensitive and accepts
// dashes in place of underscores.
func ParseState(s string) (StatusBarState, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for state, name := range stateNames {
		if name == norm {
			return state, nil
		}
	}
	return Shade, errors.New(errors.ErrCodeInvalidLockState,
		"unknown status bar state %q (must be one of: shade, keyguard, shade_locked)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s StatusBarState) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidLockState, "unknown status bar state %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *StatusBarState) UnmarshalText(text []byte) error {
	state, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

// OnLockscreen reports whether rows should be sized for the lock screen:
// the state is Keyguard and no shade transition is in progress.
func OnLockscreen(state StatusBarState, fractionToShade float64) bool {
	return state == Keyguard && fractionToShade == 0
}

// Signals is one sample of both lock-state inputs.
type Signals struct {
	State           StatusBarState `json:"state" toml:"state"`
	FractionToShade float64        `json:"fraction_to_shade" toml:"fraction_to_shade"`
}

// Unlocked is the zero Signals value: regular shade, no transition.
var Unlocked = Signals{}

// Locked is the lock screen at rest.
var Locked = Signals{State: Keyguard}

// OnLockscreen applies [OnLockscreen] to the sampled signals.
func (s Signals) OnLockscreen() bool {
	return OnLockscreen(s.State, s.FractionToShade)
}

// Validate checks that the state is known and the fraction lies in [0, 1].
func (s Signals) Validate() error {
	if _, ok := stateNames[s.State]; !ok {
		return errors.New(errors.ErrCodeInvalidLockState, "unknown status bar state %d", int(s.State))
	}
	return errors.ValidateFraction(s.FractionToShade)
}

// StateSource reports the current status bar state.
type StateSource interface {
	State() StatusBarState
}

// TransitionSource reports the current lock screen to shade fraction.
type TransitionSource interface {
	FractionToShade() float64
}

// Query samples both sources. Call it once per layout pass.
func Query(state StateSource, transition TransitionSource) Signals {
	return Signals{State: state.State(), FractionToShade: transition.FractionToShade()}
}
