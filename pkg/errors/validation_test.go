package errors

import (
	"math"
	"testing"
)

func TestValidateHeight(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 106, false},
		{"fractional", 12.5, false},

		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHeight("height", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHeight(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRow) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidRow)
			}
		})
	}
}

func TestValidateBudget(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"max", math.MaxFloat64, false},
		{"+Inf", math.Inf(1), false},

		{"negative", -0.5, true},
		{"NaN", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBudget("space", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBudget(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFraction(t *testing.T) {
	tests := []struct {
		input   float64
		wantErr bool
	}{
		{0, false},
		{0.5, false},
		{1, false},
		{-0.1, true},
		{1.01, true},
		{math.NaN(), true},
	}

	for _, tt := range tests {
		err := ValidateFraction(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFraction(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateRowID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "row1", false},
		{"dotted", "com.example.chat", false},
		{"keyed", "0|com.example|42|null|10001", true},
		{"colon", "hun:fsi", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"space", "row 1", true},
		{"newline", "row\n1", true},
		{"leading dash", "-row", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRowID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		code    Code
	}{
		{"scenario.toml", false, ""},
		{"scenario.JSON", false, ""},
		{"", true, ErrCodeInvalidInput},
		{"scenario.yaml", true, ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		err := ValidateFilename(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !Is(err, tt.code) {
			t.Errorf("ValidateFilename(%q) code = %v, want %v", tt.input, GetCode(err), tt.code)
		}
	}
}
