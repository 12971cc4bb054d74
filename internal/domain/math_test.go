package domain

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr error
	}{
		{"integer", "50000", 50000, nil},
		{"decimal", "1784.21", 1784.21, nil},
		{"zero", "0", 0, nil},
		{"surrounding whitespace", "  23.14 ", 23.14, nil},
		{"exponent", "1e3", 1000, nil},
		{"empty", "", 0, ErrEmptyAmount},
		{"whitespace only", "   ", 0, ErrEmptyAmount},
		{"letters", "abc", 0, ErrInvalidAmount},
		{"trailing garbage", "12abc", 0, ErrInvalidAmount},
		{"negative", "-5", 0, ErrNegativeAmount},
		{"overflows float64", "1e400", 0, ErrInvalidAmount},
		{"largest finite", "1e308", 1e308, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseAmount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "0.00"},
		{"small", 23.14, "23.14"},
		{"pads decimals", 5, "5.00"},
		{"thousands", 1784.21, "1,784.21"},
		{"rounds half up", 0.125, "0.13"},
		{"rounds down", 37.7777777, "37.78"},
		{"exactly three digits", 999.99, "999.99"},
		{"millions", 254887142.857142857, "254,887,142.86"},
		{"six digit group", 100000, "100,000.00"},
		{"negative", -1234.5, "-1,234.50"},
		{"binary value below half", 1.005, "1.00"},
		{"binary value below half 2.675", 2.675, "2.67"},
		{"binary value below half 1.015", 1.015, "1.01"},
		{"tiny negative", -0.001, "0.00"},
		{"positive infinity", math.Inf(1), "∞"},
		{"negative infinity", math.Inf(-1), "-∞"},
		{"nan", math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUSD(tt.input); got != tt.want {
				t.Errorf("FormatUSD(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
