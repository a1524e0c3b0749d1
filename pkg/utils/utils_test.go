package utils

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{name: "monthly payment", input: 2128.96715, want: 2128.97},
		{name: "already cents", input: 333.33, want: 333.33},
		{name: "whole dollars", input: 52000, want: 52000},
		{name: "negative difference", input: -40200.2849, want: -40200.28},
		{name: "below half cent", input: 0.004, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round2(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  bool
	}{
		{
			name:  "finite number",
			input: 123.45,
			want:  true,
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  false,
		},
		{
			name:  "negative infinity",
			input: math.Inf(-1),
			want:  false,
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFinite(tt.input)
			if got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "zero", input: 0, want: "$0.00"},
		{name: "small", input: 12.5, want: "$12.50"},
		{name: "thousands", input: 2128.967, want: "$2,128.97"},
		{name: "millions", input: 1234567.891, want: "$1,234,567.89"},
		{name: "exact group", input: 100000, want: "$100,000.00"},
		{name: "negative", input: -40200.28, want: "-$40,200.28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(tt.input); got != tt.want {
				t.Errorf("FormatMoney() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMoneyWhole(t *testing.T) {
	if got := FormatMoneyWhole(479476.16); got != "$479,476" {
		t.Errorf("FormatMoneyWhole() = %q, want %q", got, "$479,476")
	}
	if got := FormatMoneyWhole(-999.6); got != "-$1,000" {
		t.Errorf("FormatMoneyWhole() = %q, want %q", got, "-$1,000")
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(3.5); got != "3.5%" {
		t.Errorf("FormatPercent() = %q, want %q", got, "3.5%")
	}
	if got := FormatPercent(7); got != "7.0%" {
		t.Errorf("FormatPercent() = %q, want %q", got, "7.0%")
	}
}
