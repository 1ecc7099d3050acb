package html2pdf

import (
	"errors"
	"math"
	"testing"
)

func TestParseLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"1in", 1},
		{"2.54cm", 1},
		{"1cm", 1 / 2.54},
		{"25.4mm", 1},
		{"10mm", 10 / 25.4},
		{"72pt", 1},
		{"6pc", 1},
		{"96px", 1},
		{"48", 0.5},
		{" 1CM ", 1 / 2.54},
		{".5in", 0.5},
		{"0px", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLength(tt.input)
			if err != nil {
				t.Fatalf("ParseLength(%q) error = %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLength_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "   ", "cm", "abc", "1em", "10%", "-1cm", "1..2mm", "NaN", "Inf"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := ParseLength(input)
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("ParseLength(%q) error = %v, want ErrInvalidLength", input, err)
			}
		})
	}
}
