package html2pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Units per inch for the CSS absolute length units Chrome accepts in print margins.
var unitsPerInch = map[string]float64{
	"px": 96,
	"in": 1,
	"cm": 2.54,
	"mm": 25.4,
	"pt": 72,
	"pc": 6,
}

// ParseLength converts a CSS length ("1cm", "10mm", "0.5in", "12px", "0")
// to inches. A bare number is read as pixels. Negative values are rejected.
func ParseLength(s string) (float64, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidLength)
	}

	divisor := unitsPerInch["px"]
	number := value
	if len(value) > 2 {
		if perInch, ok := unitsPerInch[value[len(value)-2:]]; ok {
			divisor = perInch
			number = strings.TrimSpace(value[:len(value)-2])
		}
	}

	n, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidLength, s)
	}

	return n / divisor, nil
}
