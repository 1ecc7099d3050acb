package html2pdf

import (
	"sort"
	"strings"
)

// Paper format labels.
const (
	FormatLetter  = "Letter"
	FormatLegal   = "Legal"
	FormatTabloid = "Tabloid"
	FormatLedger  = "Ledger"
	FormatA0      = "A0"
	FormatA1      = "A1"
	FormatA2      = "A2"
	FormatA3      = "A3"
	FormatA4      = "A4"
	FormatA5      = "A5"
	FormatA6      = "A6"
)

// paperSize holds portrait dimensions in inches.
type paperSize struct {
	width  float64
	height float64
}

// paperSizes is keyed by lowercase label. Orientation is applied by Chrome
// through the Landscape print parameter, so all entries are portrait.
var paperSizes = map[string]paperSize{
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
	"a0":      {33.1, 46.8},
	"a1":      {23.4, 33.1},
	"a2":      {16.54, 23.4},
	"a3":      {11.7, 16.54},
	"a4":      {8.27, 11.7},
	"a5":      {5.83, 8.27},
	"a6":      {4.13, 5.83},
}

// lookupPaper returns the dimensions for a format label (case-insensitive).
func lookupPaper(format string) (paperSize, bool) {
	size, ok := paperSizes[strings.ToLower(strings.TrimSpace(format))]
	return size, ok
}

// IsValidFormat reports whether format names a known paper size.
func IsValidFormat(format string) bool {
	_, ok := lookupPaper(format)
	return ok
}

// Formats returns the supported paper format labels, sorted.
func Formats() []string {
	labels := []string{
		FormatLetter, FormatLegal, FormatTabloid, FormatLedger,
		FormatA0, FormatA1, FormatA2, FormatA3, FormatA4, FormatA5, FormatA6,
	}
	sort.Strings(labels)
	return labels
}
