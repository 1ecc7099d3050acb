package html2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults applied when neither config nor flags set a value.
const (
	DefaultFormat          = FormatA4
	DefaultMargin          = "1cm"
	DefaultPrintBackground = true
	DefaultLandscape       = false
)

// defaultTimeout bounds page load and rendering when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Margins holds the four page margins as CSS lengths.
type Margins struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// UniformMargins returns margins with the same length on every side.
func UniformMargins(length string) Margins {
	return Margins{Top: length, Right: length, Bottom: length, Left: length}
}

// Validate checks that every side parses as a CSS length.
func (m Margins) Validate() error {
	sides := []struct {
		name  string
		value string
	}{
		{"top", m.Top},
		{"right", m.Right},
		{"bottom", m.Bottom},
		{"left", m.Left},
	}
	for _, side := range sides {
		if _, err := ParseLength(side.value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidMargin, side.name, err)
		}
	}
	return nil
}

// PDFOptions configures the browser print call.
type PDFOptions struct {
	Format          string // paper size label, e.g. "A4"
	PrintBackground bool
	Landscape       bool
	Margins         Margins
}

// DefaultPDFOptions returns A4 portrait with backgrounds and 1cm margins.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Format:          DefaultFormat,
		PrintBackground: DefaultPrintBackground,
		Landscape:       DefaultLandscape,
		Margins:         UniformMargins(DefaultMargin),
	}
}

// Validate checks the paper format and margins.
func (o PDFOptions) Validate() error {
	if strings.TrimSpace(o.Format) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidFormat)
	}
	if !IsValidFormat(o.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, o.Format)
	}
	return o.Margins.Validate()
}

// Overrides holds optional replacements for PDFOptions fields.
// A nil field keeps the base value.
type Overrides struct {
	Format          *string
	PrintBackground *bool
	Landscape       *bool
	MarginTop       *string
	MarginRight     *string
	MarginBottom    *string
	MarginLeft      *string
}

// Apply returns base with every set override replacing its field.
// Margins are replaced side by side.
func (ov Overrides) Apply(base PDFOptions) PDFOptions {
	out := base
	if ov.Format != nil {
		out.Format = *ov.Format
	}
	if ov.PrintBackground != nil {
		out.PrintBackground = *ov.PrintBackground
	}
	if ov.Landscape != nil {
		out.Landscape = *ov.Landscape
	}
	if ov.MarginTop != nil {
		out.Margins.Top = *ov.MarginTop
	}
	if ov.MarginRight != nil {
		out.Margins.Right = *ov.MarginRight
	}
	if ov.MarginBottom != nil {
		out.Margins.Bottom = *ov.MarginBottom
	}
	if ov.MarginLeft != nil {
		out.Margins.Left = *ov.MarginLeft
	}
	return out
}

// Request describes one conversion.
type Request struct {
	InputPath  string // HTML file (required)
	OutputPath string // PDF path (optional, default: input with .pdf extension)
	Options    PDFOptions
}

// Result reports a completed conversion.
type Result struct {
	InputPath  string // absolute
	OutputPath string // absolute
	Size       int    // PDF bytes written
	Duration   time.Duration
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout    time.Duration
	browserBin string
	noSandbox  bool
	logger     *log.Logger
}

// WithTimeout sets the page load and render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithBrowserBin uses the given Chrome/Chromium binary instead of the
// ROD_BROWSER_BIN lookup and rod's managed download.
func WithBrowserBin(path string) Option {
	return func(c *Converter) {
		c.cfg.browserBin = path
	}
}

// WithNoSandbox disables the Chrome sandbox (containers, CI).
func WithNoSandbox(disabled bool) Option {
	return func(c *Converter) {
		c.cfg.noSandbox = disabled
	}
}

// WithLogger sets the logger used for conversion progress.
func WithLogger(l *log.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}

// WithRenderer replaces the headless Chrome backend.
func WithRenderer(r Renderer) Option {
	return func(c *Converter) {
		c.renderer = r
	}
}
