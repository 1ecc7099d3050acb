package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	colorGreen  = lipgloss.Color("35")  // success
	colorRed    = lipgloss.Color("167") // errors
	colorYellow = lipgloss.Color("178") // warnings
	colorDim    = lipgloss.Color("240") // hints
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconError   = "✗"
)

// console writes status lines. Styles are bound to each writer's renderer,
// so piped or captured output stays plain text.
type console struct {
	out, err *lipgloss.Renderer
	stdout   io.Writer
	stderr   io.Writer
}

func newConsole(env *Environment) *console {
	return &console{
		out:    lipgloss.NewRenderer(env.Stdout),
		err:    lipgloss.NewRenderer(env.Stderr),
		stdout: env.Stdout,
		stderr: env.Stderr,
	}
}

// success prints "✓ msg" to stdout.
func (c *console) success(format string, args ...any) {
	icon := c.out.NewStyle().Foreground(colorGreen).Render(iconSuccess)
	fmt.Fprintln(c.stdout, icon+" "+fmt.Sprintf(format, args...))
}

// failure prints "✗ msg" to stderr followed by optional dimmed hint lines.
func (c *console) failure(msg, hint string) {
	icon := c.err.NewStyle().Foreground(colorRed).Render(iconError)
	dim := c.err.NewStyle().Foreground(colorDim)

	var b strings.Builder
	b.WriteString(icon + " " + msg)
	// Styled one line at a time; lipgloss pads multi-line blocks to equal width
	for _, line := range strings.Split(hint, "\n") {
		if line != "" {
			b.WriteString("\n" + dim.Render(line))
		}
	}
	fmt.Fprintln(c.stderr, b.String())
}

// newLogger creates the diagnostics logger on w: debug level with --verbose,
// warnings only otherwise.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "html2pdf",
	})
}

// formatDuration renders d for the verbose summary line.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}
