package main

import (
	"errors"
	"os"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
)

// Exit codes for the html2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or options
	ExitIO      = 3 // Input not found, output not writable
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the exit code for err.
// It uses errors.Is, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, html2pdf.ErrBrowserConnect) ||
		errors.Is(err, html2pdf.ErrPageCreate) ||
		errors.Is(err, html2pdf.ErrPageLoad) ||
		errors.Is(err, html2pdf.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, html2pdf.ErrInputNotFound) ||
		errors.Is(err, html2pdf.ErrOutputIsInput) ||
		errors.Is(err, html2pdf.ErrWritePDF) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, html2pdf.ErrInvalidFormat) ||
		errors.Is(err, html2pdf.ErrInvalidMargin) {
		return ExitUsage
	}

	return ExitGeneral
}
