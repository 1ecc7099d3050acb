package html2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputNotFound = errors.New("input file not found")
	ErrOutputIsInput = errors.New("output path would overwrite the input file")
	ErrWritePDF      = errors.New("failed to write PDF file")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Option validation errors.
	ErrInvalidFormat = errors.New("invalid page format")
	ErrInvalidMargin = errors.New("invalid margin")
	ErrInvalidLength = errors.New("invalid CSS length")
)
