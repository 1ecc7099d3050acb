package html2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-html2pdf/internal/fileutil"
)

// Converter renders local HTML files to PDF files.
// Create with NewConverter and call Convert once per document.
type Converter struct {
	cfg      converterConfig
	renderer Renderer
}

// NewConverter creates a Converter backed by headless Chrome unless
// WithRenderer supplies another backend.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			logger:  log.New(io.Discard),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create PDF renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg)
	}

	return c
}

// Convert checks the input, resolves the output path, renders the page and
// writes the PDF. A missing input fails with ErrInputNotFound before any
// browser is started.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	inputPath, err := resolveInputPath(req.InputPath)
	if err != nil {
		return nil, err
	}

	outputPath, err := resolveOutputPath(inputPath, req.OutputPath)
	if err != nil {
		return nil, err
	}

	if err := req.Options.Validate(); err != nil {
		return nil, err
	}

	logger := c.cfg.logger.With("input", inputPath)
	logger.Debug("converting", "output", outputPath, "format", req.Options.Format,
		"landscape", req.Options.Landscape, "background", req.Options.PrintBackground)

	pdf, err := c.renderer.RenderFromFile(ctx, inputPath, req.Options)
	if err != nil {
		return nil, err
	}

	if err := fileutil.EnsureParentDir(outputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(outputPath, pdf, fileutil.FilePermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	res := &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Size:       len(pdf),
		Duration:   time.Since(start),
	}
	logger.Debug("done", "bytes", res.Size, "duration", res.Duration.Round(time.Millisecond))
	return res, nil
}

// resolveInputPath returns the absolute input path, or ErrInputNotFound
// naming the path as given when it is missing or a directory.
func resolveInputPath(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("%w: no path given", ErrInputNotFound)
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", input, err)
	}
	if !fileutil.FileExists(abs) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}
	return abs, nil
}

// resolveOutputPath returns output as an absolute path, or the input with
// a .pdf extension when output is empty.
func resolveOutputPath(absInput, output string) (string, error) {
	if output == "" {
		output = fileutil.DefaultOutputPath(absInput)
	}
	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", output, err)
	}
	if fileutil.SamePath(absInput, abs) {
		return "", fmt.Errorf("%w: %s", ErrOutputIsInput, abs)
	}
	return abs, nil
}
