package html2pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer turns a local HTML file into PDF bytes.
// The default implementation drives headless Chrome through go-rod.
type Renderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts PDFOptions) ([]byte, error)
}

// Compile-time interface check.
var _ Renderer = (*rodRenderer)(nil)

// rodRenderer launches a fresh browser for every render and always releases it.
type rodRenderer struct {
	launch  launchConfig
	timeout time.Duration
	logger  *log.Logger
}

// newRodRenderer creates a rodRenderer from converter settings.
func newRodRenderer(cfg converterConfig) *rodRenderer {
	return &rodRenderer{
		launch:  resolveLaunchConfig(cfg),
		timeout: cfg.timeout,
		logger:  cfg.logger,
	}
}

// RenderFromFile opens filePath in headless Chrome, waits for network idle
// and prints it to PDF. The browser is closed on every return path.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts PDFOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params, err := printParams(opts)
	if err != nil {
		return nil, err
	}

	session, err := launchBrowser(ctx, r.launch, r.logger)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			r.logger.Warn("closing browser", "err", closeErr)
		}
	}()

	page, err := session.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	loadCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	page = page.Context(loadCtx)

	target := fileURL(filePath)
	r.logger.Debug("navigating", "url", target)
	if err := navigateAndWaitIdle(page, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}
	r.logger.Debug("network idle")

	reader, err := page.PDF(params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	r.logger.Debug("rendered", "bytes", len(pdfBuf))

	return pdfBuf, nil
}

// navigateAndWaitIdle navigates page to target and blocks until Chrome reports
// the networkIdle lifecycle event for that navigation, or the page context ends.
func navigateAndWaitIdle(page *rod.Page, target string) error {
	if err := (proto.PageSetLifecycleEventsEnabled{Enabled: true}).Call(page); err != nil {
		return err
	}

	// Callbacks run inside wait(), after loaderID is known.
	var loaderID proto.NetworkLoaderID
	wait := page.EachEvent(func(e *proto.PageLifecycleEvent) bool {
		return e.LoaderID == loaderID && e.Name == proto.PageLifecycleEventNameNetworkIdle
	})

	res, err := proto.PageNavigate{URL: target}.Call(page)
	if err != nil {
		return err
	}
	if res.ErrorText != "" {
		return errors.New(res.ErrorText)
	}
	loaderID = res.LoaderID

	wait()
	if err := page.GetContext().Err(); err != nil {
		return fmt.Errorf("waiting for network idle: %w", err)
	}
	return nil
}

// printParams converts options into Chrome's Page.printToPDF parameters.
func printParams(opts PDFOptions) (*proto.PagePrintToPDF, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	paper, _ := lookupPaper(opts.Format)
	top, _ := ParseLength(opts.Margins.Top)
	right, _ := ParseLength(opts.Margins.Right)
	bottom, _ := ParseLength(opts.Margins.Bottom)
	left, _ := ParseLength(opts.Margins.Left)

	return &proto.PagePrintToPDF{
		Landscape:       opts.Landscape,
		PrintBackground: opts.PrintBackground,
		PaperWidth:      floatPtr(paper.width),
		PaperHeight:     floatPtr(paper.height),
		MarginTop:       floatPtr(top),
		MarginRight:     floatPtr(right),
		MarginBottom:    floatPtr(bottom),
		MarginLeft:      floatPtr(left),
	}, nil
}

// fileURL builds a file:// URL, escaping spaces and other reserved characters.
func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // Windows drive letters
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
