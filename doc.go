// Package html2pdf converts local HTML documents to PDF using headless Chrome.
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv := html2pdf.NewConverter()
//
//	res, err := conv.Convert(ctx, html2pdf.Request{
//	    InputPath: "report.html",
//	    Options:   html2pdf.DefaultPDFOptions(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath) // /abs/path/report.pdf
//
// When Request.OutputPath is empty the PDF is written next to the input with
// its extension replaced by .pdf.
//
// # Conversion Steps
//
//  1. Input check: a missing file fails with ErrInputNotFound, no browser is started
//  2. Output path resolution (explicit or derived, always absolute)
//  3. Option validation (paper format, CSS margins)
//  4. Headless Chrome: launch, navigate to the file:// URL, wait for network idle
//  5. Page.printToPDF, browser shutdown, file write
//
// # Options
//
// PDFOptions holds the print settings. Start from DefaultPDFOptions (A4,
// portrait, backgrounds on, 1cm margins) and layer changes with Overrides:
//
//	landscape := true
//	top := "0"
//	opts := html2pdf.Overrides{Landscape: &landscape, MarginTop: &top}.
//	    Apply(html2pdf.DefaultPDFOptions())
//
// Margins accept CSS lengths: px, in, cm, mm, pt, pc. A bare number is pixels.
//
// Converter options:
//
//	conv := html2pdf.NewConverter(
//	    html2pdf.WithTimeout(2 * time.Minute),
//	    html2pdf.WithBrowserBin("/usr/bin/chromium"),
//	    html2pdf.WithLogger(logger),
//	)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package html2pdf
