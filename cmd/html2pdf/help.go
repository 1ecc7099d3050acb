package main

import (
	"fmt"
	"io"
	"strings"

	html2pdf "github.com/alnah/go-html2pdf"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2pdf [flags] <html_file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a local HTML file to PDF with headless Chrome.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  html_file                 HTML file to convert")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: input with .pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         Page load and render timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintf(w, "      --format <s>          Paper format (default: %s)\n", html2pdf.DefaultFormat)
	fmt.Fprintf(w, "                            %s\n", strings.Join(html2pdf.Formats(), ", "))
	fmt.Fprintln(w, "      --landscape           Landscape orientation")
	fmt.Fprintln(w, "      --no-background       Do not print background graphics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Margins (CSS lengths: 0, 1cm, 10mm, 0.5in, 12px, 12pt):")
	fmt.Fprintf(w, "      --margin-top <l>      Top margin (default: %s)\n", html2pdf.DefaultMargin)
	fmt.Fprintf(w, "      --margin-right <l>    Right margin (default: %s)\n", html2pdf.DefaultMargin)
	fmt.Fprintf(w, "      --margin-bottom <l>   Bottom margin (default: %s)\n", html2pdf.DefaultMargin)
	fmt.Fprintf(w, "      --margin-left <l>     Left margin (default: %s)\n", html2pdf.DefaultMargin)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --doctor [--json]     Check the browser setup")
	fmt.Fprintln(w, "      --print-config        Print the merged configuration as YAML")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  HTML2PDF_CONFIG, HTML2PDF_TIMEOUT, HTML2PDF_FORMAT, HTML2PDF_MARGIN")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome/Chromium binary")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Disable the Chrome sandbox (Docker/CI)")
}
