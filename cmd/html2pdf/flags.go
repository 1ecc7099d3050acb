package main

import (
	"io"

	flag "github.com/spf13/pflag"

	html2pdf "github.com/alnah/go-html2pdf"
)

// commonFlags holds flags that control the CLI rather than the PDF.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pdfFlags holds print options. Only flags the user set become overrides.
type pdfFlags struct {
	format       string
	noBackground bool
	landscape    bool
	marginTop    string
	marginRight  string
	marginBottom string
	marginLeft   string
}

// modeFlags select an action other than converting.
type modeFlags struct {
	doctor      bool
	json        bool
	printConfig bool
	version     bool
	help        bool
}

// cliFlags holds every parsed flag.
type cliFlags struct {
	common  commonFlags
	output  string
	timeout string
	pdf     pdfFlags
	mode    modeFlags

	// overrides carries only the print options given on the command line.
	overrides html2pdf.Overrides
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
}

// addPDFFlags adds print option flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.format, "format", html2pdf.DefaultFormat, "paper format: A4, Letter, Legal, ...")
	fs.BoolVar(&f.noBackground, "no-background", false, "do not print background graphics")
	fs.BoolVar(&f.landscape, "landscape", false, "landscape orientation")
	fs.StringVar(&f.marginTop, "margin-top", html2pdf.DefaultMargin, "top margin (CSS length)")
	fs.StringVar(&f.marginRight, "margin-right", html2pdf.DefaultMargin, "right margin (CSS length)")
	fs.StringVar(&f.marginBottom, "margin-bottom", html2pdf.DefaultMargin, "bottom margin (CSS length)")
	fs.StringVar(&f.marginLeft, "margin-left", html2pdf.DefaultMargin, "left margin (CSS length)")
}

// addModeFlags adds flags that replace the conversion with another action.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.doctor, "doctor", false, "check the browser setup and exit")
	fs.BoolVar(&f.json, "json", false, "with --doctor, print JSON")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the merged configuration as YAML and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// parseFlags parses CLI arguments (without the program name) and returns
// the positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2pdf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: input with .pdf)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "page load and render timeout (e.g., 30s, 2m)")

	addPDFFlags(fs, &f.pdf)
	addCommonFlags(fs, &f.common)
	addModeFlags(fs, &f.mode)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.overrides = collectOverrides(fs, &f.pdf)
	return f, fs.Args(), nil
}

// collectOverrides turns explicitly set print flags into overrides, so that
// a flag left at its default never hides a config file value.
func collectOverrides(fs *flag.FlagSet, f *pdfFlags) html2pdf.Overrides {
	var ov html2pdf.Overrides
	if fs.Changed("format") {
		ov.Format = &f.format
	}
	if fs.Changed("no-background") {
		background := !f.noBackground
		ov.PrintBackground = &background
	}
	if fs.Changed("landscape") {
		ov.Landscape = &f.landscape
	}
	if fs.Changed("margin-top") {
		ov.MarginTop = &f.marginTop
	}
	if fs.Changed("margin-right") {
		ov.MarginRight = &f.marginRight
	}
	if fs.Changed("margin-bottom") {
		ov.MarginBottom = &f.marginBottom
	}
	if fs.Changed("margin-left") {
		ov.MarginLeft = &f.marginLeft
	}
	return ov
}
