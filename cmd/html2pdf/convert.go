package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/hints"
)

// ErrUsage marks command-line misuse (missing or extra arguments, bad flag values).
var ErrUsage = errors.New("invalid usage")

// defaultTimeout applies when neither flag, env nor config sets one.
const defaultTimeout = 30 * time.Second

// settings is the fully merged input to a conversion.
type settings struct {
	options html2pdf.PDFOptions
	timeout time.Duration
	browser config.BrowserConfig
}

// runConvert converts the single HTML file named in positional.
func runConvert(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	input, err := inputArg(positional)
	if err != nil {
		return err
	}

	s, err := resolveSettings(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.verbose)
	warnUnknownEnvVars(env.Stderr)

	convOpts := []html2pdf.Option{
		html2pdf.WithTimeout(s.timeout),
		html2pdf.WithLogger(logger),
	}
	if s.browser.Bin != "" {
		convOpts = append(convOpts, html2pdf.WithBrowserBin(s.browser.Bin))
	}
	if s.browser.NoSandbox {
		convOpts = append(convOpts, html2pdf.WithNoSandbox(true))
	}
	if env.Renderer != nil {
		convOpts = append(convOpts, html2pdf.WithRenderer(env.Renderer))
	}

	start := env.Now()
	res, err := html2pdf.NewConverter(convOpts...).Convert(ctx, html2pdf.Request{
		InputPath:  input,
		OutputPath: flags.output,
		Options:    s.options,
	})
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		newConsole(env).success("PDF generated successfully: %s", res.OutputPath)
	}
	logger.Debug("finished", "bytes", res.Size, "elapsed", formatDuration(env.Now().Sub(start)))
	return nil
}

// inputArg returns the single positional argument.
func inputArg(positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", fmt.Errorf("%w: missing html_file argument", ErrUsage)
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("%w: expected one html_file, got %d arguments", ErrUsage, len(positional))
	}
}

// resolveSettings layers defaults, config file, environment and flags.
func resolveSettings(flags *cliFlags, envCfg *envConfig) (*settings, error) {
	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout, cfg)
	if err != nil {
		return nil, err
	}

	opts := flags.overrides.Apply(configOverrides(cfg).Apply(html2pdf.DefaultPDFOptions()))

	return &settings{options: opts, timeout: timeout, browser: cfg.Browser}, nil
}

// loadConfig loads the config named by --config, or HTML2PDF_CONFIG when the
// flag is absent. With neither, every option keeps its default.
func loadConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// configOverrides turns the config's set fields into overrides.
func configOverrides(cfg *config.Config) html2pdf.Overrides {
	var ov html2pdf.Overrides
	if cfg.PDF.Format != "" {
		ov.Format = &cfg.PDF.Format
	}
	ov.PrintBackground = cfg.PDF.PrintBackground
	ov.Landscape = cfg.PDF.Landscape

	m := cfg.PDF.Margin
	for _, side := range []struct {
		value string
		dst   **string
	}{
		{m.Side(m.Top), &ov.MarginTop},
		{m.Side(m.Right), &ov.MarginRight},
		{m.Side(m.Bottom), &ov.MarginBottom},
		{m.Side(m.Left), &ov.MarginLeft},
	} {
		if side.value != "" {
			v := side.value
			*side.dst = &v
		}
	}
	return ov
}

// resolveTimeout picks the timeout: flag > HTML2PDF_TIMEOUT > config > default.
func resolveTimeout(flagValue string, envValue time.Duration, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: --timeout: %v", config.ErrInvalidTimeout, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: --timeout must be positive, got %s", config.ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	d, err := cfg.TimeoutDuration()
	if err != nil {
		return 0, err
	}
	if d > 0 {
		return d, nil
	}
	return defaultTimeout, nil
}

// effectiveConfig expresses merged settings as a config file.
func effectiveConfig(s *settings) *config.Config {
	background := s.options.PrintBackground
	landscape := s.options.Landscape
	return &config.Config{
		PDF: config.PDFConfig{
			Format:          s.options.Format,
			PrintBackground: &background,
			Landscape:       &landscape,
			Margin: config.MarginConfig{
				Top:    s.options.Margins.Top,
				Right:  s.options.Margins.Right,
				Bottom: s.options.Margins.Bottom,
				Left:   s.options.Margins.Left,
			},
		},
		Browser: config.BrowserConfig{
			Timeout:   s.timeout.String(),
			Bin:       s.browser.Bin,
			NoSandbox: s.browser.NoSandbox,
		},
	}
}

// runPrintConfig writes the merged configuration as YAML to stdout.
func runPrintConfig(flags *cliFlags, env *Environment) error {
	s, err := resolveSettings(flags, loadEnvConfig())
	if err != nil {
		return err
	}
	data, err := effectiveConfig(s).Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, configName string) string {
	switch {
	case errors.Is(err, html2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, html2pdf.ErrInputNotFound):
		return hints.ForInputNotFound()
	case errors.Is(err, html2pdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, html2pdf.ErrInvalidFormat):
		return hints.ForInvalidFormat(html2pdf.Formats())
	case errors.Is(err, html2pdf.ErrInvalidMargin):
		return hints.ForInvalidMargin()
	case errors.Is(err, config.ErrConfigNotFound):
		if configName != "" && !fileutil.IsFilePath(configName) {
			return hints.ForConfigNotFound(config.SearchPaths(configName))
		}
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
