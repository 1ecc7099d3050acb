package main

// Notes:
// - resolveSettings reads HTML2PDF_* variables; tests that call it set them
//   explicitly and therefore cannot use t.Parallel().

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	html2pdf "github.com/alnah/go-html2pdf"
	"github.com/alnah/go-html2pdf/internal/config"
)

// writeConfig writes a YAML config into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "print.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// clearEnvConfig empties every HTML2PDF_* variable read by loadEnvConfig.
func clearEnvConfig(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

// ---------------------------------------------------------------------------
// TestInputArg - Positional argument count
// ---------------------------------------------------------------------------

func TestInputArg(t *testing.T) {
	t.Parallel()

	if got, err := inputArg([]string{"a.html"}); err != nil || got != "a.html" {
		t.Errorf("inputArg(one) = %q, %v", got, err)
	}
	if _, err := inputArg(nil); !errors.Is(err, ErrUsage) {
		t.Errorf("inputArg(none) error = %v, want ErrUsage", err)
	}
	if _, err := inputArg([]string{"a.html", "b.html"}); !errors.Is(err, ErrUsage) {
		t.Errorf("inputArg(two) error = %v, want ErrUsage", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveSettings - Defaults, config, env and flags layering
// ---------------------------------------------------------------------------

func TestResolveSettings_Layers(t *testing.T) {
	clearEnvConfig(t)
	cfgPath := writeConfig(t, `
pdf:
  format: Letter
  landscape: true
  margin:
    all: 2cm
    top: "0"
browser:
  timeout: 45s
  noSandbox: true
`)

	tests := []struct {
		name        string
		args        []string
		env         map[string]string
		wantOpts    html2pdf.PDFOptions
		wantTimeout time.Duration
	}{
		{
			name:        "no config",
			args:        []string{"p.html"},
			wantOpts:    html2pdf.DefaultPDFOptions(),
			wantTimeout: 30 * time.Second,
		},
		{
			name: "config only",
			args: []string{"-c", cfgPath, "p.html"},
			wantOpts: html2pdf.PDFOptions{
				Format:          "Letter",
				PrintBackground: true,
				Landscape:       true,
				Margins:         html2pdf.Margins{Top: "0", Right: "2cm", Bottom: "2cm", Left: "2cm"},
			},
			wantTimeout: 45 * time.Second,
		},
		{
			name: "flags win over config",
			args: []string{"-c", cfgPath, "--format", "A3", "--margin-right", "1in", "--timeout", "5s", "p.html"},
			wantOpts: html2pdf.PDFOptions{
				Format:          "A3",
				PrintBackground: true,
				Landscape:       true,
				Margins:         html2pdf.Margins{Top: "0", Right: "1in", Bottom: "2cm", Left: "2cm"},
			},
			wantTimeout: 5 * time.Second,
		},
		{
			name: "env fills defaults",
			args: []string{"p.html"},
			env:  map[string]string{"HTML2PDF_FORMAT": "Legal", "HTML2PDF_MARGIN": "0", "HTML2PDF_TIMEOUT": "1m"},
			wantOpts: html2pdf.PDFOptions{
				Format:          "Legal",
				PrintBackground: true,
				Margins:         html2pdf.UniformMargins("0"),
			},
			wantTimeout: time.Minute,
		},
		{
			name: "config wins over env",
			args: []string{"-c", cfgPath, "p.html"},
			env:  map[string]string{"HTML2PDF_FORMAT": "Legal", "HTML2PDF_MARGIN": "0"},
			wantOpts: html2pdf.PDFOptions{
				Format:          "Letter",
				PrintBackground: true,
				Landscape:       true,
				Margins:         html2pdf.Margins{Top: "0", Right: "2cm", Bottom: "2cm", Left: "2cm"},
			},
			wantTimeout: 45 * time.Second,
		},
		{
			name:        "env timeout wins over config",
			args:        []string{"-c", cfgPath, "p.html"},
			env:         map[string]string{"HTML2PDF_TIMEOUT": "10s"},
			wantOpts:    html2pdf.PDFOptions{Format: "Letter", PrintBackground: true, Landscape: true, Margins: html2pdf.Margins{Top: "0", Right: "2cm", Bottom: "2cm", Left: "2cm"}},
			wantTimeout: 10 * time.Second,
		},
		{
			name:        "HTML2PDF_CONFIG used without --config",
			args:        []string{"p.html"},
			env:         map[string]string{"HTML2PDF_CONFIG": cfgPath},
			wantOpts:    html2pdf.PDFOptions{Format: "Letter", PrintBackground: true, Landscape: true, Margins: html2pdf.Margins{Top: "0", Right: "2cm", Bottom: "2cm", Left: "2cm"}},
			wantTimeout: 45 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvConfig(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			f, _, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}

			s, err := resolveSettings(f, loadEnvConfig())
			if err != nil {
				t.Fatalf("resolveSettings() error = %v", err)
			}
			if s.options != tt.wantOpts {
				t.Errorf("options = %+v, want %+v", s.options, tt.wantOpts)
			}
			if s.timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", s.timeout, tt.wantTimeout)
			}
		})
	}
}

func TestResolveSettings_BrowserConfig(t *testing.T) {
	clearEnvConfig(t)
	cfgPath := writeConfig(t, "browser:\n  bin: /opt/chrome/chrome\n  noSandbox: true\n")

	f, _, err := parseFlags([]string{"-c", cfgPath, "p.html"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	s, err := resolveSettings(f, loadEnvConfig())
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.browser.Bin != "/opt/chrome/chrome" || !s.browser.NoSandbox {
		t.Errorf("browser = %+v", s.browser)
	}
}

func TestResolveSettings_Errors(t *testing.T) {
	clearEnvConfig(t)

	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr error
	}{
		{"unknown key", "pdf:\n  colour: red\n", nil, config.ErrConfigParse},
		{"bad config timeout", "browser:\n  timeout: soon\n", nil, config.ErrInvalidTimeout},
		{"negative flag timeout", "", []string{"--timeout", "-1s"}, config.ErrInvalidTimeout},
		{"missing config", "", []string{"-c", "/nonexistent/print.yaml"}, config.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.config != "" {
				args = append([]string{"-c", writeConfig(t, tt.config)}, args...)
			}
			f, _, err := parseFlags(append(args, "p.html"))
			if err != nil {
				t.Fatalf("parseFlags() error = %v", err)
			}

			_, err = resolveSettings(f, loadEnvConfig())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if exitCodeFor(err) != ExitUsage {
				t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitUsage)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolveTimeout - Priority
// ---------------------------------------------------------------------------

func TestResolveTimeout(t *testing.T) {
	t.Parallel()

	withTimeout := &config.Config{Browser: config.BrowserConfig{Timeout: "45s"}}

	tests := []struct {
		name    string
		flag    string
		env     time.Duration
		cfg     *config.Config
		want    time.Duration
		wantErr bool
	}{
		{"default", "", 0, config.DefaultConfig(), 30 * time.Second, false},
		{"config", "", 0, withTimeout, 45 * time.Second, false},
		{"env over config", "", time.Minute, withTimeout, time.Minute, false},
		{"flag over everything", "2m", time.Minute, withTimeout, 2 * time.Minute, false},
		{"flag invalid", "abc", 0, withTimeout, 0, true},
		{"flag zero", "0s", 0, withTimeout, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveTimeout(tt.flag, tt.env, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveTimeout() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("resolveTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConfigOverrides - Config to overrides
// ---------------------------------------------------------------------------

func TestConfigOverrides(t *testing.T) {
	t.Parallel()

	off := false
	cfg := &config.Config{PDF: config.PDFConfig{
		PrintBackground: &off,
		Margin:          config.MarginConfig{Left: "3mm"},
	}}

	got := configOverrides(cfg).Apply(html2pdf.DefaultPDFOptions())

	want := html2pdf.PDFOptions{
		Format:          "A4",
		PrintBackground: false,
		Margins:         html2pdf.Margins{Top: "1cm", Right: "1cm", Bottom: "1cm", Left: "3mm"},
	}
	if got != want {
		t.Errorf("options = %+v, want %+v", got, want)
	}
}

func TestConfigOverrides_Empty(t *testing.T) {
	t.Parallel()

	got := configOverrides(config.DefaultConfig()).Apply(html2pdf.DefaultPDFOptions())
	if got != html2pdf.DefaultPDFOptions() {
		t.Errorf("empty config changed options: %+v", got)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Hints by error type
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"input not found", fmt.Errorf("%w: x.html", html2pdf.ErrInputNotFound), "relative paths"},
		{"timeout", fmt.Errorf("%w: %w", html2pdf.ErrPageLoad, context.DeadlineExceeded), "--timeout"},
		{"write", fmt.Errorf("%w: denied", html2pdf.ErrWritePDF), "writable"},
		{"format", fmt.Errorf("%w: B9", html2pdf.ErrInvalidFormat), "Letter"},
		{"margin", fmt.Errorf("%w: top", html2pdf.ErrInvalidMargin), "CSS length"},
		{"config", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), "--config"},
		{"other", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := hintFor(tt.err, "")
			if tt.contains == "" {
				if hint != "" {
					t.Errorf("hintFor() = %q, want empty", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hintFor() = %q, want it to contain %q", hint, tt.contains)
			}
		})
	}
}

func TestHintFor_ConfigNameListsSearchPaths(t *testing.T) {
	t.Parallel()

	hint := hintFor(config.ErrConfigNotFound, "print")
	if !strings.Contains(hint, "go-html2pdf") {
		t.Errorf("hint should suggest the user config directory, got %q", hint)
	}
}

// ---------------------------------------------------------------------------
// TestEffectiveConfig - Round trip through config
// ---------------------------------------------------------------------------

func TestEffectiveConfig(t *testing.T) {
	t.Parallel()

	s := &settings{
		options: html2pdf.PDFOptions{Format: "Letter", Landscape: true, Margins: html2pdf.UniformMargins("5mm")},
		timeout: 90 * time.Second,
	}

	cfg := effectiveConfig(s)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("effective config should validate: %v", err)
	}

	back := configOverrides(cfg).Apply(html2pdf.DefaultPDFOptions())
	if back != s.options {
		t.Errorf("round trip = %+v, want %+v", back, s.options)
	}
	if d, _ := cfg.TimeoutDuration(); d != s.timeout {
		t.Errorf("timeout = %v, want %v", d, s.timeout)
	}
}
