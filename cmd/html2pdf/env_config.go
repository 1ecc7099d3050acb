package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Lets CI pipelines tune conversions without a YAML file.
type envConfig struct {
	ConfigPath string        // HTML2PDF_CONFIG: config name or path
	Timeout    time.Duration // HTML2PDF_TIMEOUT: page load + render timeout
	Format     string        // HTML2PDF_FORMAT: paper format
	Margin     string        // HTML2PDF_MARGIN: margin for every side
}

// knownEnvVars lists valid HTML2PDF_* variables, for typo detection.
var knownEnvVars = map[string]bool{
	"HTML2PDF_CONFIG":    true,
	"HTML2PDF_TIMEOUT":   true,
	"HTML2PDF_FORMAT":    true,
	"HTML2PDF_MARGIN":    true,
	"HTML2PDF_CONTAINER": true, // read by --doctor
}

// loadEnvConfig reads the recognized HTML2PDF_* variables.
// An unparsable or non-positive timeout is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("HTML2PDF_CONFIG"),
		Format:     os.Getenv("HTML2PDF_FORMAT"),
		Margin:     os.Getenv("HTML2PDF_MARGIN"),
	}

	if timeout := os.Getenv("HTML2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// unknownEnvVars returns the set HTML2PDF_* variables this tool does not read.
func unknownEnvVars() []string {
	var names []string
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "HTML2PDF_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			names = append(names, name)
		}
	}
	return names
}

// warnUnknownEnvVars prints a warning for each unrecognized HTML2PDF_* variable.
func warnUnknownEnvVars(w io.Writer) {
	for _, name := range unknownEnvVars() {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}

// applyEnvConfig fills config fields the file left empty.
// Resulting priority: CLI flags > config file > env vars > defaults.
// Timeout is resolved separately in resolveTimeout.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" && cfg.PDF.Format == "" {
		cfg.PDF.Format = env.Format
	}
	if env.Margin != "" && cfg.PDF.Margin.All == "" {
		cfg.PDF.Margin.All = env.Margin
	}
}
