package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-html2pdf/internal/fileutil"
	"github.com/alnah/go-html2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid timeout")
)

// Field length limits.
const (
	MaxFormatLength = 10   // "Tabloid", "A4"
	MaxMarginLength = 20   // "1cm", "0.75in"
	MaxPathLength   = 4096 // PATH_MAX on Linux
	MaxTimeoutLen   = 20   // "30s", "2m30s"
)

// userConfigDirName is the directory under os.UserConfigDir searched for named configs.
const userConfigDirName = "go-html2pdf"

// Config holds defaults for conversions. Empty strings and nil pointers
// mean "not set" and leave the built-in default in place.
type Config struct {
	PDF     PDFConfig     `yaml:"pdf"`
	Browser BrowserConfig `yaml:"browser"`
}

// PDFConfig defines print options.
type PDFConfig struct {
	Format          string       `yaml:"format,omitempty"`          // "A4", "Letter", ... (default: "A4")
	PrintBackground *bool        `yaml:"printBackground,omitempty"` // default: true
	Landscape       *bool        `yaml:"landscape,omitempty"`       // default: false
	Margin          MarginConfig `yaml:"margin,omitempty"`
}

// MarginConfig defines page margins as CSS lengths.
// All applies to every side; a specific side wins over All.
type MarginConfig struct {
	All    string `yaml:"all,omitempty"`
	Top    string `yaml:"top,omitempty"`
	Right  string `yaml:"right,omitempty"`
	Bottom string `yaml:"bottom,omitempty"`
	Left   string `yaml:"left,omitempty"`
}

// BrowserConfig defines headless Chrome settings.
type BrowserConfig struct {
	Timeout   string `yaml:"timeout,omitempty"`   // Go duration, e.g. "45s"
	Bin       string `yaml:"bin,omitempty"`       // Chrome/Chromium binary
	NoSandbox bool   `yaml:"noSandbox,omitempty"` // containers and CI
}

// Side returns the configured margin for one side, falling back to All.
func (m MarginConfig) Side(value string) string {
	if value != "" {
		return value
	}
	return m.All
}

// TimeoutDuration parses Browser.Timeout. Zero means not set.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Browser.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Browser.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout: %v", ErrInvalidTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout: must be positive, got %s", ErrInvalidTimeout, c.Browser.Timeout)
	}
	return d, nil
}

// Validate checks field lengths and the timeout syntax.
// Paper format and margin syntax are checked by the converter.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"pdf.format", c.PDF.Format, MaxFormatLength},
		{"pdf.margin.all", c.PDF.Margin.All, MaxMarginLength},
		{"pdf.margin.top", c.PDF.Margin.Top, MaxMarginLength},
		{"pdf.margin.right", c.PDF.Margin.Right, MaxMarginLength},
		{"pdf.margin.bottom", c.PDF.Margin.Bottom, MaxMarginLength},
		{"pdf.margin.left", c.PDF.Margin.Left, MaxMarginLength},
		{"browser.timeout", c.Browser.Timeout, MaxTimeoutLen},
		{"browser.bin", c.Browser.Bin, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: every option keeps its built-in default.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.DecodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order:
// current directory, then ~/.config/go-html2pdf/, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Encode(c)
}
