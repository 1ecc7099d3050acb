package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-html2pdf/internal/hints"
)

// Doctor status values.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult is the --doctor report, also emitted as JSON.
type doctorResult struct {
	Status   string     `json:"status"`
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	Config   configInfo `json:"config"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// configInfo describes the settings a conversion would run with.
type configInfo struct {
	Source  string `json:"source"` // config name, or "defaults"
	Format  string `json:"format,omitempty"`
	Timeout string `json:"timeout,omitempty"`
}

type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

func (r *doctorResult) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) fail(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd prints the diagnostics and returns an exit code.
// Warnings still exit 0; only errors exit 1.
func runDoctorCmd(flags *cliFlags, env *Environment) int {
	result := runDoctor(flags)

	if flags.mode.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs every check against the current process environment.
func runDoctor(flags *cliFlags) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: os.Getenv("ROD_BROWSER_BIN"),
		},
	}

	checkChrome(result)
	checkEnvironment(result)
	checkConfig(result, flags)
	checkSystem(result)

	switch {
	case len(result.Errors) > 0:
		result.Status = statusErrors
	case len(result.Warnings) > 0:
		result.Status = statusWarnings
	}
	return result
}

// checkChrome locates Chrome the way the converter will launch it.
func checkChrome(result *doctorResult) {
	bin := result.Env.BrowserBin
	if bin == "" {
		var found bool
		if bin, found = launcher.LookPath(); !found {
			// rod downloads a managed Chromium on first conversion
			result.warn("Chrome/Chromium not found; a Chromium build will be downloaded on first run. Install Chrome or set ROD_BROWSER_BIN to avoid it")
			return
		}
	}

	if _, err := os.Stat(bin); err != nil {
		result.fail("Chrome not found at %s", bin)
		return
	}
	result.Chrome.Found = true
	result.Chrome.Path = bin

	// #nosec G204 -- path comes from ROD_BROWSER_BIN or rod's lookup
	if out, err := exec.Command(bin, "--version").Output(); err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.warn("could not read Chrome version: %v", err)
	}

	// Same rule as the converter's launch config
	result.Chrome.Sandbox = result.Env.NoSandbox != "1" && !hints.InCI() && result.Env.BrowserBin == ""
}

// checkEnvironment flags containers where Chrome's sandbox will not start.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()
	result.Env.CI = hints.InCI()

	sandboxHandled := result.Env.CI || result.Env.NoSandbox == "1" || result.Env.BrowserBin != ""
	if result.Env.Container && !sandboxHandled {
		result.warn("Container detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
	for _, name := range unknownEnvVars() {
		result.warn("unknown environment variable %s (typo?)", name)
	}
	if v := os.Getenv("HTML2PDF_TIMEOUT"); v != "" && loadEnvConfig().Timeout == 0 {
		result.warn("HTML2PDF_TIMEOUT=%q is not a positive duration and is ignored", v)
	}
}

// isContainer reports whether a container runtime is detected, and which
// signal matched.
func isContainer() (bool, string) {
	if os.Getenv("HTML2PDF_CONTAINER") == "1" {
		return true, "HTML2PDF_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	// Podman, systemd-nspawn
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkConfig resolves settings exactly as a conversion would.
func checkConfig(result *doctorResult, flags *cliFlags) {
	envCfg := loadEnvConfig()

	result.Config.Source = "defaults"
	if name := flags.common.config; name != "" {
		result.Config.Source = name
	} else if envCfg.ConfigPath != "" {
		result.Config.Source = envCfg.ConfigPath
	}

	s, err := resolveSettings(flags, envCfg)
	if err != nil {
		result.fail("%v", err)
		return
	}
	result.Config.Format = s.options.Format
	result.Config.Timeout = s.timeout.String()
}

// checkSystem verifies Chrome can create its profile under the temp directory.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	probe := filepath.Join(tmpDir, "html2pdf-doctor-probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o600); err != nil {
		result.fail("temp directory not writable: %s", tmpDir)
		return
	}
	_ = os.Remove(probe)
	result.System.TempWritable = true
}

// doctorPrinter renders report lines with status icons bound to w.
type doctorPrinter struct {
	w              io.Writer
	ok, warn, fail string
}

func newDoctorPrinter(w io.Writer) *doctorPrinter {
	r := lipgloss.NewRenderer(w)
	return &doctorPrinter{
		w:    w,
		ok:   r.NewStyle().Foreground(colorGreen).Render(iconSuccess),
		warn: r.NewStyle().Foreground(colorYellow).Render(iconWarning),
		fail: r.NewStyle().Foreground(colorRed).Render(iconError),
	}
}

func (p *doctorPrinter) section(title string) { fmt.Fprintln(p.w, "\n"+title) }

func (p *doctorPrinter) line(icon, format string, args ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", icon, fmt.Sprintf(format, args...))
}

// printDoctorResult writes the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	p := newDoctorPrinter(w)
	fmt.Fprintln(w, "html2pdf doctor")

	p.section("Chrome/Chromium")
	if r.Chrome.Found {
		p.line(p.ok, "Found at %s", r.Chrome.Path)
		if r.Chrome.Version != "" {
			p.line(p.ok, "Version: %s", r.Chrome.Version)
		}
		sandbox := "enabled"
		if !r.Chrome.Sandbox {
			sandbox = "disabled"
		}
		p.line(p.ok, "Sandbox: %s", sandbox)
	} else {
		p.line(p.warn, "Not found")
	}

	p.section("Environment")
	p.line(p.ok, "Platform: %s/%s", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		p.line(p.ok, "Container: detected (%s)", r.Env.ContainerHint)
	}
	if r.Env.CI {
		p.line(p.ok, "CI: detected")
	}

	p.section("Config")
	if r.Config.Format != "" {
		p.line(p.ok, "Source: %s (format %s, timeout %s)", r.Config.Source, r.Config.Format, r.Config.Timeout)
	} else {
		p.line(p.fail, "Source: %s (invalid)", r.Config.Source)
	}

	p.section("System")
	if r.System.TempWritable {
		p.line(p.ok, "Temp directory: writable")
	} else {
		p.line(p.fail, "Temp directory: not writable")
	}

	if len(r.Warnings) > 0 {
		p.section("Warnings")
		for _, msg := range r.Warnings {
			p.line(p.warn, "%s", msg)
		}
	}
	if len(r.Errors) > 0 {
		p.section("Errors")
		for _, msg := range r.Errors {
			p.line(p.fail, "%s", msg)
		}
	}

	fmt.Fprintln(w)
	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to convert")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
