package html2pdf

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"

	"github.com/alnah/go-html2pdf/internal/process"
)

// launchConfig selects the Chrome binary and sandbox mode.
type launchConfig struct {
	bin       string
	noSandbox bool
}

// resolveLaunchConfig layers ROD_BROWSER_BIN, ROD_NO_SANDBOX and CI
// detection under the explicit converter settings.
func resolveLaunchConfig(cfg converterConfig) launchConfig {
	lc := launchConfig{bin: cfg.browserBin, noSandbox: cfg.noSandbox}
	if lc.bin == "" {
		lc.bin = os.Getenv("ROD_BROWSER_BIN")
	}

	// Pre-installed browsers in Docker images and CI runners need NoSandbox
	if os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		lc.noSandbox = true
	}
	return lc
}

// browserSession owns one headless Chrome process for a single conversion.
type browserSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	logger   *log.Logger
}

// launchBrowser starts headless Chrome and connects to it.
// Rod downloads a managed Chromium on first run when no binary is configured.
func launchBrowser(ctx context.Context, lc launchConfig, logger *log.Logger) (*browserSession, error) {
	l := launcher.New().Context(ctx).Headless(true)
	if lc.bin != "" {
		l = l.Bin(lc.bin)
	}
	if lc.noSandbox {
		l = l.NoSandbox(true)
	}

	logger.Debug("launching browser", "bin", lc.bin, "noSandbox", lc.noSandbox)
	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	s := &browserSession{launcher: l, logger: logger}
	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		s.kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	s.browser = browser
	logger.Debug("browser connected", "pid", l.PID())
	return s, nil
}

// Close shuts the browser down and kills whatever is left of its process group.
// Safe to call more than once.
func (s *browserSession) Close() error {
	if s == nil || s.launcher == nil {
		return nil
	}

	var errs []error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, err)
		}
		s.browser = nil
	}
	s.kill()
	s.logger.Debug("browser closed")
	return errors.Join(errs...)
}

// kill terminates Chrome and its helper processes.
func (s *browserSession) kill() {
	if s.launcher == nil {
		return
	}
	if pid := s.launcher.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	s.launcher.Kill()
	s.launcher = nil
}
