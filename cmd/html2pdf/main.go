// Command html2pdf renders a local HTML file to PDF with headless Chrome.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to know whether to log GOMAXPROCS
	flags, _, err := parseFlags(os.Args[1:])
	verbose := err == nil && flags.common.verbose

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI with args (program name first) and returns the exit code.
func runMain(args []string, env *Environment) int {
	ui := newConsole(env)

	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		ui.failure(err.Error(), "\n  hint: run html2pdf --help")
		return ExitUsage
	}

	switch {
	case flags.mode.help:
		printUsage(env.Stdout)
		return ExitSuccess
	case flags.mode.version:
		fmt.Fprintf(env.Stdout, "html2pdf %s\n", Version)
		return ExitSuccess
	case flags.mode.doctor:
		return runDoctorCmd(flags, env)
	case flags.mode.printConfig:
		if err := runPrintConfig(flags, env); err != nil {
			ui.failure(err.Error(), hintFor(err, flags.common.config))
			return exitCodeFor(err)
		}
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		ui.failure(err.Error(), hintFor(err, flags.common.config))
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}
