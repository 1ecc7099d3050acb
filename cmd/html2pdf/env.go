package main

import (
	"io"
	"os"
	"time"

	html2pdf "github.com/alnah/go-html2pdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer

	// Renderer replaces headless Chrome when non-nil.
	Renderer html2pdf.Renderer
}

// DefaultEnv returns the production environment: real stdio, Chrome rendering.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
