// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PDFExtension is appended to derived output paths.
const PDFExtension = ".pdf"

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "print" -> false (name)
//   - "./print.yaml" -> true (relative path)
//   - "/etc/html2pdf.yaml" -> true (absolute)
//   - "C:\config\print.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReplaceExt swaps the extension of path for ext. A path without an
// extension gets ext appended. Dots in directory names are left alone.
//
// Examples:
//   - ReplaceExt("report.html", ".pdf") -> "report.pdf"
//   - ReplaceExt("a.b/page", ".pdf") -> "a.b/page.pdf"
//   - ReplaceExt("archive.tar.htm", ".pdf") -> "archive.tar.pdf"
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// DefaultOutputPath returns input with its extension replaced by .pdf.
func DefaultOutputPath(input string) string {
	return ReplaceExt(input, PDFExtension)
}

// EnsureParentDir creates the parent directory of path when it is missing.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// SamePath reports whether a and b name the same file. Both are compared in
// cleaned absolute form, and via os.SameFile when both exist.
func SamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}
	infoA, errA := os.Stat(a)
	infoB, errB := os.Stat(b)
	if errA != nil || errB != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
