// Package strings provides slice, path and line helpers shared across packages
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Or returns def when s is blank, otherwise s
func Or(s, def string) string {
	if std.TrimSpace(s) == "" {
		return def
	}
	return s
}

// MustPrefix normalizes and asserts a route root like /api or /docs
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// SplitLines splits s after every "\n", keeping the terminator on each piece.
// The last piece has no terminator when s does not end in "\n"; "" yields no lines
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := std.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// CutTerminator splits a line into its body and its "\n" or "\r\n" ending
func CutTerminator(line string) (body, term string) {
	switch {
	case std.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case std.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
