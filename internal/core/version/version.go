// Package version provides information about the build version of the binaries.
package version

import "fmt"

// BuildInfo holds version information about a build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// String renders "service version (commit, date)" for --version output
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}

// Info returns the build information for service. The version, commit, and date
// variables are intended to be set at build time using -ldflags.
func Info(service string) BuildInfo {
	// Set via -ldflags "-X 'bbcenglish/internal/core/version.version=v0.1.0'
	// -X 'bbcenglish/internal/core/version.commit=abcd' -X 'bbcenglish/internal/core/version.date=2026-01-02'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
