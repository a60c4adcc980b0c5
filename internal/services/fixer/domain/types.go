// Package domain defines the core types and ports for the fixer service
package domain

import (
	"time"

	"bbcenglish/internal/core/rewrite"
)

// Mode selects whether detected changes are written back
type Mode string

const (
	// ModeDryRun reports changes without touching files
	ModeDryRun Mode = "dry-run"
	// ModeApply writes changed files in place
	ModeApply Mode = "apply"
)

// Options controls one batch run
type Options struct {
	Root       string   `json:"root" validate:"required"`
	Mode       Mode     `json:"mode" validate:"oneof=dry-run apply"`
	Extensions []string `json:"extensions" validate:"required,min=1,dive,ext"`
	Exclude    []string `json:"exclude" validate:"dive,required"`
	Workers    int      `json:"workers" validate:"min=1,max=64"`
}

// Status is the outcome of one file
type Status string

const (
	// StatusClean means no rule fired
	StatusClean Status = "clean"
	// StatusPending means changes were detected in dry-run mode
	StatusPending Status = "pending"
	// StatusApplied means changes were written
	StatusApplied Status = "applied"
	// StatusReadFailed means the file could not be read or decoded
	StatusReadFailed Status = "read_failed"
	// StatusWriteFailed means changes were detected but the write was discarded
	StatusWriteFailed Status = "write_failed"
)

// FileResult is the outcome of processing one file
type FileResult struct {
	Path      string           `json:"path"`
	Rel       string           `json:"rel"`
	Status    Status           `json:"status"`
	Changes   []rewrite.Change `json:"changes,omitempty"`
	Digest    string           `json:"digest,omitempty"`
	NewDigest string           `json:"new_digest,omitempty"`
	Err       error            `json:"-"`
}

// Counted is the number of changes that count towards the run total. A failed write
// contributes nothing; its changes are reported as unapplied instead
func (r FileResult) Counted() int {
	if r.Status == StatusWriteFailed {
		return 0
	}
	return len(r.Changes)
}

// Summary aggregates a run
type Summary struct {
	FilesProcessed   int `json:"files_processed"`
	FilesWithChanges int `json:"files_with_changes"`
	TotalChanges     int `json:"total_changes"`
	UnappliedChanges int `json:"unapplied_changes"`
	ReadFailures     int `json:"read_failures"`
	WriteFailures    int `json:"write_failures"`
}

// Add folds one file result into the summary
func (s *Summary) Add(r FileResult) {
	s.FilesProcessed++
	switch r.Status {
	case StatusReadFailed:
		s.ReadFailures++
	case StatusWriteFailed:
		s.WriteFailures++
		s.UnappliedChanges += len(r.Changes)
	}
	if n := r.Counted(); n > 0 {
		s.FilesWithChanges++
		s.TotalChanges += n
	}
}

// ExitCode is 1 whenever any change was detected, applied or not, and 0 otherwise
func (s Summary) ExitCode() int {
	if s.TotalChanges > 0 || s.UnappliedChanges > 0 {
		return 1
	}
	return 0
}

// Report is the full outcome of a run, in sorted path order
type Report struct {
	RunID       string        `json:"run_id"`
	Mode        Mode          `json:"mode"`
	Root        string        `json:"root"`
	Discovered  int           `json:"discovered"`
	Interrupted bool          `json:"interrupted,omitempty"`
	StartedAt   time.Time     `json:"started_at"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Files       []FileResult  `json:"files"`
	Summary     Summary       `json:"summary"`
}
