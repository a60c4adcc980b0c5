package report

import (
	"encoding/json"
	"io"
	"time"

	"bbcenglish/internal/core/rewrite"
	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/services/fixer/domain"
)

type jsonFile struct {
	Path      string           `json:"path"`
	Rel       string           `json:"rel"`
	Status    domain.Status    `json:"status"`
	Digest    string           `json:"digest,omitempty"`
	NewDigest string           `json:"new_digest,omitempty"`
	Changes   []rewrite.Change `json:"changes,omitempty"`
	Error     *perr.Wire       `json:"error,omitempty"`
}

type jsonReport struct {
	RunID       string         `json:"run_id"`
	Mode        domain.Mode    `json:"mode"`
	Root        string         `json:"root"`
	StartedAt   string         `json:"started_at"`
	ElapsedMS   int64          `json:"elapsed_ms"`
	Discovered  int            `json:"discovered"`
	Interrupted bool           `json:"interrupted"`
	Files       []jsonFile     `json:"files"`
	Summary     domain.Summary `json:"summary"`
	ExitCode    int            `json:"exit_code"`
}

// JSON writes the report as one indented JSON document. Clean files are omitted
// from the file list; they are still counted in the summary
func JSON(w io.Writer, rep domain.Report) error {
	out := jsonReport{
		RunID:       rep.RunID,
		Mode:        rep.Mode,
		Root:        rep.Root,
		StartedAt:   rep.StartedAt.Format(time.RFC3339),
		ElapsedMS:   rep.Elapsed.Milliseconds(),
		Discovered:  rep.Discovered,
		Interrupted: rep.Interrupted,
		Files:       []jsonFile{},
		Summary:     rep.Summary,
		ExitCode:    rep.Summary.ExitCode(),
	}
	for _, f := range rep.Files {
		if f.Status == domain.StatusClean {
			continue
		}
		jf := jsonFile{
			Path:      f.Path,
			Rel:       f.Rel,
			Status:    f.Status,
			Digest:    f.Digest,
			NewDigest: f.NewDigest,
			Changes:   f.Changes,
		}
		if f.Err != nil {
			wire := perr.WireFrom(f.Err)
			jf.Error = &wire
		}
		out.Files = append(out.Files, jf)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
