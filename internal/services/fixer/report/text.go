// Package report renders fixer run reports for humans (text) and machines (JSON)
package report

import (
	"fmt"
	"io"
	"strings"

	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/services/fixer/domain"
)

// Banner prints the mode banner shown before processing starts
func Banner(w io.Writer, mode domain.Mode) {
	if mode == domain.ModeApply {
		fmt.Fprint(w, "APPLY MODE - Files WILL be modified!\n\n")
		return
	}
	fmt.Fprint(w, "DRY RUN MODE - No files will be modified\n   Use --apply to actually make changes\n\n")
}

// Text prints the per-file change reports and the summary block. Read and write
// failures go to errW at the position of their file, so a merged stream reads in
// processing order. A nil errW drops them
func Text(w, errW io.Writer, rep domain.Report, verbose bool) {
	dry := rep.Mode != domain.ModeApply

	fmt.Fprintf(w, "Processing %d files...\n\n", rep.Discovered)

	for _, f := range rep.Files {
		if errW != nil {
			failure(errW, f)
		}
		switch {
		case f.Status == domain.StatusWriteFailed:
			fmt.Fprintf(w, "[WRITE FAILED] %s\n", f.Rel)
			fmt.Fprintf(w, "   %d change(s) not applied\n", len(f.Changes))
		case f.Counted() > 0:
			prefix := ""
			if dry {
				prefix = "[DRY RUN] "
			}
			fmt.Fprintf(w, "%s%s\n", prefix, f.Rel)
			verb := "made"
			if dry {
				verb = "would be made"
			}
			fmt.Fprintf(w, "   %d change(s) %s\n", len(f.Changes), verb)
		default:
			continue
		}
		if verbose {
			for _, c := range f.Changes {
				fmt.Fprintf(w, "   • %s\n", c)
			}
		}
		fmt.Fprintln(w)
	}

	s := rep.Summary
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Files processed: %d\n", s.FilesProcessed)
	fmt.Fprintf(w, "  Files with changes: %d\n", s.FilesWithChanges)
	fmt.Fprintf(w, "  Total changes: %d\n", s.TotalChanges)
	if s.WriteFailures > 0 {
		fmt.Fprintf(w, "  Write failures: %d\n", s.WriteFailures)
		fmt.Fprintf(w, "  Unapplied changes: %d\n", s.UnappliedChanges)
	}
	if s.ReadFailures > 0 {
		fmt.Fprintf(w, "  Read failures: %d\n", s.ReadFailures)
	}
	if rep.Interrupted {
		fmt.Fprintf(w, "  Interrupted: %d of %d files not processed\n", rep.Discovered-s.FilesProcessed, rep.Discovered)
	}

	if dry && s.TotalChanges > 0 {
		fmt.Fprint(w, "\nRun with --apply to make these changes\n")
	}
}

// Failures prints one line per read or write failure. The CLI sends these to stderr
// when the report itself is JSON
func Failures(w io.Writer, rep domain.Report) {
	for _, f := range rep.Files {
		failure(w, f)
	}
}

func failure(w io.Writer, f domain.FileResult) {
	switch f.Status {
	case domain.StatusReadFailed:
		fmt.Fprintf(w, "ERROR reading %s: %s\n", f.Path, describe(f.Err))
	case domain.StatusWriteFailed:
		fmt.Fprintf(w, "ERROR writing %s: %s\n", f.Path, describe(f.Err))
	}
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	if root := perr.Root(err); root != nil && root != err {
		return root.Error()
	}
	return err.Error()
}
