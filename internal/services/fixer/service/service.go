// Package service implements the fixer: the per-file driver and the batch driver
package service

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"bbcenglish/internal/core/rewrite"
	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/platform/logger"
	"bbcenglish/internal/platform/validate"
	"bbcenglish/internal/services/fixer/domain"

	"github.com/google/uuid"
)

// Service implements domain.RunnerPort and domain.ConverterPort
type Service struct {
	Files domain.FilesPort
	RW    *rewrite.Rewriter

	newRunID func() string
	now      func() time.Time
}

// New constructs a fixer service
func New(files domain.FilesPort, rw *rewrite.Rewriter) *Service {
	return &Service{Files: files, RW: rw, newRunID: uuid.NewString, now: time.Now}
}

// Convert rewrites an in-memory document. path only labels the changes
func (s *Service) Convert(path, text string) rewrite.Result {
	return s.RW.Document(path, text)
}

// FixFile reads path, rewrites it and, in apply mode, writes it back when anything
// changed. Read and write failures are carried on the result, never returned
func (s *Service) FixFile(ctx context.Context, path string, mode domain.Mode) domain.FileResult {
	log := logger.C(logger.WithPath(ctx, path))
	res := domain.FileResult{Path: path, Status: domain.StatusClean}

	src, err := s.Files.Read(path)
	if err != nil {
		log.Debug().Err(err).Msg("read failed")
		res.Status, res.Err = domain.StatusReadFailed, err
		return res
	}
	res.Digest = src.Digest

	doc := s.RW.Document(path, src.Text)
	if !doc.Changed() {
		return res
	}
	res.Changes = doc.Changes

	if mode != domain.ModeApply {
		res.Status = domain.StatusPending
		return res
	}
	digest, err := s.Files.Write(path, src, doc.Text)
	if err != nil {
		log.Debug().Err(err).Int("changes", len(doc.Changes)).Msg("write failed")
		res.Status, res.Err = domain.StatusWriteFailed, err
		return res
	}
	res.Status, res.NewDigest = domain.StatusApplied, digest
	return res
}

// Run discovers files under opt.Root and fixes each of them. Files are processed by up
// to opt.Workers goroutines but results are always reported in sorted path order.
// Cancelling ctx stops the run between files; files already processed are reported
func (s *Service) Run(ctx context.Context, opt domain.Options) (domain.Report, error) {
	if err := validate.Struct(opt); err != nil {
		return domain.Report{}, perr.WithOp(err, "fixer.Run")
	}

	rep := domain.Report{
		RunID:     s.newRunID(),
		Mode:      opt.Mode,
		Root:      opt.Root,
		StartedAt: s.now().UTC(),
	}
	ctx = logger.WithRun(ctx, rep.RunID, string(opt.Mode))
	log := logger.C(ctx)

	paths, err := s.Files.Discover(ctx, opt.Root, opt.Extensions, opt.Exclude)
	if err != nil {
		return domain.Report{}, err
	}
	rep.Discovered = len(paths)
	log.Debug().Str("root", opt.Root).Int("files", len(paths)).Msg("discovered")

	base := opt.Root
	if len(paths) == 1 && paths[0] == opt.Root {
		base = filepath.Dir(opt.Root)
	}

	results := make([]domain.FileResult, len(paths))
	done := make([]bool, len(paths))

	sem := make(chan struct{}, opt.Workers)
	wg := sync.WaitGroup{}

	for i := range paths {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			if ctx.Err() != nil {
				return
			}
			r := s.FixFile(ctx, paths[i], opt.Mode)
			r.Rel = relTo(base, paths[i])
			results[i], done[i] = r, true
		}(i)
	}
	wg.Wait()

	for i := range results {
		if !done[i] {
			rep.Interrupted = true
			continue
		}
		rep.Files = append(rep.Files, results[i])
		rep.Summary.Add(results[i])
	}
	rep.Elapsed = s.now().UTC().Sub(rep.StartedAt)

	log.Info().
		Int("processed", rep.Summary.FilesProcessed).
		Int("changed", rep.Summary.FilesWithChanges).
		Int("changes", rep.Summary.TotalChanges).
		Bool("interrupted", rep.Interrupted).
		Dur("elapsed", rep.Elapsed).
		Msg("run complete")
	return rep, nil
}

func relTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}
