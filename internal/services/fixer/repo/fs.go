// Package repo provides the filesystem adapter for the fixer service
package repo

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	perr "bbcenglish/internal/platform/errors"
	"bbcenglish/internal/platform/logger"
	"bbcenglish/internal/services/fixer/domain"

	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding/unicode"
)

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// FS implements domain.FilesPort on the local filesystem
type FS struct{}

// NewFS returns the local filesystem adapter
func NewFS() FS { return FS{} }

// Digest returns the hex blake3-256 digest of b
func Digest(b []byte) string {
	sum := blake3.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// Discover walks root and returns files whose name ends in one of exts, sorted.
// Directories named in exclude are pruned. A single file is returned only if it matches
func (FS) Discover(ctx context.Context, root string, exts, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || (!info.Mode().IsRegular() && !info.IsDir()) {
		return nil, perr.WithOp(perr.InvalidArgf("%s is not a file or directory", root), "repo.Discover")
	}
	if info.Mode().IsRegular() {
		if matchExt(filepath.Base(root), exts) {
			return []string{root}, nil
		}
		return nil, nil
	}

	skip := make(map[string]struct{}, len(exclude))
	for _, x := range exclude {
		skip[x] = struct{}{}
	}
	log := logger.C(ctx)

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			if path == root {
				return werr
			}
			log.Warn().Err(werr).Str("path", path).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if _, ok := skip[d.Name()]; ok && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !matchExt(d.Name(), exts) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// follow links to regular files only
			if fi, err := os.Stat(path); err != nil || !fi.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, perr.WithOp(perr.IOf(err, "walk %s", root), "repo.Discover")
	}
	sort.Strings(out)
	return out, nil
}

func matchExt(name string, exts []string) bool {
	for _, e := range exts {
		if len(name) > len(e) && strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

// Read loads path as UTF-8 text. A leading byte order mark is stripped and remembered;
// any other invalid UTF-8 is a read error
func (FS) Read(path string) (domain.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.Source{}, perr.WithOp(perr.IOf(err, "read %s", path), "repo.Read")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Source{}, perr.WithOp(perr.IOf(err, "read %s", path), "repo.Read")
	}
	src := domain.Source{
		Digest: Digest(raw),
		Perm:   info.Mode().Perm(),
		BOM:    bytes.HasPrefix(raw, utf8BOM),
	}
	// the x/text decoder substitutes U+FFFD, so validate the raw bytes first
	if !utf8.Valid(raw) {
		return domain.Source{}, perr.WithOp(perr.IOf(errInvalidUTF8, "decode %s", path), "repo.Read")
	}
	body := raw
	if src.BOM {
		if body, err = unicode.UTF8BOM.NewDecoder().Bytes(raw); err != nil {
			return domain.Source{}, perr.WithOp(perr.IOf(err, "decode %s", path), "repo.Read")
		}
	}
	src.Text = string(body)
	return src, nil
}

// Write replaces path atomically: the new content goes to a temp file in the same
// directory which is renamed over the original. Nothing is written if the file changed
// since it was read. A symlinked path is written through to its target
func (FS) Write(path string, src domain.Source, text string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", perr.WithOp(perr.IOf(err, "write %s", path), "repo.Write")
	}
	current, err := os.ReadFile(target)
	if err != nil {
		return "", perr.WithOp(perr.IOf(err, "write %s", path), "repo.Write")
	}
	if Digest(current) != src.Digest {
		return "", perr.WithOp(perr.Conflictf("%s changed on disk since it was read", path), "repo.Write")
	}

	out := []byte(text)
	if src.BOM {
		if out, err = unicode.UTF8BOM.NewEncoder().Bytes(out); err != nil {
			return "", perr.WithOp(perr.IOf(err, "encode %s", path), "repo.Write")
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".bbc-*")
	if err != nil {
		return "", perr.WithOp(perr.IOf(err, "write %s", path), "repo.Write")
	}
	tmpName := tmp.Name()
	fail := func(err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", perr.WithOp(perr.IOf(err, "write %s", path), "repo.Write")
	}
	if _, err := tmp.Write(out); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(src.Perm); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", perr.WithOp(perr.IOf(err, "write %s", path), "repo.Write")
	}
	return Digest(out), nil
}
