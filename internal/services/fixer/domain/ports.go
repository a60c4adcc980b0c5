package domain

import (
	"context"
	"io/fs"

	"bbcenglish/internal/core/rewrite"
)

// Source is a decoded file ready for rewriting
type Source struct {
	Text   string
	BOM    bool        // a UTF-8 byte order mark was stripped and is restored on write
	Digest string      // blake3 of the bytes on disk
	Perm   fs.FileMode // preserved on write
}

// FilesPort is the filesystem seen by the fixer
type FilesPort interface {
	// Discover returns matching files under root in sorted order. A root that is
	// neither a file nor a directory is an InvalidArgument error
	Discover(ctx context.Context, root string, exts, exclude []string) ([]string, error)
	// Read loads and decodes path
	Read(path string) (Source, error)
	// Write replaces path with text, refusing with a Conflict error when the bytes on
	// disk no longer match src.Digest. It returns the digest of the written bytes
	Write(path string, src Source, text string) (string, error)
}

// RunnerPort runs a batch
type RunnerPort interface {
	Run(ctx context.Context, opt Options) (Report, error)
}

// ConverterPort rewrites a document held in memory
type ConverterPort interface {
	Convert(path, text string) rewrite.Result
}
