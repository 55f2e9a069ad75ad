package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/taigrr/colorhash"

	"github.com/archivista/photoyard/internal/exif"
	"github.com/archivista/photoyard/naming"
)

// TagWriter commits a tag set into a file. Satisfied by *exif.Tool;
// swapped for a recorder in tests.
type TagWriter interface {
	WriteTags(ctx context.Context, path string, tags exif.TagSet) error
}

// Stats counts per-file outcomes for one sweep or watch session.
type Stats struct {
	Processed int
	Skipped   int
	Failed    int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d processed, %d skipped, %d failed", s.Processed, s.Skipped, s.Failed)
}

// Pipeline processes candidate files one at a time. It holds no per-file
// state, so a single Pipeline may be shared across goroutines as long as
// the TagWriter allows it.
type Pipeline struct {
	Writer TagWriter
	// ProcessedDir is the name of the subfolder processed files move into.
	ProcessedDir string
	Verbose      bool
}

// New returns a Pipeline with the default processed-folder name.
func New(writer TagWriter) *Pipeline {
	return &Pipeline{Writer: writer, ProcessedDir: DefaultProcessedDir}
}

// CanHandle reports whether path is a candidate: a regular file (not a
// symlink), with a supported extension, not already under a processed
// folder. It does not parse the name; Process reports those failures
// loudly rather than skipping them silently.
func (p *Pipeline) CanHandle(path string) bool {
	if underDir(path, p.ProcessedDir) {
		return false
	}
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	if _, ok := naming.ParseExtension(ext[1:]); !ok {
		return false
	}
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return true
}

// Process runs the full flow for one file: parse, validate, build tags,
// write them, move to processed/. The returned error is data for the
// caller's bookkeeping; Process has already logged the details.
func (p *Pipeline) Process(ctx context.Context, path string) error {
	name := filepath.Base(path)
	prefix := colorize(name)

	rec, err := naming.ParseAndValidate(name)
	if err != nil {
		var ve *naming.ValidationError
		if errors.As(err, &ve) {
			log.Printf("%s: invalid filename:", prefix)
			for _, msg := range ve.Messages() {
				log.Printf("%s:   - %s", prefix, msg)
			}
		} else {
			log.Printf("%s: %v", prefix, err)
		}
		return err
	}

	tags := exif.BuildTagSet(rec)
	if err := p.Writer.WriteTags(ctx, path, tags); err != nil {
		log.Printf("%s: writing metadata: %v", prefix, err)
		return err
	}
	if p.Verbose {
		for _, tag := range tags.SortedNames() {
			log.Printf("%s:   %s = %s", prefix, tag, tags[tag])
		}
	}

	dest, err := MoveToProcessed(path, p.ProcessedDir)
	if err != nil {
		log.Printf("%s: %v", prefix, err)
		return err
	}
	log.Printf("%s: processed, moved to %s", prefix, dest)
	return nil
}

// Sweep walks dir once and processes every candidate file, returning the
// outcome counts. Walk errors abort the sweep; per-file errors do not.
func (p *Pipeline) Sweep(ctx context.Context, dir string) (Stats, error) {
	var stats Stats
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == p.ProcessedDir && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !p.CanHandle(path) {
			stats.Skipped++
			return nil
		}
		if err := p.Process(ctx, path); err != nil {
			stats.Failed++
		} else {
			stats.Processed++
		}
		return nil
	})
	return stats, err
}

// colorize wraps a filename in an ANSI color picked by hash, so interleaved
// log lines for different files are visually separable.
func colorize(name string) string {
	code := 31 + colorhash.HashString(name)%6
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, name)
}
