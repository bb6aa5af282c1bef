package extstat

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
)

// Ext returns the extension of the base name of path, including the leading dot.
// Names without a dot, dotfiles without a further dot, and names ending in a dot
// have no extension.
func Ext(path string) string {
	name := filepath.Base(path)

	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}

	return name[i:]
}

// Walk calls fn for every regular file below root.
//
// Entries are classified by stat, so a link to a regular file counts as that
// file and a link to a directory is descended into. Special files and links to
// them are skipped, and logged to the zerolog logger in ctx. The first error
// from listing a directory, reading file metadata, or fn aborts the walk.
//
// fn runs on a fastwalk worker goroutine; a single worker keeps calls sequential.
//
//nolint:varnamelen // d is standard for DirEntry
func Walk(ctx context.Context, root string, fn func(FileEntry) error) error {
	log := zerolog.Ctx(ctx)

	// Follow also skips directory links that lead back into the current path.
	conf := &fastwalk.Config{
		Follow:     true,
		NumWorkers: 1,
	}

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: reading %q: %w", ErrFilesystemAccess, path, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if d.IsDir() {
			return nil
		}

		var info fs.FileInfo

		if d.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(path)
		} else {
			info, err = d.Info()
		}

		if err != nil {
			return fmt.Errorf("%w: stat %q: %w", ErrFilesystemAccess, path, err)
		}

		// Linked directories are traversed by fastwalk itself.
		if info.IsDir() {
			return nil
		}

		if !info.Mode().IsRegular() {
			log.Debug().Str("path", filepath.ToSlash(path)).Str("type", info.Mode().Type().String()).Msg("skipping non-regular entry")

			return nil
		}

		return fn(FileEntry{Ext: Ext(path), Size: info.Size()})
	})
}
