package extstat

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Summary describes a completed scan.
type Summary struct {
	// FileCount is the number of regular files analyzed.
	FileCount int64
	// TotalBytes is the cumulative size of all analyzed files.
	TotalBytes int64
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration
}

// progress throttles calls to a hook from inside the walk callback.
type progress struct {
	hook     func(int64, int64)
	interval time.Duration
	last     time.Time
	files    int64
	bytes    int64
}

func (p *progress) add(size int64) {
	p.files++
	p.bytes += size

	if p.hook == nil {
		return
	}

	if now := time.Now(); now.Sub(p.last) >= p.interval {
		p.last = now
		p.hook(p.files, p.bytes)
	}
}

// Run scans opt.Path and returns the byte count per extension.
//
// The path must exist and be a directory, otherwise ErrInvalidPath is returned
// before anything is scanned. Any read error during the walk aborts the scan
// and no report is returned.
//
// progressHook, if set, is called with the running file and byte counts at most
// once per opt.ProgressInterval. Calls are sequential but come from the walk's
// worker goroutine, not the caller's.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Sizes, Summary, error) {
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}

	if opt.Path == "" {
		return nil, Summary{}, fmt.Errorf("%w: no path given", ErrInvalidPath)
	}

	root := filepath.Clean(opt.Path)

	info, err := os.Stat(root)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("%w: accessing path %q: %w", ErrInvalidPath, root, err)
	}

	if !info.IsDir() {
		return nil, Summary{}, fmt.Errorf("%w: path %q is not a directory", ErrInvalidPath, root)
	}

	// Resolve a linked root so debug output names the real directory.
	if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			return nil, Summary{}, fmt.Errorf("%w: resolving %q: %w", ErrInvalidPath, root, err)
		}

		log.Debug().Str("path", root).Str("resolved", resolved).Msg("following root symlink")
		root = resolved
	}

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	prog := &progress{hook: progressHook, interval: interval, last: time.Now()}

	log.Debug().Str("root", root).Bool("convert", opt.Convert).Bool("json", opt.WantJSON).Msg("scanning")

	start := time.Now()

	files, walkErr := entries(log.WithContext(ctx), root)

	sizes := Aggregate(func(yield func(FileEntry) bool) {
		for e := range files {
			prog.add(e.Size)

			if !yield(e) {
				return
			}
		}
	})
	if err := walkErr(); err != nil {
		return nil, Summary{}, err
	}

	summary := Summary{
		FileCount:  prog.files,
		TotalBytes: prog.bytes,
		Elapsed:    time.Since(start),
	}

	log.Debug().
		Int64("files", summary.FileCount).
		Int64("bytes", summary.TotalBytes).
		Int("extensions", sizes.Len()).
		Dur("elapsed", summary.Elapsed).
		Msg("scan complete")

	return sizes, summary, nil
}

// errStopped ends a walk whose consumer stopped iterating.
var errStopped = errors.New("iteration stopped")

// entries returns the files below root as a sequence, and a function reporting
// the walk error once the sequence has been consumed.
func entries(ctx context.Context, root string) (iter.Seq[FileEntry], func() error) {
	var walkErr error

	seq := func(yield func(FileEntry) bool) {
		err := Walk(ctx, root, func(e FileEntry) error {
			if !yield(e) {
				return errStopped
			}

			return nil
		})
		if err != nil && !errors.Is(err, errStopped) {
			walkErr = err
		}
	}

	return seq, func() error { return walkErr }
}
