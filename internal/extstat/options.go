package extstat

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

var (
	// ErrInvalidPath is returned when the target path does not exist or is not a directory.
	ErrInvalidPath = errors.New("invalid path")
	// ErrFilesystemAccess is returned when a directory or file cannot be read during the walk.
	ErrFilesystemAccess = errors.New("filesystem access")
	// ErrOutputWrite is returned when the statistics file cannot be written.
	ErrOutputWrite = errors.New("output write")
)

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Convert enables conversion of byte counts to binary units.
	Convert bool
	// WantJSON enables writing the statistics file.
	WantJSON bool
	// Debug indicates whether debug output is enabled.
	Debug bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Logger receives debug output. Nil discards it.
	Logger *zerolog.Logger
}
