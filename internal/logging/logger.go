// Package logging builds the debug logger. Logging is off unless a file is
// given, since anything written to stderr shows up as a rendering error in the
// tmux status bar.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

type Options struct {
	File  string // empty disables logging
	Level zerolog.Level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a logger and the closer for its file. The closer must be called
// once logging is done.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.File == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	logger := zerolog.New(w).
		Level(opts.Level).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	return logger, w, nil
}

// WithDir tags every event with the directory being summarized.
func WithDir(logger zerolog.Logger, dir string) zerolog.Logger {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	return logger.With().Str("dir", dir).Logger()
}

// Since logs msg at debug level with the time elapsed since start.
func Since(logger zerolog.Logger, start time.Time, msg string) {
	logger.Debug().Dur("elapsed", time.Since(start)).Msg(msg)
}
