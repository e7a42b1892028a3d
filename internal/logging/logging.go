// Package logging routes the standard logger into a rotating file so the
// terminal stays clean while the TUI owns it.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// Setup points the std logger at a rotating file.
// The returned closer restores stderr output and closes the file.
func Setup(opts Options) (io.Closer, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    max(opts.MaxSizeMB, 1),
		MaxBackups: opts.MaxBackups,
	}

	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return closer{w}, nil
}

// Discard silences the std logger
func Discard() {
	log.SetOutput(io.Discard)
}

type closer struct {
	w *lumberjack.Logger
}

func (c closer) Close() error {
	log.SetOutput(os.Stderr)
	return c.w.Close()
}
