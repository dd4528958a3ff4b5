// Package logging sets up the file logger. The terminal is owned by the UI,
// so nothing here writes to stdout.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jask/contactlabels/internal/config"
)

// Logger wraps a stdlib logger writing to a rotating file.
type Logger struct {
	*log.Logger
	out io.WriteCloser
}

// New opens the rotating log file described by cfg. An empty path discards
// all output.
func New(cfg config.LogConfig) (*Logger, error) {
	if cfg.Path == "" {
		return &Logger{Logger: log.New(io.Discard, "", 0)}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	out := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB, // megabytes
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays, // days
		Compress:   true,
	}
	return &Logger{
		Logger: log.New(out, "contactlabels ", log.LstdFlags|log.Lmsgprefix),
		out:    out,
	}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.out == nil {
		return nil
	}
	return l.out.Close()
}
