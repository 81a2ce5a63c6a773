// Package logging builds the application logger.
// The game owns the terminal while it runs, so log output goes to a
// size-rotated file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is where logs go when no path is configured.
const DefaultPath = "~/.lavaescape/lavaescape.log"

// Options configures the logger.
type Options struct {
	Path   string // log file; "-" logs to stderr
	Level  string // debug, info, warn, error
	Prefix string
}

// New creates a logger writing to a rotating file.
// The returned closer releases the file and must be closed on exit.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var w io.WriteCloser
	if opts.Path == "-" {
		w = nopCloser{os.Stderr}
	} else {
		path := opts.Path
		if path == "" {
			path = DefaultPath
		}
		path, err := expandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create log directory: %w", err)
		}
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, w, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
