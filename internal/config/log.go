package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const defaultScoreDirName = "roids"

// NewLogger builds a logger writing to w. The level comes from LOG_LEVEL and
// defaults to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// LogOutput opens LOG_FILE for appending. Without LOG_FILE logs are
// discarded; the terminal is busy drawing the game.
func LogOutput() (io.Writer, func() error, error) {
	path := GetEnv("LOG_FILE", "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}

// ScoreDir returns SCORE_DIR, or a directory under the user's config dir.
func ScoreDir() string {
	if dir := GetEnv("SCORE_DIR", ""); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), defaultScoreDirName)
	}
	return filepath.Join(base, defaultScoreDirName, "scores")
}
