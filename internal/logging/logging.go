// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Rotation limits for the optional log file.
const (
	maxSizeMB  = 10
	maxBackups = 7
	maxAgeDays = 7
)

// New returns a JSON logger writing to out at the given level ("debug",
// "info", "warn", "error"; anything else means info). When file is not
// empty every line is also written to that file, rotated by size. The
// returned closer releases the file and must be called on shutdown.
func New(out io.Writer, level, file string) (*slog.Logger, io.Closer) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	var closer io.Closer = nopCloser{}
	if file != "" {
		rotator := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(out, rotator)
		closer = rotator
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
