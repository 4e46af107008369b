package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps a normal interactive session free of log noise.
const DefaultLevel = "warn"

// ParseLevel maps a configured level name to a zerolog level. Unknown or
// empty names fall back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.WarnLevel
}

// Init initializes the global logger. Logs go to w (stderr when nil) and, if
// logFilePath is non-empty, to that file as well. Stdout is never used: it
// belongs to the notification output.
func Init(w io.Writer, logFilePath, level string) (func(), error) {
	zerolog.SetGlobalLevel(ParseLevel(level))

	if w == nil {
		w = os.Stderr
	}
	writers := []io.Writer{w}
	var f *os.File
	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		var err error
		f, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, err
		}
		writers = append(writers, f)
	}
	Log = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	return func() {
		if f != nil {
			_ = f.Close()
		}
	}, nil
}

// Log is the package-global logger configured by Init. Until Init runs it
// discards everything.
var Log = zerolog.Nop()

// Get returns a pointer to the package-global logger
func Get() *zerolog.Logger {
	return &Log
}
