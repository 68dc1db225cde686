package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
)

const maxLogSize = 10 * 1024 * 1024

var (
	debugLog *os.File
	logPath  string
)

// Init initializes the file logger under dir (~/.party-tag when empty)
// and returns a zerolog logger writing to it.
func Init(dir, level string) (zerolog.Logger, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".party-tag")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath = filepath.Join(dir, "debug.log")
	f, err := openRotated(dir, logPath)
	if err != nil {
		return zerolog.Nop(), err
	}
	debugLog = f

	l := New(debugLog, level)
	l.Info().Str("path", logPath).Msg("Logger initialized")
	return l, nil
}

// openRotated opens path for append, renaming it first if it is too large (> 10MB)
func openRotated(dir, path string) (*os.File, error) {
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		backupPath := filepath.Join(dir, fmt.Sprintf("debug.log.%d", time.Now().Unix()))
		_ = os.Rename(path, backupPath)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// New builds a logger on w with the given level name; unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Console returns a human-friendly logger on stderr.
func Console(level string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return New(cw, level)
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
}

// LogPanic logs a panic with stack trace
func LogPanic(l zerolog.Logger, r any) {
	l.Error().Str("stack", string(debug.Stack())).Msgf("panic: %v", r)
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
