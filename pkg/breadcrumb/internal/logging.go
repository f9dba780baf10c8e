package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	sinkOnce sync.Once
	logSink  io.Writer

	appOnce   sync.Once
	appLogger *slog.Logger
	appLevel  = &slog.LevelVar{}

	frameworkOnce   sync.Once
	frameworkLogger *slog.Logger
	frameworkLevel  = &slog.LevelVar{}
)

// SetLogPath sets the full path of the log file, including the file
// name. Parent directories are created as needed. Must be called
// before the first logger is handed out; after that the sink is
// latched.
func SetLogPath(path string) {
	logPath = path
}

// sink returns the shared log destination: stdout mirrored into the
// log file. Falls back to stdout alone when the file cannot be opened.
func sink() io.Writer {
	sinkOnce.Do(func() {
		target := logPath
		if target == "" {
			target = filepath.Join("logs", "app.log")
		}
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			logSink = os.Stdout
			return
		}
		file, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logSink = os.Stdout
			return
		}
		logFile = file
		logSink = io.MultiWriter(os.Stdout, file)
	})
	return logSink
}

func newJSONLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(sink(), &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	appOnce.Do(func() {
		appLogger = newJSONLogger(appLevel)
	})
	return appLogger
}

// GetInternalLogger returns the framework's own logger. It is kept
// separate from the application logger so its level can stay quiet
// while the application logs verbosely, and vice versa.
func GetInternalLogger() *slog.Logger {
	frameworkOnce.Do(func() {
		frameworkLogger = newJSONLogger(frameworkLevel)
	})
	return frameworkLogger
}

// SetLogLevel adjusts the application logger's level at runtime.
func SetLogLevel(level slog.Level) {
	appLevel.Set(level)
}

// SetInternalLogLevel adjusts the framework logger's level at runtime.
func SetInternalLogLevel(level slog.Level) {
	frameworkLevel.Set(level)
}

// SetRawLogLevel parses a level name ("debug", "info", "warn",
// "error") and applies it to the application logger. Unknown names
// fall back to info.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level
	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	SetLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
