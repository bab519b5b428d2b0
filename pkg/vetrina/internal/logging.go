package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/vetrina/pkg/vetrina/constants"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	logSink   io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created as needed. When empty, the VETRINA_LOG
// environment variable is consulted, then logs/vetrina.log. Call before
// the first logger use.
func SetLogPath(path string) {
	logPath = path
}

func setup() {
	setupOnce.Do(func() {
		target := logPath
		if target == "" {
			target = os.Getenv(constants.LogPathEnvVar)
		}
		if target == "" {
			target = filepath.Join("logs", "vetrina.log")
		}

		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			logSink = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			logSink = os.Stdout
			return
		}

		logSink = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger. Applications embedding vetrina
// log through this one.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}

		setup()

		logger = slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetInternalLogger returns the logger the shell itself uses. It has its
// own level so shell tracing can be raised without drowning application
// logs.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}

		setup()

		internalLogger = slog.New(slog.NewJSONHandler(logSink, &slog.HandlerOptions{
			Level: internalLevelVar,
		}))
	})
	return internalLogger
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetInternalLogLevel sets the minimum level for the shell logger.
func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// SetRawLogLevel parses a level name ("debug", "info", "warn", "error")
// and applies it to the application logger. Unknown names mean info.
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
	}
}
