// Package logging configures the process-wide slog loggers: a structured
// JSON logger on stdout, a human-readable text logger on stderr, and
// optional rotating file loggers for individual services.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	structuredLogger    *slog.Logger
	humanReadableLogger *slog.Logger
	levelVar            = new(slog.LevelVar)
)

// Rotation policies for file loggers.
const (
	RotationDaily  = "daily"
	RotationWeekly = "weekly"
	RotationSize   = "size"
)

func handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{Level: levelVar}
}

// Init initializes the logging system. Safe to call more than once; the
// last call wins.
func Init(debug bool) {
	if debug {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}

	structuredLogger = slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions()))
	humanReadableLogger = slog.New(slog.NewTextHandler(os.Stderr, handlerOptions()))

	slog.SetDefault(structuredLogger)
}

// SetLevel adjusts the minimum level of both loggers at runtime.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

// SetOutput redirects logger output, primarily for tests.
func SetOutput(structuredOutput, humanReadableOutput io.Writer) {
	structuredLogger = slog.New(slog.NewJSONHandler(structuredOutput, handlerOptions()))
	humanReadableLogger = slog.New(slog.NewTextHandler(humanReadableOutput, handlerOptions()))
	slog.SetDefault(structuredLogger)
}

// Structured returns the global structured (JSON) logger, or the slog
// default if Init has not been called.
func Structured() *slog.Logger {
	if structuredLogger == nil {
		return slog.Default()
	}
	return structuredLogger
}

// HumanReadable returns the global human-readable (text) logger.
func HumanReadable() *slog.Logger {
	if humanReadableLogger == nil {
		return slog.Default()
	}
	return humanReadableLogger
}

// ForService returns a logger with the 'service' attribute attached.
func ForService(serviceName string) *slog.Logger {
	return Structured().With("service", serviceName)
}

// FileConfig holds rotation settings for file loggers.
type FileConfig struct {
	// Rotation is one of RotationDaily, RotationWeekly or RotationSize.
	Rotation string
	// MaxSizeMB applies when Rotation is RotationSize.
	MaxSizeMB int
}

// NewFileLogger creates a slog.Logger writing JSON to the given file with
// lumberjack rotation. It returns the logger and a close function for the
// underlying writer.
func NewFileLogger(filePath, serviceName string, cfg *FileConfig) (*slog.Logger, func() error, error) {
	logDir := filepath.Dir(filePath)
	if logDir != "." {
		// lumberjack does not create directories
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}
	}

	logWriter := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}

	if cfg != nil {
		switch cfg.Rotation {
		case RotationDaily:
			logWriter.MaxAge = 1
			logWriter.MaxBackups = 30
		case RotationWeekly:
			logWriter.MaxAge = 7
			logWriter.MaxBackups = 4
		case RotationSize, "":
			if cfg.MaxSizeMB > 0 {
				logWriter.MaxSize = cfg.MaxSizeMB
			}
		default:
			slog.Warn("unknown log rotation type, using size-based defaults",
				"configured_type", cfg.Rotation)
		}
	}

	logger := slog.New(slog.NewJSONHandler(logWriter, handlerOptions())).
		With("service", serviceName)

	return logger, logWriter.Close, nil
}
