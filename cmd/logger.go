package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// setupLogger creates a logger with the specified configuration.
// The returned closer releases the log file, if one was opened.
func setupLogger(logFile, logLevel string) (zerolog.Logger, io.Closer) {
	// Parse log level, keeping interactive output clean by default
	level := zerolog.WarnLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if logFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		logger := zerolog.New(rotator).
			Level(level).
			With().
			Timestamp().
			Logger()
		return logger, rotator
	}

	// Pretty console output when logging to stderr
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, nopCloser{}
}

// zerologAdapter exposes a zerolog logger as a spotify.Logger
type zerologAdapter struct {
	logger zerolog.Logger
}

func (a zerologAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Debug().Msg(fmt.Sprintf(format, args...))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
