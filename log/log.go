// Package log is a thin facade over logrus that writes to a dated file when logging is enabled.
//
// Nothing is ever written to stdout: the JSON envelope owns it.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/key"
	"github.com/instantsaver/instantsaver/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	enabled bool
	logger  = logrus.New()
)

// Setup opens the log file and applies formatter and level from configuration.
// When logs.write is false every call below is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

func configure(out io.Writer) {
	logger.SetOutput(out)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// WithField returns an entry carrying a single structured field.
func WithField(k string, v any) *logrus.Entry {
	if !enabled {
		return logrus.NewEntry(discard)
	}
	return logger.WithField(k, v)
}

var discard = &logrus.Logger{Out: io.Discard, Formatter: new(logrus.TextFormatter), Level: logrus.PanicLevel, Hooks: make(logrus.LevelHooks)}

// Leveled emitters forward to the file logger and do nothing when logging is off.

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
