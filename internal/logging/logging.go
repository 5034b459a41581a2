// Package logging configures logrus for the graph commands.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/graph/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSize    = 2
	defaultMaxBackups = 30
)

// Setup configures the standard logrus logger. Entries go to stderr when
// cfg.Console is set and to a rotated file when cfg.File is not empty.
// The returned closer releases the log file.
func Setup(cfg config.Logging) (io.Closer, error) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	var (
		writers []io.Writer
		closer  io.Closer = nopCloser{}
	)
	if cfg.Console || cfg.File == "" {
		writers = append(writers, os.Stderr)
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, err
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}
		if lj.MaxSize <= 0 {
			lj.MaxSize = defaultMaxSize
		}
		if lj.MaxBackups <= 0 {
			lj.MaxBackups = defaultMaxBackups
		}
		writers = append(writers, lj)
		closer = lj
	}
	logrus.SetOutput(io.MultiWriter(writers...))
	if err != nil {
		logrus.WithError(err).Warnf("invalid log level %q, defaulting to info", cfg.Level)
	}
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
