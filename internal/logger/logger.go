// Package logger configures the process-wide logrus logger used by the CLI.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the CLI logger. It is nil until Init runs.
var Log *logrus.Logger

// Config selects the level, formatter and sink of a logger.
type Config struct {
	// Level is a logrus level name; unknown or empty means "info".
	Level string
	// Format is "json" or anything else for text.
	Format string
	// Out defaults to os.Stdout.
	Out io.Writer
}

// FromEnv reads LOG_LEVEL and LOG_FORMAT.
func FromEnv() Config {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	return Config{Level: level, Format: os.Getenv("LOG_FORMAT")}
}

// New builds a logger from cfg.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	l.SetOutput(cfg.Out)

	return l
}

// Init sets Log from the environment. Call it once from main.
func Init() *logrus.Logger {
	Log = New(FromEnv())
	return Log
}
