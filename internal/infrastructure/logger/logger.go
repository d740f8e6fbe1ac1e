// Package logger builds the structured logger shared by the loaders and the
// scene runtime.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logger configured from LOG_LEVEL (default "info") and
// LOG_FORMAT ("json" or "text", default "text").
func New() *logrus.Logger {
	return NewWithOptions(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// NewWithOptions creates a logger with an explicit level, format and sink.
// Unknown levels fall back to info.
func NewWithOptions(levelName, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)
	return log
}
