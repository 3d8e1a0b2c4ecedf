// Package logger builds the logrus logger shared by the catalog components.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"catalog/internal/config"
)

const (
	formatJSON = "json"
	formatText = "text"
)

// New creates a logger writing to w (stdout when nil).
// JSON lines carry ts, level and msg keys; text output is meant for local development.
func New(cfg config.LogConfig, environment string, w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stdout
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		if environment == "production" {
			format = formatJSON
		} else {
			format = formatText
		}
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(ParseLevel(cfg.Level))

	if format == formatJSON {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
				logrus.FieldKeyMsg:  "msg",
			},
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
		})
	}

	return log
}

// ParseLevel converts a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
