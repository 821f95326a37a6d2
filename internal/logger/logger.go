package logger

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// Init initializes the structured logger. Level falls back to LOG_LEVEL
// and then to a mode-appropriate default; production output is JSON.
func Init(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stderr)

	Logger = log
	return log
}

// Get returns the global logger, initializing a default one if needed.
func Get() *logrus.Logger {
	if Logger == nil {
		return Init("info", false)
	}
	return Logger
}

// WithComponent creates a logger entry scoped to one component.
func WithComponent(component string) *logrus.Entry {
	return Get().WithField("component", component)
}

// WithRun creates a logger entry carrying a fresh run ID, so all lines
// from one invocation correlate.
func WithRun(command string) *logrus.Entry {
	return Get().WithFields(logrus.Fields{
		"command": command,
		"run_id":  uuid.New().String(),
	})
}
