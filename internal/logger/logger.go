package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New builds the application logger: JSON output in production and staging,
// colored text elsewhere.
func New(logLevel string, environment string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch strings.ToLower(environment) {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}
