package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup returns the application logger. JSON to stdout so log collectors
// can pick fields apart.
func Setup() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}
