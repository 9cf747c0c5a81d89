package sort_suite

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return logger
}

// SetLogger replaces the package logger. Harnesses built afterwards log to l.
func SetLogger(l *logrus.Logger) {
	logger = l
}

// SetLogLevel parses level ("debug", "info", ...) onto the package logger.
func SetLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	return nil
}
