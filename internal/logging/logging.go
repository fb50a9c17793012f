// Package logging builds the debug-log entry that cmd/tig writes
// fatal and known startup/run errors to. Recoverable errors are
// surfaced on the status line only and are not logged here.
// Grounded on pkg/log/log.go's
// dev/prod logger split, selected by a Debug flag rather than
// interactively toggled.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New returns a *logrus.Entry: a development logger (JSON formatter,
// a development.log file under logDir, level from LOG_LEVEL) when
// debug is true, or a quiet, error-level, discard-output production
// logger otherwise. version/commit are attached as fields the way
// the teacher's NewLogger tags every entry with build info.
func New(debug bool, logDir, version, commit string) *logrus.Entry {
	var log *logrus.Logger
	if debug {
		log = newDevelopmentLogger(logDir)
	} else {
		log = newProductionLogger()
	}
	log.Formatter = &logrus.JSONFormatter{}

	return log.WithFields(logrus.Fields{
		"debug":   debug,
		"version": version,
		"commit":  commit,
	})
}

func level() logrus.Level {
	lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.DebugLevel
	}
	return lvl
}

func newDevelopmentLogger(logDir string) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(level())
	if logDir == "" {
		log.Out = io.Discard
		return log
	}
	file, err := os.OpenFile(filepath.Join(logDir, "development.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Out = io.Discard
		return log
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	log.SetLevel(logrus.ErrorLevel)
	return log
}
