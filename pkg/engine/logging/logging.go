// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes warnings and above to stderr until Setup runs.
var Log = newLogger(os.Stderr, logrus.WarnLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Setup configures Log. When file is non-empty logs are appended to it,
// which keeps the terminal renderer's screen clean. The returned closer
// releases the file and must be called on exit.
func Setup(level, file string) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}

	Log.SetOutput(out)
	Log.SetLevel(lvl)
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
