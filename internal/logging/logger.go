// Package logging builds the lvsearch command logger.
// Logs go to stderr so that search results on stdout stay pipeable.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// TimeFormat is the timestamp layout of text logs.
const TimeFormat = "2006-01-02 15:04:05"

// New returns a text logger writing to w at the named level
// ("debug", "info", "warn", ...).
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  TimeFormat,
		DisableColors:    true,
		QuoteEmptyFields: true,
	})

	return l, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
