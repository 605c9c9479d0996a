package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields carries structured key/value context for a log line.
type Fields map[string]any

type Logger struct {
	logger *logrus.Logger
}

// New returns a logger writing to out at the given level ("debug", "info", ...). With json set, lines are emitted as
// JSON objects instead of logfmt-style text.
func New(out io.Writer, level string, json bool) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return &Logger{logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Logger{logger}
}

func (l *Logger) Trace(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Trace(msg)
}

func (l *Logger) Debug(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (l *Logger) Info(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Info(msg)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (l *Logger) Error(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Error(msg)
}

func (l *Logger) Critical(msg string, fields Fields) {
	l.logger.WithFields(logrus.Fields(fields)).Error("CRITICAL: " + msg)
}

// With returns a logger that adds fields to every line.
func (l *Logger) With(fields Fields) *Entry {
	return &Entry{l.logger.WithFields(logrus.Fields(fields))}
}

// Entry is a Logger with preset fields.
type Entry struct {
	entry *logrus.Entry
}

func (e *Entry) Debug(msg string, fields Fields) {
	e.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

func (e *Entry) Info(msg string, fields Fields) {
	e.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

func (e *Entry) Warn(msg string, fields Fields) {
	e.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

func (e *Entry) Error(msg string, fields Fields) {
	e.entry.WithFields(logrus.Fields(fields)).Error(msg)
}
