package log

import (
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

// PkgKey is the field every component logger is tagged with.
const PkgKey = "pkg"

// Logger abstruct interface for internal logging
type Logger interface {
	Error(msgs ...interface{})
	Warn(msgs ...interface{})
	Info(msgs ...interface{})
	Infof(s string, msgs ...interface{})
	Debug(msgs ...interface{})
	Trace(msgs ...interface{})
	Tracef(s string, msgs ...interface{})
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields logrus.Fields) Logger
	// Pkg tags the logger with the component name.
	Pkg(name string) Logger
}

type Config struct {
	Level    logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs bool         `envconfig:"LOG_TO_ECS" default:"false"`
}

type logger struct {
	log *logrus.Entry
}

func (l *logger) Warn(msgs ...interface{}) {
	l.log.Warn(msgs...)
}

func (l *logger) Tracef(s string, msgs ...interface{}) {
	l.log.Tracef(s, msgs...)
}

func (l *logger) Infof(s string, msgs ...interface{}) {
	l.log.Infof(s, msgs...)
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return NewLoggerFromEntry(l.log.WithField(key, value))
}

func (l *logger) WithFields(fields logrus.Fields) Logger {
	return NewLoggerFromEntry(l.log.WithFields(fields))
}

func (l *logger) Pkg(name string) Logger {
	return l.WithField(PkgKey, name)
}

func (l *logger) WithError(err error) Logger {
	return NewLoggerFromEntry(l.log.WithError(err))
}

func (l *logger) Error(msgs ...interface{}) {
	l.log.Error(msgs...)
}

func (l *logger) Info(msgs ...interface{}) {
	l.log.Info(msgs...)
}

func (l *logger) Debug(msgs ...interface{}) {
	l.log.Debug(msgs...)
}

func (l *logger) Trace(msgs ...interface{}) {
	l.log.Trace(msgs...)
}

// New builds a logrus logger from cfg: nested text output by default, ECS
// json when LogToEcs is set.
func New(cfg Config) Logger {
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.Level)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{PkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	return NewLogger(logrusLogger)
}

// NewLogger construct Logger from logrus.Logger
func NewLogger(log *logrus.Logger) Logger {
	return &logger{log: logrus.NewEntry(log)}
}

// NewLoggerFromEntry construct Logger from logrus.Entry
func NewLoggerFromEntry(log *logrus.Entry) Logger {
	return &logger{log: log}
}
