package log

import (
	"github.com/sirupsen/logrus"
)

var currLevel = LevelInfo

var rootLogger = &logrusLogger{
	backend: logrus.New(),
}

// SetLevel sets the process-wide log level.
func SetLevel(level Level) {
	currLevel = level

	var backendLevel logrus.Level
	switch level {
	case LevelTrace:
		backendLevel = logrus.TraceLevel
	case LevelDebug:
		backendLevel = logrus.DebugLevel
	case LevelInfo:
		backendLevel = logrus.InfoLevel
	case LevelWarn:
		backendLevel = logrus.WarnLevel
	case LevelError:
		backendLevel = logrus.ErrorLevel
	case LevelFatal:
		backendLevel = logrus.PanicLevel
	}
	rootLogger.backend.(*logrus.Logger).SetLevel(backendLevel)
}

type logrusLogger struct {
	backend logrus.FieldLogger
}

var _ Logger = (*logrusLogger)(nil)

func (l *logrusLogger) Trace(msg string, fields ...interface{}) {
	if l.isEnabled(LevelTrace) {
		l.withFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	if l.isEnabled(LevelDebug) {
		l.withFields(fields).Debug(msg)
	}
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	if l.isEnabled(LevelInfo) {
		l.withFields(fields).Info(msg)
	}
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	if l.isEnabled(LevelWarn) {
		l.withFields(fields).Warn(msg)
	}
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	if l.isEnabled(LevelError) {
		l.withFields(fields).Error(msg)
	}
}

func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	if l.isEnabled(LevelFatal) {
		l.withFields(fields).Fatal(msg)
	}
}

func (l *logrusLogger) Sub(fields ...interface{}) Logger {
	return &logrusLogger{
		backend: l.withFields(fields),
	}
}

func (l *logrusLogger) isEnabled(level Level) bool {
	return level >= currLevel
}

func (l *logrusLogger) withFields(fields []interface{}) logrus.FieldLogger {
	if len(fields) == 0 {
		return l.backend
	}
	if len(fields)%2 != 0 {
		panic("must specify fields as key/value tuples")
	}

	out := make(logrus.Fields, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		k, ok := fields[i].(string)
		if !ok {
			panic("field keys must be strings")
		}
		out[k] = fields[i+1]
	}
	return l.backend.WithFields(out)
}
