// Package log provides leveled, structured logging for the toolkit,
// backed by logrus.
package log

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelFatal: "fatal",
}

func NewLevel(name string) (Level, error) {
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return LevelTrace, errors.Errorf("invalid log level %q", name)
}

func (l Level) String() string {
	n, ok := levelNames[l]
	if !ok {
		panic("invalid level")
	}
	return n
}

// Logger logs a message with optional key/value field pairs. Sub returns
// a child logger carrying additional fields.
type Logger interface {
	Trace(string, ...interface{})
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

// WithModule returns a logger tagged with the given module name.
func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}

func init() {
	// set log level to trace by default in test
	if strings.HasSuffix(os.Args[0], ".test") {
		SetLevel(LevelTrace)
	}
}
