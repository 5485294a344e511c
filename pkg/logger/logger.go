package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

// Logger wraps a logrus logger so callers keep the Printf/Errorf/Debugf API.
type Logger struct {
	*logrus.Logger
}

// Global logger instance. It is usable before InitLogger is called.
var GlobalLogger = New(os.Stdout, "info", "console")
var once sync.Once

// New builds a logger writing to output at the given level. Format is
// "json" or "console".
func New(output io.Writer, level, format string) *Logger {
	if output == nil {
		output = os.Stdout
	}

	l := logrus.New()
	l.SetOutput(output)
	l.SetLevel(parseLevel(level))

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&ConsoleFormatter{})
	}

	return &Logger{Logger: l}
}

// InitLogger replaces the global logger once per process.
func InitLogger(output io.Writer, level, format string) {
	once.Do(func() {
		GlobalLogger = New(output, level, format)
	})
}

// WithComponent returns an entry tagged with the component name.
func (l *Logger) WithComponent(name string) *logrus.Entry {
	return l.WithField("component", name)
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
