package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

const consoleTimeLayout = "2006/01/02 15:04:05"

// ConsoleFormatter renders entries as "LEVEL: time message key=value ...".
type ConsoleFormatter struct{}

var levelColors = map[logrus.Level]*color.Color{
	logrus.DebugLevel: color.New(color.FgBlue),
	logrus.InfoLevel:  color.New(color.FgGreen),
	logrus.WarnLevel:  color.New(color.FgYellow),
	logrus.ErrorLevel: color.New(color.FgRed),
	logrus.FatalLevel: color.New(color.FgRed, color.Bold),
	logrus.PanicLevel: color.New(color.FgRed, color.Bold),
}

// Format implements logrus.Formatter.
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	label := strings.ToUpper(entry.Level.String()) + ":"
	if c, ok := levelColors[entry.Level]; ok {
		label = c.Sprint(label)
	}

	b.WriteString(label)
	b.WriteByte(' ')
	b.WriteString(entry.Time.Format(consoleTimeLayout))
	b.WriteByte(' ')
	b.WriteString(strings.TrimRight(entry.Message, "\n"))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
