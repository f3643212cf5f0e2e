package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер с уровнем из конфига. Незнакомый или пустой
// level молча откатывается к info. На уровне debug JSON заменяется
// человекочитаемым текстовым форматом.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	if parsed >= logrus.DebugLevel {
		l.SetFormatter(new(logrus.TextFormatter))
	}

	return l
}
