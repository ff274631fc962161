// Package log is a small leveled logger over the standard library logger.
// Each line carries its level and, for named loggers, the component that
// wrote it: "INFO engine: resized to 800x450".
package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

var levelNames = [...]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// LevelFromString maps a -log-level value to a Level. WARN folds into INFO
// and anything unrecognised means INFO.
func LevelFromString(s string) Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "WARN":
		return LevelInfo
	case "OFF":
		return LevelNone
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l)
		}
	}
	return LevelInfo
}

type Logger struct {
	out   *log.Logger
	level Level
	name  string
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{out: log.New(out, "", log.LstdFlags), level: level}
}

// Discard drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelNone)
}

// Named returns a logger that shares l's output and level and tags every
// line with component.
func (l *Logger) Named(component string) *Logger {
	c := *l
	if c.name != "" {
		component = c.name + "/" + component
	}
	c.name = component
	return &c
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level != LevelNone && l.level <= level
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.logf(LevelInfo, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) logf(level Level, format string, v ...interface{}) {
	if !l.Enabled(level) {
		return
	}
	prefix := level.String() + " "
	if l.name != "" {
		prefix += l.name + ": "
	}
	l.out.Printf(prefix+format, v...)
}
