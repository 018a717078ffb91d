// Package badgerlog adapts a standard library logger to badger's leveled
// logger interface. Levels double as flag and environment values, so the
// verbosity of the preference store can be configured from the command line.
package badgerlog

import (
	"fmt"
	"log"
	"strings"
)

// Level is the most verbose level that is still logged.
type Level uint8

const (
	NoLogging Level = iota
	ErrorLevel
	WarningLevel
	InfoLevel
	DebugLevel
)

var levelNames = [...]string{
	NoLogging:    "none",
	ErrorLevel:   "error",
	WarningLevel: "warning",
	InfoLevel:    "info",
	DebugLevel:   "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel parses a level name case-insensitively. "off" is an alias of
// "none" and "warn" of "warning".
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "off":
		return NoLogging, nil
	case "warn":
		return WarningLevel, nil
	}

	for l, n := range levelNames {
		if n == name {
			return Level(l), nil
		}
	}

	return WarningLevel, fmt.Errorf("unknown log level %q", name)
}

// Set implements flag.Value.
func (l *Level) Set(name string) error {
	v, err := ParseLevel(name)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// EnvDecode lets go-envconfig decode a level from the environment.
func (l *Level) EnvDecode(name string) error {
	return l.Set(name)
}

// Logger prints badger's messages through a *log.Logger, dropping those more
// verbose than its level.
type Logger struct {
	*log.Logger
	level  Level
	prefix string
}

// NewLogger creates a logger. Every line is prefixed with the component name,
// e.g. "prefs: badger: warning: ...".
func NewLogger(l *log.Logger, component string, level Level) *Logger {
	prefix := "badger: "
	if component != "" {
		prefix = component + ": " + prefix
	}

	return &Logger{
		Logger: l,
		level:  level,
		prefix: prefix,
	}
}

func (l *Logger) Errorf(format string, args ...interface{})   { l.logf(ErrorLevel, format, args) }
func (l *Logger) Warningf(format string, args ...interface{}) { l.logf(WarningLevel, format, args) }
func (l *Logger) Infof(format string, args ...interface{})    { l.logf(InfoLevel, format, args) }
func (l *Logger) Debugf(format string, args ...interface{})   { l.logf(DebugLevel, format, args) }

func (l *Logger) logf(level Level, format string, args []interface{}) {
	if l.level < level {
		return
	}

	// Badger terminates most of its messages with a newline already.
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	l.Print(l.prefix + level.String() + ": " + msg)
}
