// Package logging adapts go-kit loggers to the printf-style Logger used by
// the library packages.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Levels accepted by New.
var Levels = []string{"debug", "info", "warn", "error", "none"}

// Logger writes logfmt lines through a go-kit logger.
type Logger struct {
	kit log.Logger
}

// New returns a logfmt logger on w filtered to lvl. Unknown levels are an
// error.
func New(w io.Writer, lvl string) (*Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}
	kit := log.NewLogfmtLogger(log.NewSyncWriter(w))
	kit = level.NewFilter(kit, opt)
	kit = log.With(kit, "ts", log.DefaultTimestampUTC)
	return &Logger{kit: kit}, nil
}

func (l *Logger) Debugf(format string, args ...any) {
	level.Debug(l.kit).Log("msg", fmt.Sprintf(format, args...))
}

func (l *Logger) Infof(format string, args ...any) {
	level.Info(l.kit).Log("msg", fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	level.Warn(l.kit).Log("msg", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	level.Error(l.kit).Log("msg", fmt.Sprintf(format, args...))
}

// ValidLevel reports whether lvl is one of Levels.
func ValidLevel(lvl string) bool {
	_, err := levelOption(lvl)
	return err == nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none", "off":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q (want one of %s)", lvl, strings.Join(Levels, ", "))
	}
}
