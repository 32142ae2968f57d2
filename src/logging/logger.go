// Package logging provides the leveled logger handed to every stage of a run.
// A Logger is built once by the entrypoint and passed down explicitly; there is no
// process-wide instance.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levelNames = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// ParseLevel maps a level name (debug, info, warn/warning, error) to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// Logger is a leveled printf-style logger backed by zap.
type Logger struct {
	level zap.AtomicLevel
	base  *zap.Logger
}

// New builds a console logger writing to w at the given level.
// An unknown level name falls back to info.
func New(level string, w io.Writer) *Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:          "ts",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000000"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: " ",
	}
	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	l := &Logger{level: lvl, base: zap.New(core)}
	l.SetLevel(level)
	return l
}

// NewWithCore wraps an existing zap core. The core still sees only records that pass
// the logger's own level.
func NewWithCore(core zapcore.Core, level string) *Logger {
	l := &Logger{level: zap.NewAtomicLevelAt(zapcore.InfoLevel), base: zap.New(core)}
	l.SetLevel(level)
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{level: zap.NewAtomicLevelAt(zapcore.FatalLevel), base: zap.NewNop()}
}

// SetLevel parses and sets the level; unknown names leave it unchanged.
func (l *Logger) SetLevel(s string) {
	lvl, err := ParseLevel(s)
	if err != nil {
		return
	}
	l.level.SetLevel(lvl)
}

// Level returns the current level.
func (l *Logger) Level() zapcore.Level { return l.level.Level() }

// DebugEnabled reports whether debug records are emitted, for callers that want to skip
// building expensive debug output.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.level.Enabled(zapcore.DebugLevel)
}

func (l *Logger) logf(lvl zapcore.Level, format string, args ...interface{}) {
	if l == nil || !l.level.Enabled(lvl) {
		return
	}
	// Plain messages skip fmt so a literal % is not turned into %!x(MISSING).
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if ce := l.base.Check(lvl, msg); ce != nil {
		ce.Write()
	}
}

func (l *Logger) Debugf(format string, a ...interface{}) { l.logf(zapcore.DebugLevel, format, a...) }
func (l *Logger) Infof(format string, a ...interface{})  { l.logf(zapcore.InfoLevel, format, a...) }
func (l *Logger) Warnf(format string, a ...interface{})  { l.logf(zapcore.WarnLevel, format, a...) }
func (l *Logger) Errorf(format string, a ...interface{}) { l.logf(zapcore.ErrorLevel, format, a...) }

// TimeTrack logs the duration of a phase at debug.
func (l *Logger) TimeTrack(start time.Time, label string) {
	l.Debugf("%s took %s", label, time.Since(start))
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.base.Sync()
}
