// Package logging builds the process logger: a zap core exposed through the
// logr interface, so callers log with logger.V(logging.DEBUG).Info(...).
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logger.V(...). logr V(n) maps to zap level -n.
const (
	DEBUG = 1
	TRACE = 2
)

// Level names accepted by ParseLevel.
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
	LevelDebug = "debug"
	LevelTrace = "trace"
)

// ParseLevel maps a level name to the zap level that enables it.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LevelError:
		return zapcore.ErrorLevel, nil
	case LevelWarn:
		return zapcore.WarnLevel, nil
	case LevelInfo, "":
		return zapcore.InfoLevel, nil
	case LevelDebug:
		return zapcore.Level(-DEBUG), nil
	case LevelTrace:
		return zapcore.Level(-TRACE), nil
	}

	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
}

// NewLogger returns a console logger writing to w at the named level.
func NewLogger(level string, w io.Writer) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)

	return zapr.NewLogger(zap.New(core)), nil
}

// NewTestLogger returns a trace-level logger on w for test suites.
func NewTestLogger(w io.Writer) logr.Logger {
	l, _ := NewLogger(LevelTrace, w)
	return l
}
