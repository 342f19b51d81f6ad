package kernel

// log.go wires go.uber.org/zap into the kernel, following the teacher's
// Voskan-arena-cache/pkg/config.go WithLogger option. Component.Execute logs
// a functor error once at Warn level, and each scheduler logs one Debug line
// per completed Step; Collect and Expose never log, and the executor pool
// does not log. The default logger is a no-op (nopLogger), so a caller who
// does not opt in pays nothing.
//
// © 2025 flowkernel authors. MIT License.

import "go.uber.org/zap"

// logger is the minimal surface the kernel needs from *zap.Logger, kept as
// an interface so tests can substitute a recording logger without pulling
// in zaptest.
type logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
}

// zapLogger adapts *zap.SugaredLogger to the logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugw(msg string, kv ...interface{}) { z.s.Debugw(msg, kv...) }
func (z zapLogger) Warnw(msg string, kv ...interface{})  { z.s.Warnw(msg, kv...) }

// NewZapLogger adapts an existing *zap.Logger for use with WithComponentLogger,
// WithExecutorLogger and WithSchedulerLogger.
func NewZapLogger(l *zap.Logger) logger {
	if l == nil {
		l = zap.NewNop()
	}
	return zapLogger{s: l.Sugar()}
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}
func (nopLogger) Warnw(string, ...interface{})  {}
