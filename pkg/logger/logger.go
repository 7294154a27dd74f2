package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikmy/dbconn/pkg/environment"
	"github.com/nikmy/dbconn/pkg/errors"
)

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Panicf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)
	Panic(err error)
}

func New(env environment.Env) (Logger, error) {
	var logger *zap.Logger
	var err error

	switch env {
	case environment.Production:
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return FromZap(logger), nil
}

func FromZap(logger *zap.Logger) Logger {
	return &wrapper{base: logger.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) enabled(lvl zapcore.Level) bool {
	return w.base.Desugar().Core().Enabled(lvl)
}

// err may be nil after errors.WrapFail of a successful call
func (w *wrapper) logErr(lvl zapcore.Level, err error) {
	if err == nil || !w.enabled(lvl) {
		return
	}
	w.logf(lvl, "%s", err)
}

func (w *wrapper) logf(lvl zapcore.Level, format string, args ...any) {
	if !w.enabled(lvl) {
		return
	}

	switch lvl {
	case zapcore.DebugLevel:
		w.base.Debugf(format, args...)
	case zapcore.InfoLevel:
		w.base.Infof(format, args...)
	case zapcore.WarnLevel:
		w.base.Warnf(format, args...)
	case zapcore.ErrorLevel:
		w.base.Errorf(format, args...)
	case zapcore.PanicLevel:
		defer func() { _ = w.base.Sync() }()
		w.base.Panicf(format, args...)
	}
	_ = w.base.Sync()
}

func (w *wrapper) Debug(err error) { w.logErr(zapcore.DebugLevel, err) }
func (w *wrapper) Info(err error)  { w.logErr(zapcore.InfoLevel, err) }
func (w *wrapper) Warn(err error)  { w.logErr(zapcore.WarnLevel, err) }
func (w *wrapper) Error(err error) { w.logErr(zapcore.ErrorLevel, err) }
func (w *wrapper) Panic(err error) { w.logErr(zapcore.PanicLevel, err) }

func (w *wrapper) Debugf(format string, args ...any) { w.logf(zapcore.DebugLevel, format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.logf(zapcore.InfoLevel, format, args...) }
func (w *wrapper) Warnf(format string, args ...any)  { w.logf(zapcore.WarnLevel, format, args...) }
func (w *wrapper) Errorf(format string, args ...any) { w.logf(zapcore.ErrorLevel, format, args...) }
func (w *wrapper) Panicf(format string, args ...any) { w.logf(zapcore.PanicLevel, format, args...) }
