package mcpadapt

import "github.com/sirupsen/logrus"

// Logger is the diagnostic logging capability injected into the loader and
// invoker. keyvals are alternating keys and values.
type Logger interface {
	Info(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// NopLogger returns a Logger that discards everything. It is the default
// when no logger is injected.
func NopLogger() Logger { return nopLogger{} }

type logrusLogger struct {
	l logrus.FieldLogger
}

// NewLogrusLogger adapts a logrus logger (or entry) to the Logger capability.
func NewLogrusLogger(l logrus.FieldLogger) Logger {
	if l == nil {
		return NopLogger()
	}
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Info(msg string, keyvals ...any) {
	g.l.WithFields(fields(keyvals)).Info(msg)
}

func (g *logrusLogger) Error(msg string, keyvals ...any) {
	g.l.WithFields(fields(keyvals)).Error(msg)
}

func fields(keyvals []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keyvals); i += 2 {
		k, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		f[k] = keyvals[i+1]
	}
	return f
}
