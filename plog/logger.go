package plog

import "go.uber.org/zap"

// Logger wraps *zap.Logger so a nil *Logger is always safe to call: a
// planner.Queue or emit.Emitter built without an explicit logger gets a
// silent no-op rather than a crash on the first Debugw call.
type Logger struct {
	z *zap.SugaredLogger
}

// New wraps an existing *zap.Logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		return nil
	}
	return &Logger{z: z.Sugar()}
}

// NewNop returns a Logger that discards everything, for tests and callers
// that don't care about diagnostics.
func NewNop() *Logger {
	return New(zap.NewNop())
}

// OrNop returns l, or a no-op Logger if l is nil. Call this once at
// construction so the rest of a type's methods can call Debugw/Infow/
// Warnw unconditionally.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return NewNop()
	}
	return l
}

// Debugw logs msg at debug level with alternating key/value pairs.
func (l *Logger) Debugw(msg string, kv ...interface{}) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debugw(msg, kv...)
}

// Infow logs msg at info level with alternating key/value pairs.
func (l *Logger) Infow(msg string, kv ...interface{}) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Infow(msg, kv...)
}

// Warnw logs msg at warn level with alternating key/value pairs.
func (l *Logger) Warnw(msg string, kv ...interface{}) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Warnw(msg, kv...)
}
