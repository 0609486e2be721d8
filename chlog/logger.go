// Package chlog provides the minimal diagnostic-logging hook used by the
// registry. It is never on the hot encode/decode path — only on registry
// lookup misses a caller may want visibility into.
package chlog

// Logger is the interface components outside the hot path log through.
// Satisfied by a no-op (the default) or by an adapter a caller writes
// around their own logging library.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

// noop discards everything. It is the package-level default so that a
// caller who never configures a Logger pays nothing for logging.
type noop struct{}

func (noop) Debugf(string, ...any) {}
func (noop) Warnf(string, ...any)  {}

// Noop returns the shared no-op Logger instance.
func Noop() Logger { return noopInstance }

var noopInstance Logger = noop{}

// Funcs adapts two plain functions into a Logger, for callers who don't
// want to define a named type just to satisfy the interface.
type Funcs struct {
	Debug func(string, ...any)
	Warn  func(string, ...any)
}

func (f Funcs) Debugf(format string, args ...any) {
	if f.Debug != nil {
		f.Debug(format, args...)
	}
}

func (f Funcs) Warnf(format string, args ...any) {
	if f.Warn != nil {
		f.Warn(format, args...)
	}
}
