package chlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop_DoesNotPanic(t *testing.T) {
	l := Noop()
	assert.NotPanics(t, func() {
		l.Debugf("value=%d", 1)
		l.Warnf("missing %s", "type")
	})
}

func TestFuncs_InvokesProvidedCallbacks(t *testing.T) {
	var gotDebug, gotWarn string

	l := Funcs{
		Debug: func(format string, args ...any) { gotDebug = format },
		Warn:  func(format string, args ...any) { gotWarn = format },
	}

	l.Debugf("debug message")
	l.Warnf("warn message")

	assert.Equal(t, "debug message", gotDebug)
	assert.Equal(t, "warn message", gotWarn)
}

func TestFuncs_NilCallbacksAreSafe(t *testing.T) {
	l := Funcs{}
	assert.NotPanics(t, func() {
		l.Debugf("x")
		l.Warnf("y")
	})
}
