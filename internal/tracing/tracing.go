// Package tracing connects this module to the schuko tracing framework.
// All packages of the module trace to a single tracer, selected by key
// "graphemes". Tests redirect it to the test log with SetTestingLog.
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer returns the tracer this module logs to.
func Tracer() tracing.Trace {
	return tracing.Select("graphemes")
}

// Debugf traces at debug level.
func Debugf(format string, args ...interface{}) {
	Tracer().Debugf(format, args...)
}

// Infof traces at info level.
func Infof(format string, args ...interface{}) {
	Tracer().Infof(format, args...)
}

// Errorf traces at error level.
func Errorf(format string, args ...interface{}) {
	Tracer().Errorf(format, args...)
}

// P adds a field to a trace message, as in
//
//	tracing.P("class", c).Debugf("no boundary")
func P(key string, val interface{}) tracing.Trace {
	return Tracer().P(key, val)
}

// SetTestingLog redirects tracing to the test log and raises the trace
// level. Teardown is registered with the test's cleanup.
func SetTestingLog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	t.Cleanup(teardown)
	Tracer().SetTraceLevel(tracing.LevelDebug)
}
