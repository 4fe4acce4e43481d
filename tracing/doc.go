// Package tracing records one OpenTelemetry span per gitsetup run and per
// applied command. Spans are only exported when a trace file is configured;
// otherwise the global no-op provider keeps instrumentation free.
package tracing
