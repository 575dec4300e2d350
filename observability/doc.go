// Package observability provides OpenTelemetry tracing for openaikit.
//
// Spans are started from the global tracer provider. Until InitTracer (or
// any other caller) installs a provider, the global one is a no-op and
// StartSpan costs nothing.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("openai"))
//	if err != nil {
//		return err
//	}
//	defer tp.Shutdown(ctx)
package observability
