package site

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName identifies draftml spans in trace backends.
const tracerName = "draftml"

// traceRender wraps one page render in an OpenTelemetry span. The span
// records the page path and the rendered size; a render error marks the
// span as failed.
func traceRender(ctx context.Context, page string, render func(context.Context) (int, error)) error {
	tracer := otel.Tracer(tracerName)

	ctx, span := tracer.Start(ctx, "site.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("draftml.page", page)),
	)
	defer span.End()

	size, err := render(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("draftml.bytes", size))
	span.SetStatus(codes.Ok, "")
	return nil
}
