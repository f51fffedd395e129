package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

// otelBridge forwards every slog record to the OpenTelemetry log pipeline
// after the wrapped handler has written it to the console.
type otelBridge struct {
	next   slog.Handler
	logger log.Logger
}

// NewOTelHandler wraps next so records also reach the OTEL exporter.
func NewOTelHandler(next slog.Handler) slog.Handler {
	return &otelBridge{
		next:   next,
		logger: global.GetLoggerProvider().Logger("staffhub"),
	}
}

func (b *otelBridge) Enabled(ctx context.Context, level slog.Level) bool {
	return b.next.Enabled(ctx, level)
}

func (b *otelBridge) Handle(ctx context.Context, record slog.Record) error {
	if err := b.next.Handle(ctx, record); err != nil {
		return err
	}

	out := log.Record{}
	out.SetTimestamp(record.Time)
	out.SetSeverity(severityFor(record.Level))
	out.SetBody(log.StringValue(record.Message))

	record.Attrs(func(attr slog.Attr) bool {
		out.AddAttributes(log.String(attr.Key, attr.Value.String()))
		return true
	})

	// Correlate with the active span when there is one
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		out.AddAttributes(
			log.String("trace_id", sc.TraceID().String()),
			log.String("span_id", sc.SpanID().String()),
		)
	}

	b.logger.Emit(ctx, out)
	return nil
}

func (b *otelBridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &otelBridge{next: b.next.WithAttrs(attrs), logger: b.logger}
}

func (b *otelBridge) WithGroup(name string) slog.Handler {
	return &otelBridge{next: b.next.WithGroup(name), logger: b.logger}
}

// severityFor maps slog levels onto OTEL severities, including the custom
// levels slog allows between the named ones.
func severityFor(level slog.Level) log.Severity {
	switch {
	case level >= slog.LevelError:
		return log.SeverityError
	case level >= slog.LevelWarn:
		return log.SeverityWarn
	case level >= slog.LevelInfo:
		return log.SeverityInfo
	default:
		return log.SeverityDebug
	}
}
