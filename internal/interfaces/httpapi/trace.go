package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("club-manager/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for handlers only. Each span carries the
// club.surface attribute so admin traffic can be split from the public site.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Health checks are filtered before the otel middleware, so there is no parent.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("club.surface", handlerSurface(name)),
	))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

func handlerSurface(name string) string {
	action := strings.TrimPrefix(name, handlerSpanPrefix)
	switch {
	case strings.HasPrefix(action, "Admin"):
		return "admin"
	case action == "Signup", action == "Login", action == "Logout", action == "GetDashboard":
		return "member"
	default:
		return "public"
	}
}
