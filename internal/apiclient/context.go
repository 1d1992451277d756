package apiclient

import "context"

type requestIDKey struct{}

// WithRequestID attaches a request identifier that outbound calls will
// forward as X-Request-ID.
func WithRequestID(ctx context.Context, rid string) context.Context {
	if rid == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestIDFromContext extracts the request identifier if one was attached.
func RequestIDFromContext(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}
