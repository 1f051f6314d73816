// Package requestctx carries per-request identity from the HTTP edge to the
// backend client without importing the transport layer.
package requestctx

import "context"

// HeaderRequestID is read from inbound requests and forwarded to the backend.
const HeaderRequestID = "X-Request-ID"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	operatorKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

// WithOperator records the authenticated console operator for logging.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey, operator)
}

func GetOperator(ctx context.Context) string {
	if value, ok := ctx.Value(operatorKey).(string); ok {
		return value
	}
	return ""
}
