package ctxutil

import (
	"context"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the acting compliance user's login in the context.
func WithActor(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, actorKey, login)
}

// ActorFromCtx extracts the actor login from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func ActorFromCtx(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(actorKey).(string)
	if !ok || login == "" {
		return "", false
	}
	return login, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
