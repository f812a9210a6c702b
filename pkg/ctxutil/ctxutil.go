package ctxutil

import (
	"context"
)

type ctxKey string

const (
	userKey      ctxKey = "user"
	requestIDKey ctxKey = "request_id"
)

type user struct {
	id       int64
	username string
}

// WithUser stores the authenticated user's ID and username in the context.
func WithUser(ctx context.Context, id int64, username string) context.Context {
	return context.WithValue(ctx, userKey, user{id: id, username: username})
}

// UserIDFromCtx extracts the user ID from the context.
// Returns 0 and false if the value is missing or not a positive ID.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	u, ok := ctx.Value(userKey).(user)
	if !ok || u.id <= 0 {
		return 0, false
	}
	return u.id, true
}

// UsernameFromCtx extracts the username from the context.
// Returns an empty string and false if absent.
func UsernameFromCtx(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(userKey).(user)
	if !ok || u.username == "" {
		return "", false
	}
	return u.username, true
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
