// Package utils holds small helpers shared by the transport and service
// layers: the authenticated account in a context, JSON responses, ids and
// bearer tokens.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated account id (int64) set by the auth
// middleware.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the account id stored under UserIDCtxKey. ok
// is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
