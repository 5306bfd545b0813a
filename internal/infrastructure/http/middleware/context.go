package middleware

import (
	"context"

	"github.com/Maksim-Borisov7/TaskApp/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser binds the authenticated user to the request context.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx context.Context) *domain.User {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}
