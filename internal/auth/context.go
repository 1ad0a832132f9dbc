package auth

import (
	"context"

	"github.com/google/uuid"
)

// Roles issued by the hosted auth service
const (
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

// SystemUserID identifies requests authenticated with the API key
var SystemUserID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// UserContext holds authenticated user information
type UserContext struct {
	UserID      uuid.UUID
	DisplayName string
	Email       string
	Role        string
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// IsService reports whether the caller is a system integration rather than a person
func (u *UserContext) IsService() bool {
	return u.Role == RoleService
}

// Name returns the best display name available
func (u *UserContext) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Email
}
