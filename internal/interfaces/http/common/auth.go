package common

import "context"

type contextKey string

const authUserContextKey contextKey = "authUser"

// ロールはログイン時の照合結果で決まり、JWT のクレームとしてそのまま運ばれる。
const (
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
	RoleStylist = "stylist"
)

// AuthenticatedUser represents the JWT-derived principal.
type AuthenticatedUser struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// ContextWithUser stores the authenticated user into context.
func ContextWithUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, authUserContextKey, user)
}

// UserFromContext extracts the authenticated user from context.
func UserFromContext(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(authUserContextKey).(AuthenticatedUser)
	return user, ok
}
