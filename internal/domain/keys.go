package domain

import "context"

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUserRole CtxKey = "Role"
)

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Role   Role
}

// WithIdentity attaches the caller identity to a request context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, KeyUserID, id.UserID)
	return context.WithValue(ctx, KeyUserRole, id.Role)
}

// IdentityFrom returns the caller identity stored by WithIdentity.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(KeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	role, _ := ctx.Value(KeyUserRole).(Role)
	return Identity{UserID: userID, Role: role}, true
}
