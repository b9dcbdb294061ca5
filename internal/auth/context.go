package auth

import (
	"context"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"google.golang.org/grpc/metadata"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

const (
	MetadataUserID       = "x-user-id"
	MetadataUserRole     = "x-user-role"
	MetadataForwardedFor = "x-forwarded-for"
)

type UserContext struct {
	UserID   string
	Role     string
	SourceIP string
}

func (u UserContext) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type userKey struct{}

// WithUser stores the caller identity on ctx.
func WithUser(ctx context.Context, u UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// FromContext returns the identity placed on ctx by the context interceptor,
// falling back to incoming gRPC metadata.
func FromContext(ctx context.Context) UserContext {
	if u, ok := ctx.Value(userKey{}).(UserContext); ok {
		return u
	}

	var u UserContext
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return u
	}
	if val := md.Get(MetadataUserID); len(val) > 0 {
		u.UserID = val[0]
	}
	if val := md.Get(MetadataUserRole); len(val) > 0 {
		u.Role = val[0]
	}
	if val := md.Get(MetadataForwardedFor); len(val) > 0 {
		u.SourceIP = val[0]
	}
	return u
}

func GetUserID(ctx context.Context) string {
	return FromContext(ctx).UserID
}

// Require returns the caller identity or a MISSING_IDENTITY error when the
// request carries no user id.
func Require(ctx context.Context) (UserContext, error) {
	u := FromContext(ctx)
	if u.UserID == "" {
		return u, apperror.Unauthorized(apperror.CodeMissingIdentity, "missing user identity")
	}
	return u, nil
}
