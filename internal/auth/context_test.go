package auth

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-shift-service/internal/apperror"
	"google.golang.org/grpc/metadata"
)

func TestFromContextMetadata(t *testing.T) {
	md := metadata.Pairs(MetadataUserID, "u-9", MetadataUserRole, RoleAdmin, MetadataForwardedFor, "10.0.0.7")
	ctx := metadata.NewIncomingContext(context.Background(), md)

	u := FromContext(ctx)
	if u.UserID != "u-9" || !u.IsAdmin() || u.SourceIP != "10.0.0.7" {
		t.Fatalf("unexpected user %+v", u)
	}
}

func TestWithUserWins(t *testing.T) {
	md := metadata.Pairs(MetadataUserID, "from-md")
	ctx := metadata.NewIncomingContext(context.Background(), md)
	ctx = WithUser(ctx, UserContext{UserID: "from-ctx", Role: RoleEmployee})

	if got := GetUserID(ctx); got != "from-ctx" {
		t.Fatalf("expected context identity, got %q", got)
	}
	if FromContext(ctx).IsAdmin() {
		t.Fatal("employee must not be admin")
	}
}

func TestFromContextEmpty(t *testing.T) {
	if u := FromContext(context.Background()); u.UserID != "" || u.Role != "" {
		t.Fatalf("expected zero identity, got %+v", u)
	}
}

func TestRequire(t *testing.T) {
	if _, err := Require(context.Background()); apperror.CodeOf(err) != apperror.CodeMissingIdentity {
		t.Fatalf("expected missing identity, got %v", err)
	}
	u, err := Require(WithUser(context.Background(), UserContext{UserID: "u-1"}))
	if err != nil || u.UserID != "u-1" {
		t.Fatalf("unexpected %+v, %v", u, err)
	}
}
