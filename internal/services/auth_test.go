package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/repos/testutil"
	"github.com/samson-vesta/credmapping/internal/requestdata"
	"github.com/samson-vesta/credmapping/internal/types"
)

func newAuthFixture(t *testing.T) (AuthService, *types.User) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	admin := testutil.SeedUser(t, db, "admin@vesta.test", types.RoleAdmin)
	svc := NewAuthService(db, log, repos.NewUserRepo(db, log), repos.NewUserTokenRepo(db, log), "test-secret", time.Hour, 24*time.Hour)
	return svc, admin
}

func TestRegisterRequiresAdmin(t *testing.T) {
	svc, admin := newAuthFixture(t)

	user := &types.User{Email: "new@vesta.test", Password: "pw", Role: types.RoleViewer}
	if err := svc.RegisterUser(context.Background(), user); !errors.Is(err, ErrForbidden) {
		t.Fatalf("unauthenticated register: want ErrForbidden, got %v", err)
	}

	editorCtx := actorCtx(admin.ID, admin.Email, types.RoleEditor)
	if err := svc.RegisterUser(editorCtx, user); !errors.Is(err, ErrForbidden) {
		t.Fatalf("editor register: want ErrForbidden, got %v", err)
	}
}

func TestRegisterLoginRefreshRoundTrip(t *testing.T) {
	svc, admin := newAuthFixture(t)
	adminCtx := actorCtx(admin.ID, admin.Email, admin.Role)

	user := &types.User{
		Email:     "  Editor@Vesta.Test  ",
		FirstName: "Edda",
		LastName:  "Torres",
		Password:  "hunter2",
		Role:      types.RoleEditor,
	}
	if err := svc.RegisterUser(adminCtx, user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Password == "hunter2" {
		t.Fatal("password stored unhashed")
	}

	// Email normalizes on register, so login with the clean form works.
	access, refresh, err := svc.LoginUser(context.Background(), "editor@vesta.test", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("login returned empty tokens")
	}

	ctx, err := svc.SetContextFromToken(context.Background(), access)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserEmail != "editor@vesta.test" || rd.Role != types.RoleEditor {
		t.Fatalf("unexpected request data from token: %+v", rd)
	}

	rd.RefreshToken = refresh
	newAccess, newRefresh, err := svc.RefreshUser(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if newRefresh == refresh {
		t.Fatal("refresh token was not rotated")
	}
	if newAccess == "" {
		t.Fatal("refresh returned empty access token")
	}

	// Rotation invalidates the old refresh token.
	rd.RefreshToken = refresh
	if _, _, err := svc.RefreshUser(ctx); err == nil {
		t.Fatal("expected stale refresh token to be rejected")
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	svc, admin := newAuthFixture(t)
	adminCtx := actorCtx(admin.ID, admin.Email, admin.Role)

	user := &types.User{Email: "v@vesta.test", Password: "right", Role: types.RoleViewer}
	if err := svc.RegisterUser(adminCtx, user); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.LoginUser(context.Background(), "v@vesta.test", "wrong"); err == nil {
		t.Fatal("expected login with wrong password to fail")
	}
	if _, _, err := svc.LoginUser(context.Background(), "nobody@vesta.test", "right"); err == nil {
		t.Fatal("expected login with unknown email to fail")
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if _, err := svc.SetContextFromToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected invalid token to be rejected")
	}
}
