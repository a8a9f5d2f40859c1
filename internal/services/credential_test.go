package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/repos/testutil"
	"github.com/samson-vesta/credmapping/internal/requestdata"
	"github.com/samson-vesta/credmapping/internal/types"
)

func strPtr(s string) *string { return &s }

func actorCtx(userID uuid.UUID, email, role string) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID:    userID,
		UserEmail: email,
		Role:      role,
	})
}

func newCredentialFixture(t *testing.T) (CredentialService, AuditService, *types.User, *types.User, *types.User) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)

	admin := testutil.SeedUser(t, db, "admin@vesta.test", types.RoleAdmin)
	editor := testutil.SeedUser(t, db, "editor@vesta.test", types.RoleEditor)
	viewer := testutil.SeedUser(t, db, "viewer@vesta.test", types.RoleViewer)

	auditService := NewAuditService(db, log, repos.NewAuditLogRepo(db, log))
	credentialService := NewCredentialService(db, log, repos.NewCredentialRepo(db, log), auditService, NoopSnapshotCache{})
	return credentialService, auditService, admin, editor, viewer
}

func TestCredentialServiceViewerCannotMutate(t *testing.T) {
	svc, _, _, _, viewer := newCredentialFixture(t)
	ctx := actorCtx(viewer.ID, viewer.Email, viewer.Role)

	input := &types.Credential{
		ProviderName: strPtr("Dr. Chen"),
		FacilityName: strPtr("Mercy West"),
	}
	if _, err := svc.Create(ctx, input); !errors.Is(err, ErrForbidden) {
		t.Fatalf("viewer create: want ErrForbidden, got %v", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("viewer delete: want ErrForbidden, got %v", err)
	}
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("viewer list should succeed, got %v", err)
	}
}

func TestCredentialServiceEditorCannotDelete(t *testing.T) {
	svc, _, _, editor, _ := newCredentialFixture(t)
	ctx := actorCtx(editor.ID, editor.Email, editor.Role)

	created, err := svc.Create(ctx, &types.Credential{
		ProviderName: strPtr("Dr. Chen"),
		FacilityName: strPtr("Mercy West"),
	})
	if err != nil {
		t.Fatalf("editor create: %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("editor delete: want ErrForbidden, got %v", err)
	}
}

func TestCredentialServiceUnauthenticatedContext(t *testing.T) {
	svc, _, _, _, _ := newCredentialFixture(t)
	if _, err := svc.List(context.Background()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden without an actor, got %v", err)
	}
}

func TestCredentialServiceValidation(t *testing.T) {
	svc, _, _, editor, _ := newCredentialFixture(t)
	ctx := actorCtx(editor.ID, editor.Email, editor.Role)

	if _, err := svc.Create(ctx, &types.Credential{FacilityName: strPtr("Mercy West")}); err == nil {
		t.Fatal("expected error for missing provider reference")
	}
	if _, err := svc.Create(ctx, &types.Credential{ProviderName: strPtr("Dr. Chen")}); err == nil {
		t.Fatal("expected error for missing facility reference")
	}
}

func TestCredentialServiceMutationsWriteAuditTrail(t *testing.T) {
	svc, audit, admin, _, _ := newCredentialFixture(t)
	ctx := actorCtx(admin.ID, admin.Email, admin.Role)

	created, err := svc.Create(ctx, &types.Credential{
		ProviderName: strPtr("Dr. Chen"),
		FacilityName: strPtr("Mercy West"),
		Status:       strPtr("submitted"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Status = strPtr("approved")
	updated, err := svc.Update(ctx, created.ID, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status == nil || *updated.Status != "approved" {
		t.Fatalf("update did not persist status, got %+v", updated.Status)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update changed CreatedAt: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); err == nil {
		t.Fatal("expected get after delete to fail")
	}

	entries, err := audit.ListByEntity(ctx, "credential", created.ID)
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("want 3 audit entries, got %d", len(entries))
	}
	actions := map[string]bool{}
	for _, e := range entries {
		actions[e.Action] = true
		if e.ActorID != admin.ID {
			t.Fatalf("audit actor = %s, want %s", e.ActorID, admin.ID)
		}
	}
	for _, want := range []string{types.AuditActionCreate, types.AuditActionUpdate, types.AuditActionDelete} {
		if !actions[want] {
			t.Fatalf("missing audit action %q in %v", want, actions)
		}
	}
}

func TestAuditRecordRequiresActor(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	audit := NewAuditService(db, log, repos.NewAuditLogRepo(db, log))

	err := audit.Record(context.Background(), nil, nil, types.AuditActionCreate, "credential", uuid.New(), nil, nil)
	if err == nil {
		t.Fatal("expected error recording audit entry without an actor")
	}
}
