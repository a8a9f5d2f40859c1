package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/repos/testutil"
	"github.com/samson-vesta/credmapping/internal/types"
)

func strPtr(s string) *string { return &s }

func TestCredentialRepoCRUD(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	repo := NewCredentialRepo(db, log)
	ctx := context.Background()

	provider := testutil.SeedProvider(t, db, "Dr. Adams")
	facility := testutil.SeedFacility(t, db, "Mercy General")

	created, err := repo.Create(ctx, nil, &types.Credential{
		ID:           uuid.New(),
		ProviderID:   &provider.ID,
		ProviderName: strPtr("Dr. Adams"),
		FacilityID:   &facility.ID,
		FacilityName: strPtr("Mercy General"),
		Status:       strPtr("pending"),
		Priority:     strPtr("stat"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status == nil || *got.Status != "pending" {
		t.Fatalf("unexpected status: %+v", got.Status)
	}

	got.Status = strPtr("approved")
	if _, err := repo.Update(ctx, nil, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if *updated.Status != "approved" {
		t.Fatalf("update not persisted, status=%q", *updated.Status)
	}

	rows, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	if err := repo.Delete(ctx, nil, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	rows, err = repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("soft-deleted row still listed")
	}
}

func TestCredentialRepoNullableFieldsStayNull(t *testing.T) {
	db := testutil.DB(t)
	log := testutil.Logger(t)
	repo := NewCredentialRepo(db, log)
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Credential{
		ID:           uuid.New(),
		ProviderName: strPtr("Dr. Chen"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AppRequired != nil || got.Status != nil || got.SubmittedDate != nil {
		t.Fatalf("nullable fields must round-trip as nil, got %+v", got)
	}
}
