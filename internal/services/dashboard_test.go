package services

import (
	"context"
	"testing"

	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/repos/testutil"
	"github.com/samson-vesta/credmapping/internal/types"
	"github.com/samson-vesta/credmapping/internal/views"
)

func newDashboardFixture(t *testing.T) (DashboardService, CredentialService, *types.User) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	admin := testutil.SeedUser(t, db, "admin@vesta.test", types.RoleAdmin)

	credentialRepo := repos.NewCredentialRepo(db, log)
	auditService := NewAuditService(db, log, repos.NewAuditLogRepo(db, log))
	credentialService := NewCredentialService(db, log, credentialRepo, auditService, NoopSnapshotCache{})
	dashboardService := NewDashboardService(
		db,
		log,
		credentialRepo,
		repos.NewPreLiveRepo(db, log),
		repos.NewLicenseRepo(db, log),
		repos.NewPrivilegeRepo(db, log),
		NoopSnapshotCache{},
	)
	return dashboardService, credentialService, admin
}

func TestDashboardRenderGroupsCredentialsByProvider(t *testing.T) {
	dash, creds, admin := newDashboardFixture(t)
	ctx := actorCtx(admin.ID, admin.Email, admin.Role)

	for _, facility := range []string{"Mercy West", "St. Anne"} {
		if _, err := creds.Create(ctx, &types.Credential{
			ProviderName: strPtr("Dr. Chen"),
			FacilityName: strPtr(facility),
			Status:       strPtr("submitted"),
		}); err != nil {
			t.Fatalf("seed credential: %v", err)
		}
	}
	if _, err := creds.Create(ctx, &types.Credential{
		ProviderName: strPtr("Dr. Okafor"),
		FacilityName: strPtr("Mercy West"),
		Status:       strPtr("approved"),
	}); err != nil {
		t.Fatalf("seed credential: %v", err)
	}

	state := views.DefaultState(views.ViewProviderCredentials)
	result, err := dash.Render(ctx, state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("want 2 provider groups, got %d", len(result.Groups))
	}
	if result.SelectedKey == "" {
		t.Fatal("expected a default selected group")
	}
	if len(result.Detail) == 0 {
		t.Fatal("expected detail rows for the selected group")
	}

	// The same records regroup by facility on the facility view.
	result, err = dash.Render(ctx, state.SwitchView(views.ViewFacilityCredentials))
	if err != nil {
		t.Fatalf("render facility view: %v", err)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("want 2 facility groups, got %d", len(result.Groups))
	}
	for _, g := range result.Groups {
		if g.Label != "Mercy West" && g.Label != "St. Anne" {
			t.Fatalf("unexpected facility group label %q", g.Label)
		}
	}
}

func TestDashboardRenderAppliesStatusFilter(t *testing.T) {
	dash, creds, admin := newDashboardFixture(t)
	ctx := actorCtx(admin.ID, admin.Email, admin.Role)

	if _, err := creds.Create(ctx, &types.Credential{
		ProviderName: strPtr("Dr. Chen"),
		FacilityName: strPtr("Mercy West"),
		Status:       strPtr("submitted"),
	}); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	if _, err := creds.Create(ctx, &types.Credential{
		ProviderName: strPtr("Dr. Okafor"),
		FacilityName: strPtr("St. Anne"),
		Status:       strPtr("approved"),
	}); err != nil {
		t.Fatalf("seed credential: %v", err)
	}

	state := views.DefaultState(views.ViewProviderCredentials).SetFilter(views.FilterStatus, "approved")
	result, err := dash.Render(ctx, state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(result.Groups) != 1 {
		t.Fatalf("want 1 group after status filter, got %d", len(result.Groups))
	}
	if result.Groups[0].Label != "Dr. Okafor" {
		t.Fatalf("want Dr. Okafor group, got %q", result.Groups[0].Label)
	}
}

func TestDashboardRenderRejectsUnknownView(t *testing.T) {
	dash, _, admin := newDashboardFixture(t)
	ctx := actorCtx(admin.ID, admin.Email, admin.Role)

	state := views.DefaultState(views.ViewProviderCredentials)
	state.View = views.View("bogus")
	if _, err := dash.Render(ctx, state); err == nil {
		t.Fatal("expected unknown view to be rejected")
	}
}

func TestDashboardRenderRequiresActor(t *testing.T) {
	dash, _, _ := newDashboardFixture(t)
	if _, err := dash.Render(context.Background(), views.DefaultState(views.ViewLicenses)); err == nil {
		t.Fatal("expected render without an actor to fail")
	}
}
