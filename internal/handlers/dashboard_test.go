package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/repos/testutil"
	"github.com/samson-vesta/credmapping/internal/requestdata"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/types"
	"github.com/samson-vesta/credmapping/internal/views"
)

func strPtr(s string) *string { return &s }

// fakeAuth injects a fixed actor, standing in for the JWT middleware.
func fakeAuth(user *types.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:    user.ID,
			UserEmail: user.Email,
			Role:      user.Role,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newDashboardRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	admin := testutil.SeedUser(t, db, "admin@vesta.test", types.RoleAdmin)

	credentialRepo := repos.NewCredentialRepo(db, log)
	auditService := services.NewAuditService(db, log, repos.NewAuditLogRepo(db, log))
	credentialService := services.NewCredentialService(db, log, credentialRepo, auditService, services.NoopSnapshotCache{})
	dashboardService := services.NewDashboardService(
		db,
		log,
		credentialRepo,
		repos.NewPreLiveRepo(db, log),
		repos.NewLicenseRepo(db, log),
		repos.NewPrivilegeRepo(db, log),
		services.NoopSnapshotCache{},
	)

	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID:    admin.ID,
		UserEmail: admin.Email,
		Role:      admin.Role,
	})
	seed := []types.Credential{
		{ProviderName: strPtr("Dr. Chen"), FacilityName: strPtr("Mercy West"), Status: strPtr("submitted")},
		{ProviderName: strPtr("Dr. Okafor"), FacilityName: strPtr("St. Anne"), Status: strPtr("approved")},
	}
	for i := range seed {
		if _, err := credentialService.Create(ctx, &seed[i]); err != nil {
			t.Fatalf("seed credential: %v", err)
		}
	}

	router := gin.New()
	router.Use(fakeAuth(admin))
	router.GET("/api/dashboard/:view", NewDashboardHandler(log, dashboardService).Render)
	return router
}

func TestDashboardEndpointRendersView(t *testing.T) {
	router := newDashboardRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/provider_credentials", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result views.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(result.Groups))
	}
	if result.SelectedKey == "" {
		t.Fatal("expected a selected group")
	}
}

func TestDashboardEndpointAppliesQueryFilters(t *testing.T) {
	router := newDashboardRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/provider_credentials?status=Approved", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var result views.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(result.Groups) != 1 || result.Groups[0].Label != "Dr. Okafor" {
		t.Fatalf("unexpected groups after filter: %+v", result.Groups)
	}
}

func TestDashboardEndpointRejectsUnknownView(t *testing.T) {
	router := newDashboardRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/bogus", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "unknown_view" {
		t.Fatalf("error code = %q, want unknown_view", envelope.Error.Code)
	}
}

func TestDashboardEndpointEmptyDataIsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.DB(t)
	log := testutil.Logger(t)
	admin := testutil.SeedUser(t, db, "admin@vesta.test", types.RoleAdmin)

	dashboardService := services.NewDashboardService(
		db,
		log,
		repos.NewCredentialRepo(db, log),
		repos.NewPreLiveRepo(db, log),
		repos.NewLicenseRepo(db, log),
		repos.NewPrivilegeRepo(db, log),
		services.NoopSnapshotCache{},
	)
	router := gin.New()
	router.Use(fakeAuth(admin))
	router.GET("/api/dashboard/:view", NewDashboardHandler(log, dashboardService).Render)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/licenses", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for empty data", w.Code)
	}
	var result views.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(result.Groups) != 0 || len(result.Detail) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
}
