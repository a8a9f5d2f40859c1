package views

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/samson-vesta/credmapping/internal/types"
)

func TestCredentialRelationBacksBothCredentialViews(t *testing.T) {
	provID := uuid.New()
	facID := uuid.New()
	snap := Snapshot{
		Credentials: []types.Credential{{
			ID:           uuid.New(),
			ProviderID:   &provID,
			ProviderName: strPtr("Dr. Adams"),
			ProviderDegree: strPtr("MD"),
			FacilityID:   &facID,
			FacilityName: strPtr("Mercy General"),
			FacilityState: strPtr("TX"),
			UpdatedAt:    time.Now(),
		}},
	}

	byProvider := Rows(ViewProviderCredentials, snap)
	if byProvider[0].GroupID != provID.String() || byProvider[0].GroupName != "Dr. Adams" || byProvider[0].Subtitle != "MD" {
		t.Fatalf("provider view grouping identity wrong: %+v", byProvider[0])
	}

	byFacility := Rows(ViewFacilityCredentials, snap)
	if byFacility[0].GroupID != facID.String() || byFacility[0].GroupName != "Mercy General" || byFacility[0].Subtitle != "TX" {
		t.Fatalf("facility view grouping identity wrong: %+v", byFacility[0])
	}

	if byProvider[0].Key != byFacility[0].Key {
		t.Fatalf("both views must address the same underlying record")
	}
}

func TestRowsMissingForeignIDFallsBackToName(t *testing.T) {
	snap := Snapshot{
		Licenses: []types.StateLicense{{
			ID:           uuid.New(),
			ProviderName: strPtr("Dr. Chen"),
			UpdatedAt:    time.Now(),
		}},
	}
	rows := Rows(ViewLicenses, snap)
	if rows[0].GroupID != "" {
		t.Fatalf("expected empty group id, got %q", rows[0].GroupID)
	}
	if rows[0].GroupKey() != "Dr. Chen" {
		t.Fatalf("group key must fall back to the display name, got %q", rows[0].GroupKey())
	}
}

func TestRowsUnknownView(t *testing.T) {
	if got := Rows(View("bogus"), Snapshot{}); got != nil {
		t.Fatalf("unknown view should yield no rows, got %d", len(got))
	}
}
