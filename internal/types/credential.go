package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Credential links one provider to one facility and tracks the
// credentialing workflow between them. Provider and facility references
// are nullable: rows imported from spreadsheets may carry only the
// denormalized display names.
type Credential struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProviderID     *uuid.UUID `gorm:"type:uuid;index;column:provider_id" json:"provider_id"`
	Provider       *Provider  `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProviderID;references:ID" json:"provider,omitempty"`
	ProviderName   *string    `gorm:"column:provider_name" json:"provider_name"`
	ProviderDegree *string    `gorm:"column:provider_degree" json:"provider_degree"`
	FacilityID     *uuid.UUID `gorm:"type:uuid;index;column:facility_id" json:"facility_id"`
	Facility       *Facility  `gorm:"constraint:OnDelete:SET NULL;foreignKey:FacilityID;references:ID" json:"facility,omitempty"`
	FacilityName   *string    `gorm:"column:facility_name" json:"facility_name"`
	FacilityType   *string    `gorm:"column:facility_type" json:"facility_type"`
	FacilityState  *string    `gorm:"column:facility_state" json:"facility_state"`

	Status                  *string `gorm:"column:status" json:"status"`
	Priority                *string `gorm:"column:priority" json:"priority"`
	AppRequired             *bool   `gorm:"column:app_required" json:"app_required"`
	TempsPossible           *bool   `gorm:"column:temps_possible" json:"temps_possible"`
	PayorEnrollmentRequired *bool   `gorm:"column:payor_enrollment_required" json:"payor_enrollment_required"`

	SubmittedDate *time.Time `gorm:"column:submitted_date" json:"submitted_date"`
	ApprovedDate  *time.Time `gorm:"column:approved_date" json:"approved_date"`
	Notes         *string    `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Credential) TableName() string { return "credential" }
