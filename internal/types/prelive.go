package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreLiveRecord tracks facility readiness before the facility goes
// operationally live.
type PreLiveRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FacilityID    *uuid.UUID `gorm:"type:uuid;index;column:facility_id" json:"facility_id"`
	Facility      *Facility  `gorm:"constraint:OnDelete:SET NULL;foreignKey:FacilityID;references:ID" json:"facility,omitempty"`
	FacilityName  *string    `gorm:"column:facility_name" json:"facility_name"`
	FacilityType  *string    `gorm:"column:facility_type" json:"facility_type"`
	FacilityState *string    `gorm:"column:facility_state" json:"facility_state"`

	Status                  *string    `gorm:"column:status" json:"status"`
	Priority                *string    `gorm:"column:priority" json:"priority"`
	TargetLiveDate          *time.Time `gorm:"column:target_live_date" json:"target_live_date"`
	PayorEnrollmentRequired *bool      `gorm:"column:payor_enrollment_required" json:"payor_enrollment_required"`
	Notes                   *string    `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PreLiveRecord) TableName() string { return "pre_live_record" }
