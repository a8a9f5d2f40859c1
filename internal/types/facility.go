package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Facility struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string         `gorm:"not null;column:name" json:"name"`
	FacilityType *string        `gorm:"column:facility_type" json:"facility_type"`
	State        *string        `gorm:"column:state;index" json:"state"`
	City         *string        `gorm:"column:city" json:"city"`
	GoLiveDate   *time.Time     `gorm:"column:go_live_date" json:"go_live_date"`
	Notes        *string        `gorm:"column:notes" json:"notes"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Facility) TableName() string { return "facility" }
