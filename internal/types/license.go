package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StateLicense struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProviderID     *uuid.UUID `gorm:"type:uuid;index;column:provider_id" json:"provider_id"`
	Provider       *Provider  `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProviderID;references:ID" json:"provider,omitempty"`
	ProviderName   *string    `gorm:"column:provider_name" json:"provider_name"`
	ProviderDegree *string    `gorm:"column:provider_degree" json:"provider_degree"`

	State         *string    `gorm:"column:state;index" json:"state"`
	LicensePath   *string    `gorm:"column:license_path" json:"license_path"`
	LicenseCycle  *string    `gorm:"column:license_cycle" json:"license_cycle"`
	Status        *string    `gorm:"column:status" json:"status"`
	Priority      *string    `gorm:"column:priority" json:"priority"`
	AppRequired   *bool      `gorm:"column:app_required" json:"app_required"`
	LicenseNumber *string    `gorm:"column:license_number" json:"license_number"`
	IssueDate     *time.Time `gorm:"column:issue_date" json:"issue_date"`
	ExpiryDate    *time.Time `gorm:"column:expiry_date" json:"expiry_date"`
	Notes         *string    `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StateLicense) TableName() string { return "state_license" }
