package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VestaPrivilege is a point-in-time clinical privilege status for a
// provider.
type VestaPrivilege struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProviderID     *uuid.UUID `gorm:"type:uuid;index;column:provider_id" json:"provider_id"`
	Provider       *Provider  `gorm:"constraint:OnDelete:SET NULL;foreignKey:ProviderID;references:ID" json:"provider,omitempty"`
	ProviderName   *string    `gorm:"column:provider_name" json:"provider_name"`
	ProviderDegree *string    `gorm:"column:provider_degree" json:"provider_degree"`

	Tier          *string    `gorm:"column:tier" json:"tier"`
	Status        *string    `gorm:"column:status" json:"status"`
	Priority      *string    `gorm:"column:priority" json:"priority"`
	EffectiveDate *time.Time `gorm:"column:effective_date" json:"effective_date"`
	Notes         *string    `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (VestaPrivilege) TableName() string { return "vesta_privilege" }
