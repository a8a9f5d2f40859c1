package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Provider struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"not null;column:name" json:"name"`
	Degree      *string        `gorm:"column:degree" json:"degree"`
	NPI         *string        `gorm:"column:npi;index" json:"npi"`
	Email       *string        `gorm:"column:email" json:"email"`
	Phone       *string        `gorm:"column:phone" json:"phone"`
	Specialties datatypes.JSON `gorm:"column:specialties;type:jsonb" json:"specialties"`
	Notes       *string        `gorm:"column:notes" json:"notes"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Provider) TableName() string { return "provider" }
