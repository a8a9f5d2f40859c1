package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Contact struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FacilityID *uuid.UUID     `gorm:"type:uuid;index;column:facility_id" json:"facility_id"`
	Facility   *Facility      `gorm:"constraint:OnDelete:SET NULL;foreignKey:FacilityID;references:ID" json:"facility,omitempty"`
	Name       string         `gorm:"not null;column:name" json:"name"`
	Title      *string        `gorm:"column:title" json:"title"`
	Email      *string        `gorm:"column:email" json:"email"`
	Phone      *string        `gorm:"column:phone" json:"phone"`
	Notes      *string        `gorm:"column:notes" json:"notes"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Contact) TableName() string { return "contact" }
