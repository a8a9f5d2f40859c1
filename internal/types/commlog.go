package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunicationLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntityType string     `gorm:"not null;column:entity_type;index:idx_comm_entity" json:"entity_type"`
	EntityID   *uuid.UUID `gorm:"type:uuid;column:entity_id;index:idx_comm_entity" json:"entity_id"`
	Direction  *string    `gorm:"column:direction" json:"direction"`
	Channel    *string    `gorm:"column:channel" json:"channel"`
	Summary    string     `gorm:"not null;column:summary" json:"summary"`
	OccurredAt *time.Time `gorm:"column:occurred_at" json:"occurred_at"`
	CreatedBy  *uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CommunicationLog) TableName() string { return "communication_log" }
