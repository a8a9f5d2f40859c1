package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditLog records one mutation: who did it, to what, and the full
// before/after snapshots. Rows are append-only.
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ActorID    uuid.UUID      `gorm:"type:uuid;not null;index;column:actor_id" json:"actor_id"`
	ActorEmail string         `gorm:"column:actor_email" json:"actor_email"`
	Action     string         `gorm:"not null;column:action" json:"action"`
	EntityType string         `gorm:"not null;column:entity_type;index:idx_audit_entity" json:"entity_type"`
	EntityID   uuid.UUID      `gorm:"type:uuid;not null;column:entity_id;index:idx_audit_entity" json:"entity_id"`
	OldValues  datatypes.JSON `gorm:"column:old_values;type:jsonb" json:"old_values"`
	NewValues  datatypes.JSON `gorm:"column:new_values;type:jsonb" json:"new_values"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_log" }
