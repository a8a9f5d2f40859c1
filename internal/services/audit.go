package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/requestdata"
	"github.com/samson-vesta/credmapping/internal/types"
)

// AuditService persists one row per mutation with the full old/new
// snapshots. Record runs inside the mutation's transaction so a failed
// write never leaves an orphan audit entry.
type AuditService interface {
	Record(ctx context.Context, tx *gorm.DB, actor *requestdata.RequestData, action, entityType string, entityID uuid.UUID, oldValue, newValue any) error
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*types.AuditLog, error)
	ListRecent(ctx context.Context, limit int) ([]*types.AuditLog, error)
}

type auditService struct {
	db           *gorm.DB
	log          *logger.Logger
	auditLogRepo repos.AuditLogRepo
}

func NewAuditService(db *gorm.DB, log *logger.Logger, auditLogRepo repos.AuditLogRepo) AuditService {
	serviceLog := log.With("service", "AuditService")
	return &auditService{db: db, log: serviceLog, auditLogRepo: auditLogRepo}
}

func marshalSnapshot(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit snapshot: %w", err)
	}
	return raw, nil
}

func (as *auditService) Record(ctx context.Context, tx *gorm.DB, actor *requestdata.RequestData, action, entityType string, entityID uuid.UUID, oldValue, newValue any) error {
	if actor == nil || actor.UserID == uuid.Nil {
		return fmt.Errorf("audit entry requires an actor")
	}
	oldJSON, err := marshalSnapshot(oldValue)
	if err != nil {
		return err
	}
	newJSON, err := marshalSnapshot(newValue)
	if err != nil {
		return err
	}
	entry := &types.AuditLog{
		ID:         uuid.New(),
		ActorID:    actor.UserID,
		ActorEmail: actor.UserEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValues:  oldJSON,
		NewValues:  newJSON,
	}
	if _, err := as.auditLogRepo.Create(ctx, tx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	as.log.Debug("Audit entry recorded", "action", action, "entity_type", entityType, "entity_id", entityID)
	return nil
}

func (as *auditService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*types.AuditLog, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return as.auditLogRepo.ListByEntity(ctx, nil, entityType, entityID)
}

func (as *auditService) ListRecent(ctx context.Context, limit int) ([]*types.AuditLog, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return as.auditLogRepo.ListRecent(ctx, nil, limit)
}
