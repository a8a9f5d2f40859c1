package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/types"
)

const entityCommLog = "communication_log"

// commLogEntityTypes are the record kinds a communication can attach
// to.
var commLogEntityTypes = map[string]struct{}{
	"provider":        {},
	"facility":        {},
	"credential":      {},
	"state_license":   {},
	"pre_live_record": {},
}

type CommLogService interface {
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*types.CommunicationLog, error)
	Create(ctx context.Context, input *types.CommunicationLog) (*types.CommunicationLog, error)
	Update(ctx context.Context, id uuid.UUID, input *types.CommunicationLog) (*types.CommunicationLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type commLogService struct {
	db           *gorm.DB
	log          *logger.Logger
	commLogRepo  repos.CommLogRepo
	auditService AuditService
}

func NewCommLogService(db *gorm.DB, log *logger.Logger, commLogRepo repos.CommLogRepo, auditService AuditService) CommLogService {
	serviceLog := log.With("service", "CommLogService")
	return &commLogService{
		db:           db,
		log:          serviceLog,
		commLogRepo:  commLogRepo,
		auditService: auditService,
	}
}

func (cs *commLogService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*types.CommunicationLog, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.commLogRepo.ListByEntity(ctx, nil, entityType, entityID)
}

func validateCommLog(input *types.CommunicationLog) error {
	if input == nil {
		return fmt.Errorf("no communication log given")
	}
	if _, ok := commLogEntityTypes[input.EntityType]; !ok {
		return fmt.Errorf("unknown entity type %q", input.EntityType)
	}
	if strings.TrimSpace(input.Summary) == "" {
		return fmt.Errorf("a summary is required")
	}
	return nil
}

func (cs *commLogService) Create(ctx context.Context, input *types.CommunicationLog) (*types.CommunicationLog, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateCommLog(input); err != nil {
		return nil, err
	}

	var created *types.CommunicationLog
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		input.CreatedBy = &rd.UserID
		if input.OccurredAt == nil {
			now := time.Now()
			input.OccurredAt = &now
		}
		var cErr error
		created, cErr = cs.commLogRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create communication log: %w", cErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityCommLog, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	return created, nil
}

func (cs *commLogService) Update(ctx context.Context, id uuid.UUID, input *types.CommunicationLog) (*types.CommunicationLog, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateCommLog(input); err != nil {
		return nil, err
	}

	var updated *types.CommunicationLog
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.commLogRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("communication log not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		input.CreatedBy = old.CreatedBy
		var uErr error
		updated, uErr = cs.commLogRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update communication log: %w", uErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityCommLog, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *commLogService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.commLogRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("communication log not found: %w", gErr)
		}
		if dErr := cs.commLogRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete communication log: %w", dErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityCommLog, id, old, nil)
	})
}
