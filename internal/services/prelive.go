package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/types"
)

const entityPreLive = "pre_live_record"

type PreLiveService interface {
	List(ctx context.Context) ([]types.PreLiveRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*types.PreLiveRecord, error)
	Create(ctx context.Context, input *types.PreLiveRecord) (*types.PreLiveRecord, error)
	Update(ctx context.Context, id uuid.UUID, input *types.PreLiveRecord) (*types.PreLiveRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type preLiveService struct {
	db            *gorm.DB
	log           *logger.Logger
	preLiveRepo   repos.PreLiveRepo
	auditService  AuditService
	snapshotCache SnapshotCache
}

func NewPreLiveService(db *gorm.DB, log *logger.Logger, preLiveRepo repos.PreLiveRepo, auditService AuditService, snapshotCache SnapshotCache) PreLiveService {
	serviceLog := log.With("service", "PreLiveService")
	return &preLiveService{
		db:            db,
		log:           serviceLog,
		preLiveRepo:   preLiveRepo,
		auditService:  auditService,
		snapshotCache: snapshotCache,
	}
}

func (ps *preLiveService) List(ctx context.Context) ([]types.PreLiveRecord, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.preLiveRepo.List(ctx, nil)
}

func (ps *preLiveService) Get(ctx context.Context, id uuid.UUID) (*types.PreLiveRecord, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.preLiveRepo.GetByID(ctx, nil, id)
}

func validatePreLive(input *types.PreLiveRecord) error {
	if input == nil {
		return fmt.Errorf("no pre-live record given")
	}
	if input.FacilityID == nil && (input.FacilityName == nil || *input.FacilityName == "") {
		return fmt.Errorf("a facility reference or facility name is required")
	}
	return nil
}

func (ps *preLiveService) Create(ctx context.Context, input *types.PreLiveRecord) (*types.PreLiveRecord, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validatePreLive(input); err != nil {
		return nil, err
	}

	var created *types.PreLiveRecord
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = ps.preLiveRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create pre-live record: %w", cErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityPreLive, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (ps *preLiveService) Update(ctx context.Context, id uuid.UUID, input *types.PreLiveRecord) (*types.PreLiveRecord, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validatePreLive(input); err != nil {
		return nil, err
	}

	var updated *types.PreLiveRecord
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.preLiveRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("pre-live record not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = ps.preLiveRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update pre-live record: %w", uErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityPreLive, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (ps *preLiveService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.preLiveRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("pre-live record not found: %w", gErr)
		}
		if dErr := ps.preLiveRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete pre-live record: %w", dErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityPreLive, id, old, nil)
	}); err != nil {
		return err
	}
	ps.snapshotCache.Invalidate(ctx)
	return nil
}
