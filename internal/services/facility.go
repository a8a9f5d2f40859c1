package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/types"
)

const entityFacility = "facility"

type FacilityService interface {
	List(ctx context.Context) ([]*types.Facility, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Facility, error)
	Create(ctx context.Context, input *types.Facility) (*types.Facility, error)
	Update(ctx context.Context, id uuid.UUID, input *types.Facility) (*types.Facility, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type facilityService struct {
	db            *gorm.DB
	log           *logger.Logger
	facilityRepo  repos.FacilityRepo
	auditService  AuditService
	snapshotCache SnapshotCache
}

func NewFacilityService(db *gorm.DB, log *logger.Logger, facilityRepo repos.FacilityRepo, auditService AuditService, snapshotCache SnapshotCache) FacilityService {
	serviceLog := log.With("service", "FacilityService")
	return &facilityService{
		db:            db,
		log:           serviceLog,
		facilityRepo:  facilityRepo,
		auditService:  auditService,
		snapshotCache: snapshotCache,
	}
}

func (fs *facilityService) List(ctx context.Context) ([]*types.Facility, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return fs.facilityRepo.List(ctx, nil)
}

func (fs *facilityService) Get(ctx context.Context, id uuid.UUID) (*types.Facility, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return fs.facilityRepo.GetByID(ctx, nil, id)
}

func (fs *facilityService) Create(ctx context.Context, input *types.Facility) (*types.Facility, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a facility name is required")
	}

	var created *types.Facility
	if err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = fs.facilityRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create facility: %w", cErr)
		}
		return fs.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityFacility, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	fs.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (fs *facilityService) Update(ctx context.Context, id uuid.UUID, input *types.Facility) (*types.Facility, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a facility name is required")
	}

	var updated *types.Facility
	if err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := fs.facilityRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("facility not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = fs.facilityRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update facility: %w", uErr)
		}
		return fs.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityFacility, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	fs.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (fs *facilityService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := fs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := fs.facilityRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("facility not found: %w", gErr)
		}
		if dErr := fs.facilityRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete facility: %w", dErr)
		}
		return fs.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityFacility, id, old, nil)
	}); err != nil {
		return err
	}
	fs.snapshotCache.Invalidate(ctx)
	return nil
}
