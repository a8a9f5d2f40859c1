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

const entityProvider = "provider"

type ProviderService interface {
	List(ctx context.Context) ([]*types.Provider, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Provider, error)
	Create(ctx context.Context, input *types.Provider) (*types.Provider, error)
	Update(ctx context.Context, id uuid.UUID, input *types.Provider) (*types.Provider, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type providerService struct {
	db            *gorm.DB
	log           *logger.Logger
	providerRepo  repos.ProviderRepo
	auditService  AuditService
	snapshotCache SnapshotCache
}

func NewProviderService(db *gorm.DB, log *logger.Logger, providerRepo repos.ProviderRepo, auditService AuditService, snapshotCache SnapshotCache) ProviderService {
	serviceLog := log.With("service", "ProviderService")
	return &providerService{
		db:            db,
		log:           serviceLog,
		providerRepo:  providerRepo,
		auditService:  auditService,
		snapshotCache: snapshotCache,
	}
}

func (ps *providerService) List(ctx context.Context) ([]*types.Provider, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.providerRepo.List(ctx, nil)
}

func (ps *providerService) Get(ctx context.Context, id uuid.UUID) (*types.Provider, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.providerRepo.GetByID(ctx, nil, id)
}

func (ps *providerService) Create(ctx context.Context, input *types.Provider) (*types.Provider, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a provider name is required")
	}

	var created *types.Provider
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = ps.providerRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create provider: %w", cErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityProvider, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (ps *providerService) Update(ctx context.Context, id uuid.UUID, input *types.Provider) (*types.Provider, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a provider name is required")
	}

	var updated *types.Provider
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.providerRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("provider not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = ps.providerRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update provider: %w", uErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityProvider, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (ps *providerService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.providerRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("provider not found: %w", gErr)
		}
		if dErr := ps.providerRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete provider: %w", dErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityProvider, id, old, nil)
	}); err != nil {
		return err
	}
	ps.snapshotCache.Invalidate(ctx)
	return nil
}
