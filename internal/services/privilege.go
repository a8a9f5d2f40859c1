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

const entityPrivilege = "vesta_privilege"

type PrivilegeService interface {
	List(ctx context.Context) ([]types.VestaPrivilege, error)
	Get(ctx context.Context, id uuid.UUID) (*types.VestaPrivilege, error)
	Create(ctx context.Context, input *types.VestaPrivilege) (*types.VestaPrivilege, error)
	Update(ctx context.Context, id uuid.UUID, input *types.VestaPrivilege) (*types.VestaPrivilege, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type privilegeService struct {
	db            *gorm.DB
	log           *logger.Logger
	privilegeRepo repos.PrivilegeRepo
	auditService  AuditService
	snapshotCache SnapshotCache
}

func NewPrivilegeService(db *gorm.DB, log *logger.Logger, privilegeRepo repos.PrivilegeRepo, auditService AuditService, snapshotCache SnapshotCache) PrivilegeService {
	serviceLog := log.With("service", "PrivilegeService")
	return &privilegeService{
		db:            db,
		log:           serviceLog,
		privilegeRepo: privilegeRepo,
		auditService:  auditService,
		snapshotCache: snapshotCache,
	}
}

func (ps *privilegeService) List(ctx context.Context) ([]types.VestaPrivilege, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.privilegeRepo.List(ctx, nil)
}

func (ps *privilegeService) Get(ctx context.Context, id uuid.UUID) (*types.VestaPrivilege, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ps.privilegeRepo.GetByID(ctx, nil, id)
}

func validatePrivilege(input *types.VestaPrivilege) error {
	if input == nil {
		return fmt.Errorf("no privilege record given")
	}
	if input.ProviderID == nil && (input.ProviderName == nil || *input.ProviderName == "") {
		return fmt.Errorf("a provider reference or provider name is required")
	}
	return nil
}

func (ps *privilegeService) Create(ctx context.Context, input *types.VestaPrivilege) (*types.VestaPrivilege, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validatePrivilege(input); err != nil {
		return nil, err
	}

	var created *types.VestaPrivilege
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = ps.privilegeRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create privilege record: %w", cErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityPrivilege, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (ps *privilegeService) Update(ctx context.Context, id uuid.UUID, input *types.VestaPrivilege) (*types.VestaPrivilege, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validatePrivilege(input); err != nil {
		return nil, err
	}

	var updated *types.VestaPrivilege
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.privilegeRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("privilege record not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = ps.privilegeRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update privilege record: %w", uErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityPrivilege, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	ps.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (ps *privilegeService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ps.privilegeRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("privilege record not found: %w", gErr)
		}
		if dErr := ps.privilegeRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete privilege record: %w", dErr)
		}
		return ps.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityPrivilege, id, old, nil)
	}); err != nil {
		return err
	}
	ps.snapshotCache.Invalidate(ctx)
	return nil
}
