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

const entityLicense = "state_license"

type LicenseService interface {
	List(ctx context.Context) ([]types.StateLicense, error)
	Get(ctx context.Context, id uuid.UUID) (*types.StateLicense, error)
	Create(ctx context.Context, input *types.StateLicense) (*types.StateLicense, error)
	Update(ctx context.Context, id uuid.UUID, input *types.StateLicense) (*types.StateLicense, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type licenseService struct {
	db            *gorm.DB
	log           *logger.Logger
	licenseRepo   repos.LicenseRepo
	auditService  AuditService
	snapshotCache SnapshotCache
}

func NewLicenseService(db *gorm.DB, log *logger.Logger, licenseRepo repos.LicenseRepo, auditService AuditService, snapshotCache SnapshotCache) LicenseService {
	serviceLog := log.With("service", "LicenseService")
	return &licenseService{
		db:            db,
		log:           serviceLog,
		licenseRepo:   licenseRepo,
		auditService:  auditService,
		snapshotCache: snapshotCache,
	}
}

func (ls *licenseService) List(ctx context.Context) ([]types.StateLicense, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ls.licenseRepo.List(ctx, nil)
}

func (ls *licenseService) Get(ctx context.Context, id uuid.UUID) (*types.StateLicense, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return ls.licenseRepo.GetByID(ctx, nil, id)
}

func validateLicense(input *types.StateLicense) error {
	if input == nil {
		return fmt.Errorf("no license given")
	}
	if input.ProviderID == nil && (input.ProviderName == nil || *input.ProviderName == "") {
		return fmt.Errorf("a provider reference or provider name is required")
	}
	if input.State == nil || *input.State == "" {
		return fmt.Errorf("a license state is required")
	}
	return nil
}

func (ls *licenseService) Create(ctx context.Context, input *types.StateLicense) (*types.StateLicense, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateLicense(input); err != nil {
		return nil, err
	}

	var created *types.StateLicense
	if err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = ls.licenseRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create license: %w", cErr)
		}
		return ls.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityLicense, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	ls.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (ls *licenseService) Update(ctx context.Context, id uuid.UUID, input *types.StateLicense) (*types.StateLicense, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateLicense(input); err != nil {
		return nil, err
	}

	var updated *types.StateLicense
	if err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ls.licenseRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("license not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = ls.licenseRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update license: %w", uErr)
		}
		return ls.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityLicense, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	ls.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (ls *licenseService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := ls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := ls.licenseRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("license not found: %w", gErr)
		}
		if dErr := ls.licenseRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete license: %w", dErr)
		}
		return ls.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityLicense, id, old, nil)
	}); err != nil {
		return err
	}
	ls.snapshotCache.Invalidate(ctx)
	return nil
}
