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

const entityCredential = "credential"

type CredentialService interface {
	List(ctx context.Context) ([]types.Credential, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Credential, error)
	Create(ctx context.Context, input *types.Credential) (*types.Credential, error)
	Update(ctx context.Context, id uuid.UUID, input *types.Credential) (*types.Credential, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type credentialService struct {
	db             *gorm.DB
	log            *logger.Logger
	credentialRepo repos.CredentialRepo
	auditService   AuditService
	snapshotCache  SnapshotCache
}

func NewCredentialService(db *gorm.DB, log *logger.Logger, credentialRepo repos.CredentialRepo, auditService AuditService, snapshotCache SnapshotCache) CredentialService {
	serviceLog := log.With("service", "CredentialService")
	return &credentialService{
		db:             db,
		log:            serviceLog,
		credentialRepo: credentialRepo,
		auditService:   auditService,
		snapshotCache:  snapshotCache,
	}
}

func (cs *credentialService) List(ctx context.Context) ([]types.Credential, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.credentialRepo.List(ctx, nil)
}

func (cs *credentialService) Get(ctx context.Context, id uuid.UUID) (*types.Credential, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.credentialRepo.GetByID(ctx, nil, id)
}

func validateCredential(input *types.Credential) error {
	if input == nil {
		return fmt.Errorf("no credential given")
	}
	if input.ProviderID == nil && (input.ProviderName == nil || *input.ProviderName == "") {
		return fmt.Errorf("a provider reference or provider name is required")
	}
	if input.FacilityID == nil && (input.FacilityName == nil || *input.FacilityName == "") {
		return fmt.Errorf("a facility reference or facility name is required")
	}
	return nil
}

func (cs *credentialService) Create(ctx context.Context, input *types.Credential) (*types.Credential, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateCredential(input); err != nil {
		return nil, err
	}

	var created *types.Credential
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = cs.credentialRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create credential: %w", cErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityCredential, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	cs.snapshotCache.Invalidate(ctx)
	return created, nil
}

func (cs *credentialService) Update(ctx context.Context, id uuid.UUID, input *types.Credential) (*types.Credential, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if err := validateCredential(input); err != nil {
		return nil, err
	}

	var updated *types.Credential
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.credentialRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("credential not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = cs.credentialRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update credential: %w", uErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityCredential, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	cs.snapshotCache.Invalidate(ctx)
	return updated, nil
}

func (cs *credentialService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.credentialRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("credential not found: %w", gErr)
		}
		if dErr := cs.credentialRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete credential: %w", dErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityCredential, id, old, nil)
	}); err != nil {
		return err
	}
	cs.snapshotCache.Invalidate(ctx)
	return nil
}
