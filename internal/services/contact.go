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

const entityContact = "contact"

type ContactService interface {
	List(ctx context.Context) ([]*types.Contact, error)
	ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*types.Contact, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Contact, error)
	Create(ctx context.Context, input *types.Contact) (*types.Contact, error)
	Update(ctx context.Context, id uuid.UUID, input *types.Contact) (*types.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactService struct {
	db           *gorm.DB
	log          *logger.Logger
	contactRepo  repos.ContactRepo
	auditService AuditService
}

// Contacts are not part of the dashboard snapshot, so mutations here
// skip cache invalidation.
func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo, auditService AuditService) ContactService {
	serviceLog := log.With("service", "ContactService")
	return &contactService{
		db:           db,
		log:          serviceLog,
		contactRepo:  contactRepo,
		auditService: auditService,
	}
}

func (cs *contactService) List(ctx context.Context) ([]*types.Contact, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.contactRepo.List(ctx, nil)
}

func (cs *contactService) ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*types.Contact, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.contactRepo.ListByFacilityID(ctx, nil, facilityID)
}

func (cs *contactService) Get(ctx context.Context, id uuid.UUID) (*types.Contact, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}
	return cs.contactRepo.GetByID(ctx, nil, id)
}

func (cs *contactService) Create(ctx context.Context, input *types.Contact) (*types.Contact, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a contact name is required")
	}

	var created *types.Contact
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		input.ID = uuid.New()
		var cErr error
		created, cErr = cs.contactRepo.Create(ctx, tx, input)
		if cErr != nil {
			return fmt.Errorf("failed to create contact: %w", cErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionCreate, entityContact, created.ID, nil, created)
	}); err != nil {
		return nil, err
	}
	return created, nil
}

func (cs *contactService) Update(ctx context.Context, id uuid.UUID, input *types.Contact) (*types.Contact, error) {
	rd, err := requireRole(ctx, types.RoleEditor)
	if err != nil {
		return nil, err
	}
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("a contact name is required")
	}

	var updated *types.Contact
	if err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.contactRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("contact not found: %w", gErr)
		}
		oldCopy := *old

		input.ID = old.ID
		input.CreatedAt = old.CreatedAt
		var uErr error
		updated, uErr = cs.contactRepo.Update(ctx, tx, input)
		if uErr != nil {
			return fmt.Errorf("failed to update contact: %w", uErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionUpdate, entityContact, id, &oldCopy, updated)
	}); err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *contactService) Delete(ctx context.Context, id uuid.UUID) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		old, gErr := cs.contactRepo.GetByID(ctx, tx, id)
		if gErr != nil {
			return fmt.Errorf("contact not found: %w", gErr)
		}
		if dErr := cs.contactRepo.Delete(ctx, tx, id); dErr != nil {
			return fmt.Errorf("failed to delete contact: %w", dErr)
		}
		return cs.auditService.Record(ctx, tx, rd, types.AuditActionDelete, entityContact, id, old, nil)
	})
}
