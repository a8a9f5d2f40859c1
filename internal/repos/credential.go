package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type CredentialRepo interface {
	Create(ctx context.Context, tx *gorm.DB, credential *types.Credential) (*types.Credential, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Credential, error)
	List(ctx context.Context, tx *gorm.DB) ([]types.Credential, error)
	Update(ctx context.Context, tx *gorm.DB, credential *types.Credential) (*types.Credential, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type credentialRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCredentialRepo(db *gorm.DB, baseLog *logger.Logger) CredentialRepo {
	repoLog := baseLog.With("repo", "CredentialRepo")
	return &credentialRepo{db: db, log: repoLog}
}

func (r *credentialRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *credentialRepo) Create(ctx context.Context, tx *gorm.DB, credential *types.Credential) (*types.Credential, error) {
	if err := r.conn(tx).WithContext(ctx).Create(credential).Error; err != nil {
		return nil, err
	}
	return credential, nil
}

func (r *credentialRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Credential, error) {
	var result types.Credential
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns every credential link, most recently updated first, so
// a group's first-seen row is also its most recently updated one.
func (r *credentialRepo) List(ctx context.Context, tx *gorm.DB) ([]types.Credential, error) {
	var results []types.Credential
	if err := r.conn(tx).WithContext(ctx).
		Order("updated_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *credentialRepo) Update(ctx context.Context, tx *gorm.DB, credential *types.Credential) (*types.Credential, error) {
	if err := r.conn(tx).WithContext(ctx).Save(credential).Error; err != nil {
		return nil, err
	}
	return credential, nil
}

func (r *credentialRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Credential{}).Error
}
