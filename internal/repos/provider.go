package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type ProviderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, provider *types.Provider) (*types.Provider, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Provider, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Provider, error)
	Update(ctx context.Context, tx *gorm.DB, provider *types.Provider) (*types.Provider, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type providerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProviderRepo(db *gorm.DB, baseLog *logger.Logger) ProviderRepo {
	repoLog := baseLog.With("repo", "ProviderRepo")
	return &providerRepo{db: db, log: repoLog}
}

func (r *providerRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *providerRepo) Create(ctx context.Context, tx *gorm.DB, provider *types.Provider) (*types.Provider, error) {
	if err := r.conn(tx).WithContext(ctx).Create(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

func (r *providerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Provider, error) {
	var result types.Provider
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *providerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Provider, error) {
	var results []*types.Provider
	if err := r.conn(tx).WithContext(ctx).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *providerRepo) Update(ctx context.Context, tx *gorm.DB, provider *types.Provider) (*types.Provider, error) {
	if err := r.conn(tx).WithContext(ctx).Save(provider).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

func (r *providerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Provider{}).Error
}
