package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type LicenseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, license *types.StateLicense) (*types.StateLicense, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.StateLicense, error)
	List(ctx context.Context, tx *gorm.DB) ([]types.StateLicense, error)
	Update(ctx context.Context, tx *gorm.DB, license *types.StateLicense) (*types.StateLicense, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type licenseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLicenseRepo(db *gorm.DB, baseLog *logger.Logger) LicenseRepo {
	repoLog := baseLog.With("repo", "LicenseRepo")
	return &licenseRepo{db: db, log: repoLog}
}

func (r *licenseRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *licenseRepo) Create(ctx context.Context, tx *gorm.DB, license *types.StateLicense) (*types.StateLicense, error) {
	if err := r.conn(tx).WithContext(ctx).Create(license).Error; err != nil {
		return nil, err
	}
	return license, nil
}

func (r *licenseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.StateLicense, error) {
	var result types.StateLicense
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *licenseRepo) List(ctx context.Context, tx *gorm.DB) ([]types.StateLicense, error) {
	var results []types.StateLicense
	if err := r.conn(tx).WithContext(ctx).
		Order("updated_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *licenseRepo) Update(ctx context.Context, tx *gorm.DB, license *types.StateLicense) (*types.StateLicense, error) {
	if err := r.conn(tx).WithContext(ctx).Save(license).Error; err != nil {
		return nil, err
	}
	return license, nil
}

func (r *licenseRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.StateLicense{}).Error
}
