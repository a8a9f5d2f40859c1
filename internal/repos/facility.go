package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type FacilityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, facility *types.Facility) (*types.Facility, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Facility, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Facility, error)
	Update(ctx context.Context, tx *gorm.DB, facility *types.Facility) (*types.Facility, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type facilityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFacilityRepo(db *gorm.DB, baseLog *logger.Logger) FacilityRepo {
	repoLog := baseLog.With("repo", "FacilityRepo")
	return &facilityRepo{db: db, log: repoLog}
}

func (r *facilityRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *facilityRepo) Create(ctx context.Context, tx *gorm.DB, facility *types.Facility) (*types.Facility, error) {
	if err := r.conn(tx).WithContext(ctx).Create(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

func (r *facilityRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Facility, error) {
	var result types.Facility
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *facilityRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Facility, error) {
	var results []*types.Facility
	if err := r.conn(tx).WithContext(ctx).
		Order("name asc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *facilityRepo) Update(ctx context.Context, tx *gorm.DB, facility *types.Facility) (*types.Facility, error) {
	if err := r.conn(tx).WithContext(ctx).Save(facility).Error; err != nil {
		return nil, err
	}
	return facility, nil
}

func (r *facilityRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.Facility{}).Error
}
