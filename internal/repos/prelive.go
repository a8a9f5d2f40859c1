package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type PreLiveRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *types.PreLiveRecord) (*types.PreLiveRecord, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PreLiveRecord, error)
	List(ctx context.Context, tx *gorm.DB) ([]types.PreLiveRecord, error)
	Update(ctx context.Context, tx *gorm.DB, record *types.PreLiveRecord) (*types.PreLiveRecord, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type preLiveRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreLiveRepo(db *gorm.DB, baseLog *logger.Logger) PreLiveRepo {
	repoLog := baseLog.With("repo", "PreLiveRepo")
	return &preLiveRepo{db: db, log: repoLog}
}

func (r *preLiveRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *preLiveRepo) Create(ctx context.Context, tx *gorm.DB, record *types.PreLiveRecord) (*types.PreLiveRecord, error) {
	if err := r.conn(tx).WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *preLiveRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PreLiveRecord, error) {
	var result types.PreLiveRecord
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *preLiveRepo) List(ctx context.Context, tx *gorm.DB) ([]types.PreLiveRecord, error) {
	var results []types.PreLiveRecord
	if err := r.conn(tx).WithContext(ctx).
		Order("updated_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *preLiveRepo) Update(ctx context.Context, tx *gorm.DB, record *types.PreLiveRecord) (*types.PreLiveRecord, error) {
	if err := r.conn(tx).WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *preLiveRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.PreLiveRecord{}).Error
}
