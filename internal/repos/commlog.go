package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type CommLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, log *types.CommunicationLog) (*types.CommunicationLog, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CommunicationLog, error)
	ListByEntity(ctx context.Context, tx *gorm.DB, entityType string, entityID uuid.UUID) ([]*types.CommunicationLog, error)
	Update(ctx context.Context, tx *gorm.DB, log *types.CommunicationLog) (*types.CommunicationLog, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type commLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommLogRepo(db *gorm.DB, baseLog *logger.Logger) CommLogRepo {
	repoLog := baseLog.With("repo", "CommLogRepo")
	return &commLogRepo{db: db, log: repoLog}
}

func (r *commLogRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *commLogRepo) Create(ctx context.Context, tx *gorm.DB, clog *types.CommunicationLog) (*types.CommunicationLog, error) {
	if err := r.conn(tx).WithContext(ctx).Create(clog).Error; err != nil {
		return nil, err
	}
	return clog, nil
}

func (r *commLogRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CommunicationLog, error) {
	var result types.CommunicationLog
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *commLogRepo) ListByEntity(ctx context.Context, tx *gorm.DB, entityType string, entityID uuid.UUID) ([]*types.CommunicationLog, error) {
	var results []*types.CommunicationLog
	if err := r.conn(tx).WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("occurred_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *commLogRepo) Update(ctx context.Context, tx *gorm.DB, clog *types.CommunicationLog) (*types.CommunicationLog, error) {
	if err := r.conn(tx).WithContext(ctx).Save(clog).Error; err != nil {
		return nil, err
	}
	return clog, nil
}

func (r *commLogRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.CommunicationLog{}).Error
}
