package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

type PrivilegeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, privilege *types.VestaPrivilege) (*types.VestaPrivilege, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.VestaPrivilege, error)
	List(ctx context.Context, tx *gorm.DB) ([]types.VestaPrivilege, error)
	Update(ctx context.Context, tx *gorm.DB, privilege *types.VestaPrivilege) (*types.VestaPrivilege, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type privilegeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPrivilegeRepo(db *gorm.DB, baseLog *logger.Logger) PrivilegeRepo {
	repoLog := baseLog.With("repo", "PrivilegeRepo")
	return &privilegeRepo{db: db, log: repoLog}
}

func (r *privilegeRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *privilegeRepo) Create(ctx context.Context, tx *gorm.DB, privilege *types.VestaPrivilege) (*types.VestaPrivilege, error) {
	if err := r.conn(tx).WithContext(ctx).Create(privilege).Error; err != nil {
		return nil, err
	}
	return privilege, nil
}

func (r *privilegeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.VestaPrivilege, error) {
	var result types.VestaPrivilege
	if err := r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *privilegeRepo) List(ctx context.Context, tx *gorm.DB) ([]types.VestaPrivilege, error) {
	var results []types.VestaPrivilege
	if err := r.conn(tx).WithContext(ctx).
		Order("updated_at desc").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *privilegeRepo) Update(ctx context.Context, tx *gorm.DB, privilege *types.VestaPrivilege) (*types.VestaPrivilege, error) {
	if err := r.conn(tx).WithContext(ctx).Save(privilege).Error; err != nil {
		return nil, err
	}
	return privilege, nil
}

func (r *privilegeRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.VestaPrivilege{}).Error
}
