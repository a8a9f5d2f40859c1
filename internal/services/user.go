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

type UserService interface {
	GetMe(ctx context.Context) (*types.User, error)
	List(ctx context.Context) ([]*types.User, error)
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetMe(ctx context.Context) (*types.User, error) {
	rd, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	found, err := us.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("user not found")
	}
	return found[0], nil
}

func (us *userService) List(ctx context.Context) ([]*types.User, error) {
	if _, err := requireRole(ctx, types.RoleAdmin); err != nil {
		return nil, err
	}
	return us.userRepo.List(ctx, nil)
}

func (us *userService) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	rd, err := requireRole(ctx, types.RoleAdmin)
	if err != nil {
		return err
	}
	if roleLevel(role) < 0 {
		return fmt.Errorf("unknown role %q", role)
	}
	if rd.UserID == userID {
		return fmt.Errorf("cannot change your own role")
	}
	return us.userRepo.UpdateRole(ctx, nil, userID, role)
}
