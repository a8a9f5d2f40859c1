package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/views"
)

// DashboardService loads the snapshot the view pipeline runs over:
// the four queryable relations in one shot. The snapshot is cached
// whole; any entity mutation invalidates it and the next render
// refetches everything.
type DashboardService interface {
	Render(ctx context.Context, state views.State) (views.Result, error)
	Snapshot(ctx context.Context) (*views.Snapshot, error)
}

type dashboardService struct {
	db             *gorm.DB
	log            *logger.Logger
	credentialRepo repos.CredentialRepo
	preLiveRepo    repos.PreLiveRepo
	licenseRepo    repos.LicenseRepo
	privilegeRepo  repos.PrivilegeRepo
	snapshotCache  SnapshotCache
}

func NewDashboardService(
	db *gorm.DB,
	log *logger.Logger,
	credentialRepo repos.CredentialRepo,
	preLiveRepo repos.PreLiveRepo,
	licenseRepo repos.LicenseRepo,
	privilegeRepo repos.PrivilegeRepo,
	snapshotCache SnapshotCache,
) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		db:             db,
		log:            serviceLog,
		credentialRepo: credentialRepo,
		preLiveRepo:    preLiveRepo,
		licenseRepo:    licenseRepo,
		privilegeRepo:  privilegeRepo,
		snapshotCache:  snapshotCache,
	}
}

func (ds *dashboardService) Snapshot(ctx context.Context) (*views.Snapshot, error) {
	if snap, ok := ds.snapshotCache.Get(ctx); ok {
		return snap, nil
	}

	credentials, err := ds.credentialRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	preLive, err := ds.preLiveRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pre-live records: %w", err)
	}
	licenses, err := ds.licenseRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load licenses: %w", err)
	}
	privileges, err := ds.privilegeRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load privileges: %w", err)
	}

	snap := &views.Snapshot{
		Credentials: credentials,
		PreLive:     preLive,
		Licenses:    licenses,
		Privileges:  privileges,
	}
	ds.snapshotCache.Set(ctx, snap)
	return snap, nil
}

func (ds *dashboardService) Render(ctx context.Context, state views.State) (views.Result, error) {
	if _, err := actorFromContext(ctx); err != nil {
		return views.Result{}, err
	}
	if !state.View.Valid() {
		return views.Result{}, fmt.Errorf("unknown view %q", state.View)
	}
	snap, err := ds.Snapshot(ctx)
	if err != nil {
		return views.Result{}, err
	}
	return views.Apply(state, *snap), nil
}
