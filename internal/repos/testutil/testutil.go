package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/types"
)

// DB opens a fresh in-memory SQLite database with the full schema.
// Postgres-side column defaults (uuid_generate_v4) do not exist here,
// so seed helpers assign IDs client-side.
func DB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Provider{},
		&types.Facility{},
		&types.Contact{},
		&types.Credential{},
		&types.PreLiveRecord{},
		&types.StateLicense{},
		&types.VestaPrivilege{},
		&types.CommunicationLog{},
		&types.AuditLog{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func Logger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func SeedUser(t *testing.T, db *gorm.DB, email, role string) *types.User {
	t.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "x",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedProvider(t *testing.T, db *gorm.DB, name string) *types.Provider {
	t.Helper()
	p := &types.Provider{ID: uuid.New(), Name: name}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return p
}

func SeedFacility(t *testing.T, db *gorm.DB, name string) *types.Facility {
	t.Helper()
	f := &types.Facility{ID: uuid.New(), Name: name}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed facility: %v", err)
	}
	return f
}
