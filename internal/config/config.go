package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/utils"
)

// Config holds the server-level settings. Values come from an optional
// yaml file first, then env vars override field by field.
type Config struct {
	ListenAddr      string   `yaml:"listen_addr"`
	CORSOrigins     []string `yaml:"cors_origins"`
	JWTSecretKey    string   `yaml:"jwt_secret_key"`
	AccessTokenTTL  int      `yaml:"access_token_ttl"`
	RefreshTokenTTL int      `yaml:"refresh_token_ttl"`
	SnapshotTTL     int      `yaml:"snapshot_ttl"`
}

func defaults() Config {
	return Config{
		ListenAddr: ":8080",
		CORSOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		JWTSecretKey:    "defaultsecret",
		AccessTokenTTL:  3600,
		RefreshTokenTTL: 86400,
		SnapshotTTL:     300,
	}
}

func Load(path string, log *logger.Logger) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if uErr := yaml.Unmarshal(raw, &cfg); uErr != nil {
				return cfg, fmt.Errorf("failed to parse config file %s: %w", path, uErr)
			}
			log.Info("Loaded config file", "path", path)
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.ListenAddr = utils.GetEnv("LISTEN_ADDR", cfg.ListenAddr, log)
	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)
	cfg.AccessTokenTTL = utils.GetEnvAsInt("ACCESS_TOKEN_TTL", cfg.AccessTokenTTL, log)
	cfg.RefreshTokenTTL = utils.GetEnvAsInt("REFRESH_TOKEN_TTL", cfg.RefreshTokenTTL, log)
	cfg.SnapshotTTL = utils.GetEnvAsInt("SNAPSHOT_TTL", cfg.SnapshotTTL, log)

	return cfg, nil
}
