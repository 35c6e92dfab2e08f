package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))
	return dir
}

func minimalConfig(t *testing.T) string {
	return `
server:
  mode: test
storage:
  local_path: ` + filepath.Join(t.TempDir(), "uploads") + `
`
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, minimalConfig(t))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DataSourceStatic, cfg.Data.Source)
	assert.Equal(t, "./data/seed.yaml", cfg.Data.SeedPath)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 30*time.Minute, cfg.Redis.ReportTTL)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)

	_, err = os.Stat(cfg.Storage.LocalPath)
	assert.NoError(t, err, "local upload dir should be created")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := writeConfig(t, minimalConfig(t))
	t.Setenv("DATA_SOURCE", "database")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_NAME", "flagguard")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")
	t.Setenv("FLAGGUARD_SERVER_PORT", "9090")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, DataSourceDatabase, cfg.Data.Source)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "flagguard", cfg.Database.DBName)
	assert.Equal(t, "$2a$10$hash", cfg.Admin.PasswordHash)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	dir := writeConfig(t, minimalConfig(t)+`
data:
  source: spreadsheet
`)
	_, err := LoadConfig(dir)
	assert.ErrorContains(t, err, "data.source")
}

func validConfig() Config {
	return Config{
		Server:    ServerConfig{Port: "8080", Mode: "debug"},
		Storage:   StorageConfig{Type: "local", LocalPath: "./uploads"},
		RateLimit: RateLimitConfig{MaxRequests: 10, WindowMinutes: 1},
		Data:      DataConfig{Source: DataSourceStatic, SeedPath: "./data/seed.yaml"},
		Log:       LogConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "server.mode"},
		{name: "database without host", mutate: func(c *Config) { c.Data.Source = DataSourceDatabase }, wantErr: "database.host"},
		{name: "static without seed", mutate: func(c *Config) { c.Data.SeedPath = "" }, wantErr: "data.seed_path"},
		{name: "minio without endpoint", mutate: func(c *Config) { c.Storage.Type = "minio" }, wantErr: "minio_endpoint"},
		{name: "oss without bucket", mutate: func(c *Config) {
			c.Storage.Type = "oss"
			c.Storage.OSSEndpoint = "oss-cn-hangzhou.aliyuncs.com"
		}, wantErr: "oss_bucket"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Type = "ftp" }, wantErr: "storage.type"},
		{name: "tracing without collector", mutate: func(c *Config) { c.Tracing.Enabled = true }, wantErr: "collector_endpoint"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.MaxRequests = 0 }, wantErr: "rate_limit"},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: "log.level"},
		{name: "short secret in release", mutate: func(c *Config) {
			c.Server.Mode = "release"
			c.JWT.Secret = "short"
		}, wantErr: "JWT secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
