package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "DB_DRIVER", "SETTLE_SCOPE", "CORS_ORIGIN", "ADMIN_USERNAME"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "2000", cfg.AppPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "all", cfg.SettleScope)
	assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	assert.False(t, cfg.SeedAdmin())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SETTLE_SCOPE", "submitter")
	t.Setenv("IS_PROD", "true")
	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("ADMIN_EMAIL", "boss@example.com")
	t.Setenv("ADMIN_PASSWORD", "hunter22")

	cfg := LoadConfig()
	assert.Equal(t, "8081", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "submitter", cfg.SettleScope)
	assert.True(t, cfg.IsProd)
	assert.True(t, cfg.SeedAdmin())
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "3306", DBName: "game"}
	assert.Equal(t, "u:p@tcp(db:3306)/game?parseTime=true", cfg.MySQLDSN())
}
