package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "DATABASE_URL", "DB_DRIVER", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "TIMEZONE", "LOG_RETENTION_DAYS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 60, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT_MAX", "-4")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("TIMEZONE", "Europe/Istanbul")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 60, cfg.RateLimitMax, "non-positive values fall back")
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "Europe/Istanbul", cfg.Location().String())
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "n", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.DatabaseURL = "postgres://u:p@db/n"
	assert.Equal(t, "postgres://u:p@db/n", cfg.DSN())
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus_Mons"}
	assert.Equal(t, time.Local, cfg.Location())
}
