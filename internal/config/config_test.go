package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.DatabaseConfigured())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/app")
	t.Setenv("DATABASE_NAME", "choppinzskys")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/app", cfg.DatabaseURL)
	assert.Equal(t, "choppinzskys", cfg.DatabaseName)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestDatabaseConfiguredNeedsBothOptions(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost:5432/app"}
	assert.False(t, cfg.DatabaseConfigured())

	cfg = &Config{DatabaseName: "choppinzskys"}
	assert.False(t, cfg.DatabaseConfigured())
}
