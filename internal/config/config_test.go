package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "./blog.db", cfg.DatabasePath)
	require.Equal(t, 168*time.Hour, cfg.TokenLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRATION", "24h")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.ServerPort)
	require.Equal(t, 24*time.Hour, cfg.TokenLifetime)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION", "soon")

	_, err := Load()
	require.Error(t, err)
}
