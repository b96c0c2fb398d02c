package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "ENVIRONMENT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, "development", cfg.Server.Environment)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "3306", cfg.Database.Port)
	require.Equal(t, 25, cfg.Database.MaxOpenConns)
	require.Equal(t, 5, cfg.Database.MaxIdleConns)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg := Load()

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadIgnoresUnparsableInt(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")

	cfg := Load()

	require.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "3306",
			Username:     "socialbook_user",
			Password:     "secret",
			DatabaseName: "socialbook_db",
		},
	}

	require.Equal(t,
		"socialbook_user:secret@tcp(localhost:3306)/socialbook_db?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DSN())
}

func TestDSNFallsBackToLocalhost(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Username:     "u",
			DatabaseName: "d",
		},
	}

	require.Equal(t, "u:@tcp(localhost:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", cfg.DSN())
}
