package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DB_URL", "DB_MAX_CONNS", "DB_MIN_CONNS", "DB_MAX_CONN_LIFETIME",
		"DB_MAX_CONN_IDLE_TIME", "DB_DIAL_TIMEOUT", "DB_STATEMENT_TIMEOUT",
		"DUMP_DIR", "REPORT_PATH", "FARM_SEED_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()
	assert.Empty(t, cfg.Database.DSN)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
	assert.Equal(t, int32(5), cfg.Database.MinConns)
	assert.Equal(t, 3*time.Second, cfg.Database.DialTimeout)
	// Migration inputs have no baked-in defaults; the CLI flags decide.
	assert.Empty(t, cfg.Migration.DumpDir)
	assert.Empty(t, cfg.Migration.ReportPath)
	assert.Empty(t, cfg.Migration.SeedFile)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("DB_URL", "postgres://localhost:5432/agrobase")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("DB_DIAL_TIMEOUT", "5s")
	t.Setenv("DUMP_DIR", "/data/dump")
	t.Setenv("REPORT_PATH", "/data/report.xlsx")
	t.Setenv("FARM_SEED_FILE", "/data/seeds.json")

	cfg := LoadConfig()
	assert.Equal(t, "postgres://localhost:5432/agrobase", cfg.Database.DSN)
	assert.Equal(t, int32(7), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.DialTimeout)
	assert.Equal(t, "/data/dump", cfg.Migration.DumpDir)
	assert.Equal(t, "/data/report.xlsx", cfg.Migration.ReportPath)
	assert.Equal(t, "/data/seeds.json", cfg.Migration.SeedFile)
}

func TestConfigValidate(t *testing.T) {
	clearConfigEnv(t)

	cfg := LoadConfig()
	require.Error(t, cfg.Validate())

	cfg.Database.DSN = "postgres://localhost:5432/agrobase"
	require.Error(t, cfg.Validate())

	cfg.Migration.DumpDir = "/data/dump"
	assert.NoError(t, cfg.Validate())
}
