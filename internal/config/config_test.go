package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so no stray .env is read.
func chdirTemp(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{"PORT", "DATASET_PATH", "DATASET_SOURCE", "DB_DRIVER", "DATABASE_URL", "SQLITE_PATH", "WRITE_TIMEOUT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Food_Delivery_Times.csv", cfg.DatasetPath)
	assert.Equal(t, SourceCSV, cfg.DatasetSource)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, "data/deliveries.db", cfg.DSN())
}

func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SOURCE", " SQL ")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/deliveries")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SourceSQL, cfg.DatasetSource)
	assert.Equal(t, "postgres://u:p@localhost/deliveries", cfg.DSN())
}

func TestLoadFromDotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATASET_PATH", "")
	os.Unsetenv("DATASET_PATH")

	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("DATASET_PATH=other.csv\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DATASET_PATH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "other.csv", cfg.DatasetPath)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATASET_SOURCE", "s3")

	_, err := Load()
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("DELIVERY_TEST_KEY", "set")
	assert.Equal(t, "set", Get("DELIVERY_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", Get("DELIVERY_TEST_MISSING", "fallback"))
}
