package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "eto_orders", cfg.Tables.Orders)
	assert.True(t, cfg.TaxRate().IsZero())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DEFAULT_TAX_RATE", "12.5")
	t.Setenv("ORDERS_TABLE", "orders_test")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "12.5", cfg.TaxRate().String())
	assert.Equal(t, "orders_test", cfg.Tables.Orders)
	assert.Equal(t, "http://localhost:8000", cfg.DynamoDB.Endpoint)
}

func TestLoad_Rejects(t *testing.T) {
	t.Run("unknown storage driver", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("STORAGE_DRIVER", "postgres")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative tax rate", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")
		t.Setenv("DEFAULT_TAX_RATE", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"7000\"\nstorage_driver: memory\ntables:\n  journeys: j_local\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "j_local", cfg.Tables.Journeys)
	assert.Equal(t, "eto_boqs", cfg.Tables.BOQs)
}
