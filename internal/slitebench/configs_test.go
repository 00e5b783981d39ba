package slitebench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("EmptyPathUsesDefaults", func(t *testing.T) {
		conf, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), conf)
	})

	t.Run("YAMLOverridesSubset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bench.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"simple:\n  insertUsers: 5\nlarge:\n  payloadBytes: 64\n",
		), 0o644))

		conf, err := loadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 5, conf.Simple.InsertUsers)
		assert.Equal(t, 64, conf.Large.PayloadBytes)

		// Untouched parameters keep their defaults.
		defaults := defaultConfig()
		assert.Equal(t, defaults.Simple.InsertGoroutines, conf.Simple.InsertGoroutines)
		assert.Equal(t, defaults.Many, conf.Many)
		assert.Equal(t, defaults.Large.InsertUsers, conf.Large.InsertUsers)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("simple: ["), 0o644))

		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}
