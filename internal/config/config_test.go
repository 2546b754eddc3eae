package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: a config file that only sets skip-invalid
		path := writeConfig(t, "skip-invalid: false\n")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: defaults are applied
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.SkipInvalid)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "score:", conf.Redis.KeyPrefix)
	})

	t.Run("File values", func(t *testing.T) {
		// Given: a config file with every field set
		path := writeConfig(t, `log-level: debug
skip-invalid: true
redis:
  enabled: true
  host: redis
  port: "6380"
  key-prefix: "bowling:"
`)

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the file values are used
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.SkipInvalid)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "bowling:", conf.Redis.KeyPrefix)
	})

	t.Run("Environment overrides file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Redis address needs host and port", func(t *testing.T) {
		// Given: a redis section without a port
		conf := &Config{Redis: Redis{Host: "localhost"}}

		// When: the address is built
		// Then: it is empty
		assert.Empty(t, conf.Redis.GetRedisAddr())
	})

	t.Run("Missing file panics", func(t *testing.T) {
		// When: a config file that does not exist is loaded
		// Then: MustLoad panics
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
