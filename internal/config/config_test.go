package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "dailyTasks", cfg.Storage.DailyKey)
	assert.Equal(t, "weeklyTasks", cfg.Storage.WeeklyKey)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ".routine.db", filepath.Base(cfg.Storage.Path))
	require.NoError(t, cfg.Validate())
}

func TestLoadFromFileAndEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ROUTINE_LOGGING_LEVEL", "debug")

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
storage:
  driver: memory
  key_prefix: "me:"
logging:
  level: error
`), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "me:", cfg.Storage.KeyPrefix)
	assert.Equal(t, "debug", cfg.Logging.Level, "env wins over file")
	assert.Equal(t, "dailyTasks", cfg.Storage.DailyKey, "defaults fill the rest")
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ROUTINE_DB", filepath.Join(t.TempDir(), "env.db"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env.db", filepath.Base(cfg.Storage.Path))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"unknown driver": func(c *Config) { c.Storage.Driver = "etcd" },
		"same keys":      func(c *Config) { c.Storage.WeeklyKey = c.Storage.DailyKey },
		"empty key":      func(c *Config) { c.Storage.DailyKey = " " },
		"no redis url":   func(c *Config) { c.Storage.Driver = "redis"; c.Storage.RedisURL = "" },
		"bad level":      func(c *Config) { c.Logging.Level = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFromViperExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	v := viper.New()
	SetDefaults(v)
	v.Set("storage.path", "~/data/routine.db")

	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "routine.db"), cfg.Storage.Path)
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "routine", "config.yaml"), ConfigFile())
}

func TestRoutineDBBeatsConfigFilePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	envPath := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("ROUTINE_DB", envPath)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("storage:\n  path: /tmp/from-file.db\n"), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, envPath, cfg.Storage.Path)
}
