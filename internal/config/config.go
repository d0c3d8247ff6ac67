// Package config loads routine settings from defaults, an optional YAML file,
// a .env file and ROUTINE_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"routine/internal/logging"
	"routine/internal/storage"
)

const EnvPrefix = "ROUTINE"

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StorageConfig selects where the task lists are persisted.
type StorageConfig struct {
	// Driver is one of sqlite, redis, memory.
	Driver string `mapstructure:"driver"`
	// Path is the SQLite database file.
	Path      string `mapstructure:"path"`
	RedisURL  string `mapstructure:"redis_url"`
	KeyPrefix string `mapstructure:"key_prefix"`
	DailyKey  string `mapstructure:"daily_key"`
	WeeklyKey string `mapstructure:"weekly_key"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	// File is where JSON logs go; empty means stderr.
	File string `mapstructure:"file"`
}

// Options converts the storage settings for storage.OpenKV.
func (c StorageConfig) Options() storage.Options {
	return storage.Options{
		Driver:    c.Driver,
		Path:      c.Path,
		RedisURL:  c.RedisURL,
		KeyPrefix: c.KeyPrefix,
	}
}

func Default() *Config {
	dbPath, err := storage.DefaultDBPath()
	if err != nil {
		dbPath = ".routine.db"
	}
	return &Config{
		Storage: StorageConfig{
			Driver:    storage.DriverSQLite,
			Path:      dbPath,
			RedisURL:  "redis://localhost:6379/0",
			DailyKey:  "dailyTasks",
			WeeklyKey: "weeklyTasks",
		},
		Logging: LoggingConfig{
			Level: logging.LevelWarn,
		},
	}
}

// SetDefaults registers defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("storage.redis_url", d.Storage.RedisURL)
	v.SetDefault("storage.key_prefix", d.Storage.KeyPrefix)
	v.SetDefault("storage.daily_key", d.Storage.DailyKey)
	v.SetDefault("storage.weekly_key", d.Storage.WeeklyKey)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", d.Logging.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration into a fresh viper instance. An explicit file must
// exist; the default file is optional.
func Load(file string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	} else {
		v.SetConfigFile(ConfigFile())
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", ConfigFile(), err)
		}
	}

	// ROUTINE_DB points straight at the database file and beats the config file.
	if p := os.Getenv(storage.DBPathEnv); p != "" {
		v.Set("storage.path", p)
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Path = expandHome(cfg.Storage.Path)
	cfg.Logging.File = expandHome(cfg.Logging.File)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case storage.DriverSQLite:
		if c.Storage.Path == "" {
			errs = append(errs, errors.New("storage.path is required for the sqlite driver"))
		}
	case storage.DriverRedis:
		if c.Storage.RedisURL == "" {
			errs = append(errs, errors.New("storage.redis_url is required for the redis driver"))
		}
	case storage.DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q must be one of sqlite, redis, memory", c.Storage.Driver))
	}
	if strings.TrimSpace(c.Storage.DailyKey) == "" || strings.TrimSpace(c.Storage.WeeklyKey) == "" {
		errs = append(errs, errors.New("storage.daily_key and storage.weekly_key must be set"))
	} else if c.Storage.DailyKey == c.Storage.WeeklyKey {
		errs = append(errs, errors.New("storage.daily_key and storage.weekly_key must differ"))
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		errs = append(errs, fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level))
	}
	return errors.Join(errs...)
}

// ConfigDir returns $XDG_CONFIG_HOME/routine or ~/.config/routine.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "routine")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".routine"
	}
	return filepath.Join(home, ".config", "routine")
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
