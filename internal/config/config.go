// Package config loads the builder binaries' settings: defaults, then an
// optional YAML file, then FORMBUILDER_* variables from the environment or a
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/notify"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORMBUILDER_"

// Config is the formbuilder.yaml file format.
type Config struct {
	Storage    storage.Config `yaml:"storage"`
	StorageKey string         `yaml:"storage_key"`
	ExportDir  string         `yaml:"export_dir"`
	Listen     string         `yaml:"listen"`
	Title      string         `yaml:"title"`
	Theme      Theme          `yaml:"theme"`
	NoticeTTL  time.Duration  `yaml:"notice_ttl"`
	Log        Log            `yaml:"log"`
}

// Theme selects the standalone export theme.
type Theme struct {
	Name    string `yaml:"name,omitempty"`
	Variant string `yaml:"variant,omitempty"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Storage:    storage.Config{Driver: storage.DriverFile, Path: ".formbuilder"},
		StorageKey: storage.DefaultKey,
		ExportDir:  ".",
		Listen:     ":8080",
		NoticeTTL:  notify.DefaultTTL,
		Log:        Log{Level: "info"},
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration. path may be empty; a named file must exist.
// envFile is read with godotenv when present, and lookup values win over it.
// A nil lookup uses os.LookupEnv.
func Load(path, envFile string, lookup LookupFunc) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
		if values != nil {
			dotenv = values
		}
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) (string, bool) {
		key := EnvPrefix + name
		if value, ok := lookup(key); ok {
			return value, true
		}
		value, ok := dotenv[key]
		return value, ok
	}

	if err := cfg.applyEnv(get); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	strs := map[string]*string{
		"STORAGE_DRIVER": &c.Storage.Driver,
		"STORAGE_PATH":   &c.Storage.Path,
		"STORAGE_KEY":    &c.StorageKey,
		"EXPORT_DIR":     &c.ExportDir,
		"LISTEN":         &c.Listen,
		"TITLE":          &c.Title,
		"THEME":          &c.Theme.Name,
		"THEME_VARIANT":  &c.Theme.Variant,
		"LOG_LEVEL":      &c.Log.Level,
	}
	for name, target := range strs {
		if value, ok := get(name); ok {
			*target = value
		}
	}

	if value, ok := get("LOG_DEVELOPMENT"); ok {
		dev, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %sLOG_DEVELOPMENT: %w", EnvPrefix, err)
		}
		c.Log.Development = dev
	}
	if value, ok := get("NOTICE_TTL"); ok {
		ttl, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("config: %sNOTICE_TTL: %w", EnvPrefix, err)
		}
		c.NoticeTTL = ttl
	}
	return nil
}

// Validate checks the configuration for required fields and valid values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case "", storage.DriverMemory:
	case storage.DriverFile, storage.DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("config: storage driver %q needs a path", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("config: storage key is required")
	}
	if c.NoticeTTL <= 0 {
		return errors.New("config: notice_ttl must be positive")
	}
	return nil
}

// Save writes the configuration as YAML.
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
