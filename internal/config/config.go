package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/contactlabels/internal/labels"
)

const envPrefix = "CONTACTLABELS"

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig            `mapstructure:"database"`
	Log      LogConfig                 `mapstructure:"log"`
	UI       UIConfig                  `mapstructure:"ui"`
	Labels   map[string][]labels.Entry `mapstructure:"labels"`
	Keys     map[string][]string       `mapstructure:"keys"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
	Seed bool   `mapstructure:"seed"`
}

// LogConfig controls the rotating log file. The terminal belongs to the UI.
type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string `mapstructure:"title"`
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".local", "share", "contactlabels")
}

// DefaultPath is where the config file lives unless overridden.
func DefaultPath() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "contactlabels", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", filepath.Join(dataDir(), "contacts.db"))
	v.SetDefault("database.seed", true)
	v.SetDefault("log.path", filepath.Join(dataDir(), "contactlabels.log"))
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("ui.title", "Contacts")
}

// Load reads configuration from path (or DefaultPath when empty) and env.
// Env var overrides use prefix CONTACTLABELS_. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = "Contacts"
	}
	return c, nil
}

// Catalog builds the label catalog from the configured overrides.
func (c Config) Catalog() (*labels.Catalog, error) {
	return labels.NewCatalog(c.Labels)
}

// WriteDefault writes a starter config file with the built-in label sets.
// An existing file is left untouched.
func WriteDefault(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s: %w", path, os.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	for kind, set := range labels.Defaults() {
		entries := make([]map[string]any, 0, set.Len())
		for _, e := range set.Entries() {
			entries = append(entries, map[string]any{"key": e.Key, "label": e.Label})
		}
		v.Set("labels."+string(kind), entries)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
