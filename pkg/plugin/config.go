package plugin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ConfigFile is read from the plugin's data directory when present.
const ConfigFile = "plugin.yaml"

// Config is the plugin configuration. Values come from defaults, then
// plugin.yaml, then GUIKIT_* environment variables.
type Config struct {
	// Prefix is prepended to messages sent to players.
	Prefix string `yaml:"prefix" env:"GUIKIT_PREFIX"`
	// Store selects page persistence: "memory" or "sqlite".
	Store     string `yaml:"store" env:"GUIKIT_STORE"`
	StorePath string `yaml:"store_path" env:"GUIKIT_STORE_PATH"`
	// ServerVersion is reported by the in-memory host.
	ServerVersion string `yaml:"server_version" env:"GUIKIT_SERVER_VERSION"`
	// CancelWord aborts a chat prompt.
	CancelWord string `yaml:"cancel_word" env:"GUIKIT_CANCEL_WORD"`
	Verbose    bool   `yaml:"verbose" env:"GUIKIT_VERBOSE"`
}

func DefaultConfig() Config {
	return Config{
		Prefix:        "&8[&6GUI&8] &7",
		Store:         "memory",
		StorePath:     "guikit.db",
		ServerVersion: "1.21.4",
		CancelWord:    "cancel",
	}
}

// LoadConfig reads dir/plugin.yaml if it exists and applies environment
// overrides on top.
func LoadConfig(dir string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read %s: %w", ConfigFile, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case "memory":
	case "sqlite":
		if strings.TrimSpace(c.StorePath) == "" {
			return errors.New("config: sqlite store needs store_path")
		}
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if strings.TrimSpace(c.CancelWord) == "" {
		c.CancelWord = "cancel"
	}
	return nil
}
