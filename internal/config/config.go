// Package config loads the server configuration from YAML.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so it can be written as "5m" in YAML.
type Duration time.Duration

// UnmarshalYAML parses the Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Redis holds the connection settings for the redis snapshot store.
type Redis struct {
	Address  string   `yaml:"address"`
	Password string   `yaml:"password"`
	DB       int      `yaml:"db"`
	TTL      Duration `yaml:"ttl"`
}

// Storage selects and configures the snapshot backend.
type Storage struct {
	// Backend is "memory" or "redis".
	Backend string `yaml:"backend"`
	Redis   Redis  `yaml:"redis"`
}

// Config is the full server configuration.
type Config struct {
	Port      string   `yaml:"port"`
	LogLevel  string   `yaml:"log_level"`
	Storage   Storage  `yaml:"storage"`
	Instances []string `yaml:"instances"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Port:     "8080",
		LogLevel: "info",
		Storage: Storage{
			Backend: "memory",
		},
		Instances: []string{"counter-a", "counter-b"},
	}
}

// Load reads a YAML config file, filling unset fields from Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if len(c.Instances) == 0 {
		return fmt.Errorf("at least one instance must be configured")
	}
	seen := make(map[string]bool)
	for _, id := range c.Instances {
		if id == "" {
			return fmt.Errorf("instance ids must not be empty")
		}
		if seen[id] {
			return fmt.Errorf("duplicate instance id %q", id)
		}
		seen[id] = true
	}
	return nil
}
