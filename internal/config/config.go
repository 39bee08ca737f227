package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the service's ambient knobs. The core pipeline takes
// no configuration beyond these; symbol maps are fixed in code.
type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Cache struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"fetch"`
}

func Default() *Config {
	cfg := &Config{Environment: "prod"}
	cfg.Server.Port = 3009
	cfg.Cache.TTL = time.Hour
	cfg.Fetch.Timeout = 30 * time.Second
	return cfg
}

// Load reads a YAML configuration file over the defaults. An empty
// path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Server.Port <= 0 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = time.Hour
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	return cfg, nil
}
