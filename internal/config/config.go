package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Datalake struct {
		Dir     string `yaml:"dir"`
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"datalake"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Bus struct {
		Topic string `yaml:"topic"`
	} `yaml:"bus"`
	Schedule struct {
		BatchCron string `yaml:"batch_cron"`
	} `yaml:"schedule"`
	API struct {
		ListenAddr      string `yaml:"listen_addr"`
		DefaultClientID string `yaml:"default_client_id"`
	} `yaml:"api"`
	Worker struct {
		StateFile string `yaml:"state_file"`
	} `yaml:"worker"`
	Notifier struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"notifier"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATALAKE_DIR"); v != "" {
		cfg.Datalake.Dir = v
	}
	if v := os.Getenv("DATALAKE_BASE_URL"); v != "" {
		cfg.Datalake.BaseURL = v
	}
	if v := os.Getenv("DATALAKE_API_KEY"); v != "" {
		cfg.Datalake.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("BUS_TOPIC"); v != "" {
		cfg.Bus.Topic = v
	}
	if v := os.Getenv("CRON_BATCH"); v != "" {
		cfg.Schedule.BatchCron = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.API.ListenAddr = v
	}
	if v := os.Getenv("DEFAULT_CLIENT_ID"); v != "" {
		cfg.API.DefaultClientID = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Notifier.WebhookURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Datalake.Dir == "" && cfg.Datalake.BaseURL == "" {
		cfg.Datalake.Dir = "data/datalake"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/invest_advisor.db"
	}
	if cfg.Bus.Topic == "" {
		cfg.Bus.Topic = "generate-recommendations"
	}
	if cfg.Schedule.BatchCron == "" {
		cfg.Schedule.BatchCron = "0 0 6 * * *"
	}
	if cfg.API.ListenAddr == "" {
		cfg.API.ListenAddr = ":8080"
	}
	if cfg.Worker.StateFile == "" {
		cfg.Worker.StateFile = "data/run_state.json"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Datalake.Dir == "" && c.Datalake.BaseURL == "" {
		return fmt.Errorf("datalake.dir or datalake.base_url is required")
	}
	if c.Bus.Topic == "" {
		return fmt.Errorf("bus.topic is required")
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("api.listen_addr is required")
	}
	return nil
}
