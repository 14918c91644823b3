package config

import (
	"copytrade-analytics/pkg/config"
)

// Cache holds cache-specific configuration.
type Cache struct {
	StatsOverviewTTL string `mapstructure:"stats_overview_ttl"`
}

// Config holds the full configuration for the analytics service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	API      config.API      `mapstructure:"api"`
	Cache    Cache           `mapstructure:"cache"`
	Telegram config.Telegram `mapstructure:"telegram"`
}

// Load loads the analytics service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
