package configs

import (
	"github.com/orchardctl/cli/entity"
)

func (c *Configs) GetResetConfig() (*entity.ResetConfig, error) {
	var cfg entity.ResetConfig
	if err := c.unmarshalConfig(c.userConfigs, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Configs) GetDatabaseConfig() (*entity.DatabaseConfig, error) {
	var cfg entity.DatabaseConfig
	if err := c.unmarshalConfig(c.userConfigs, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
