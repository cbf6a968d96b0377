package configs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ORCHARDCTL"

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	userConfigs *Config
}

func IsDevMode() bool {
	environment, exists := os.LookupEnv(envPrefix + "_ENV")
	return exists && environment == "develop"
}

// New loads the user config (~/.orchardctl/config.json) and ORCHARDCTL_*
// environment variables. A missing config file is not an error.
func New() *Configs {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return NewWithPath(filepath.Join(home, ".orchardctl", "config.json"))
}

func NewWithPath(configPath string) *Configs {
	userViper := viper.New()
	userViper.SetConfigFile(configPath)
	userViper.SetEnvPrefix(envPrefix)
	userViper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	userViper.AutomaticEnv()
	_ = userViper.ReadInConfig()

	return &Configs{
		userConfigs: &Config{
			viper:      userViper,
			configPath: configPath,
		},
	}
}

// BindFlags makes command flags the highest-precedence source for their keys.
func (c *Configs) BindFlags(flags *pflag.FlagSet) error {
	return c.userConfigs.viper.BindPFlags(flags)
}

func (c *Configs) ConfigPath() string {
	return c.userConfigs.configPath
}

func (c *Configs) unmarshalConfig(config *Config, data interface{}) error {
	return config.viper.Unmarshal(data)
}
