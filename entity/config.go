package entity

import "time"

// ResetConfig mirrors the reset command's flags; values may also come from
// the user config file or ORCHARDCTL_* environment variables.
type ResetConfig struct {
	Port             int           `mapstructure:"port"`
	Environment      string        `mapstructure:"environment"`
	SiteName         string        `mapstructure:"setup-site-name"`
	TenantName       string        `mapstructure:"setup-tenant-name"`
	RecipeName       string        `mapstructure:"setup-recipe-name"`
	UserName         string        `mapstructure:"setup-user-name"`
	Password         string        `mapstructure:"setup-password"`
	Email            string        `mapstructure:"setup-email"`
	DatabaseProvider string        `mapstructure:"setup-database-provider"`
	TablePrefix      string        `mapstructure:"setup-database-table-prefix"`
	ServerName       string        `mapstructure:"setup-database-server-name"`
	DatabaseName     string        `mapstructure:"setup-database-name"`
	SqlUser          string        `mapstructure:"setup-database-sql-user"`
	SqlPassword      string        `mapstructure:"setup-database-sql-password"`
	Force            bool          `mapstructure:"force"`
	SuffixWithFolder bool          `mapstructure:"suffix-database-name-with-folder-name"`
	Rebuild          bool          `mapstructure:"rebuild"`
	KeepAlive        bool          `mapstructure:"keep-alive"`
	Pause            bool          `mapstructure:"pause"`
	Open             bool          `mapstructure:"open"`
	StartupTimeout   time.Duration `mapstructure:"startup-timeout"`
}

type DatabaseConfig struct {
	ServerName   string `mapstructure:"server"`
	DatabaseName string `mapstructure:"database"`
	UserName     string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Force        bool   `mapstructure:"force"`
}
