package entity

import "time"

type SetupOptions struct {
	SiteName   string
	TenantName string
	RecipeName string
	UserName   string
	Password   string
	Email      string
}

// ResetRequest carries every validated input of a reset run.
type ResetRequest struct {
	WebProjectPath  string
	WorkingDir      string
	Port            int
	EnvironmentName string
	Setup           SetupOptions
	Database        DatabaseMode
	Rebuild         bool
	KeepAlive       bool
	Pause           bool
	Open            bool
	StartupTimeout  time.Duration
}

type ResetResponse struct {
	Environment      *TargetEnvironment
	ApplicationURL   string
	Database         *DatabaseTarget
	DatabaseProvider string
	KeptAlive        bool
}

type ScaffoldRequest struct {
	Path        string
	Name        string
	ModuleName  string
	ThemeName   string
	NuGetSource string
}
