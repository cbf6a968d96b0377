package constants

import "time"

const (
	DefaultEnvironment   = "Development"
	DefaultSiteName      = "Orchard Core"
	DefaultTenantName    = "Default"
	DefaultRecipeName    = "Blog"
	DefaultSetupUserName = "admin"
	DefaultSetupPassword = "Password1!"
	DefaultSetupEmail    = "admin@localhost"
	DefaultDatabaseName  = "OrchardCore"
	DefaultSqlUser       = "sa"

	ProviderSqlite        = "Sqlite"
	ProviderSqlConnection = "SqlConnection"

	SetupPath          = "/api/tenants/setup"
	StateDirectory     = "App_Data"
	LaunchSettingsPath = "Properties/launchSettings.json"
	BuildConfiguration = "Debug"
	ArtifactExtension  = ".dll"
	SolutionPattern    = "*.sln"

	// Random fallback port range, upper bound exclusive.
	MinRandomPort = 2000
	MaxRandomPort = 64000

	// Session ids at or below this value belong to the engine itself.
	ReservedSessionThreshold = 50

	TemplatePackage = "OrchardCore.ProjectTemplates::1.0.0-*"
)

const (
	ReapSettleInterval    = time.Second
	LaunchInitialDelay    = 2 * time.Second
	HealthPollInterval    = time.Second
	DefaultStartupTimeout = 2 * time.Minute
)

// HostProcessNames are the executables that may be serving a site locally.
var HostProcessNames = []string{"dotnet", "iisexpress"}
