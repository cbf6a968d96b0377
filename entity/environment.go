package entity

// TargetEnvironment is the web project being reset. ArtifactPath stays empty
// until a compiled artifact is known to exist.
type TargetEnvironment struct {
	ProjectPath     string
	SiteName        string
	ArtifactPath    string
	Port            int
	EnvironmentName string
}

// LaunchSettings is the subset of Properties/launchSettings.json the launcher uses.
type LaunchSettings struct {
	ApplicationURL  string
	EnvironmentName string
}
