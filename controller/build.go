package controller

import (
	"context"
	"os"
	"path/filepath"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

// ResolveArtifact looks for <siteName>.dll in the build output of
// projectPath. Output directories are visited in lexical order and the first
// one holding the artifact wins. An empty path means nothing was found.
func ResolveArtifact(projectPath, siteName string) (string, error) {
	root := filepath.Join(projectPath, "bin", constants.BuildConfiguration)
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name(), siteName+constants.ArtifactExtension)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// Build runs a debug build of the project.
func (c *Controller) Build(ctx context.Context, projectPath string) error {
	code, err := c.gtwy.Dotnet(ctx, projectPath, "build", projectPath, "--configuration", constants.BuildConfiguration)
	if err != nil {
		return errors.Wrap(errors.BuildFailed, err, "could not run the build for %q", projectPath)
	}
	if code != 0 {
		return errors.New(errors.BuildFailed, "build of %q exited with code %d", projectPath, code)
	}
	return nil
}

// EnsureArtifact builds the project when a rebuild is requested or the
// artifact is missing, then records the resolved artifact on env.
func (c *Controller) EnsureArtifact(ctx context.Context, env *entity.TargetEnvironment, rebuild bool) (string, error) {
	switch {
	case rebuild:
		ui.Info("Rebuild requested!")
	case env.ArtifactPath == "" || !fileExists(env.ArtifactPath):
		ui.Info("Web project artifact not found, build is required!")
	default:
		return env.ArtifactPath, nil
	}

	if err := c.Build(ctx, env.ProjectPath); err != nil {
		return "", err
	}

	artifact, err := ResolveArtifact(env.ProjectPath, env.SiteName)
	if err != nil {
		return "", err
	}
	if artifact == "" {
		return "", errors.New(errors.BuildArtifactMissing,
			"project was successfully built at %q, but %s%s was not found", env.ProjectPath, env.SiteName, constants.ArtifactExtension)
	}

	env.ArtifactPath = artifact
	return artifact, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
