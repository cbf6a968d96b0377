package controller

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orchardctl/cli/configs"
	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

// ResolveTarget turns the web project argument into a TargetEnvironment. The
// path may be the project directory or a compiled artifact.
func ResolveTarget(path string) (*entity.TargetEnvironment, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.InvalidTarget, err, "%q", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.New(errors.InvalidTarget, "the web project path is not found or not accessible! (%s)", path)
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(abs), constants.ArtifactExtension) {
			return nil, errors.New(errors.InvalidTarget, "the web project path must be a %s file or a directory (%s)",
				constants.ArtifactExtension, path)
		}
		name := filepath.Base(abs)
		return &entity.TargetEnvironment{
			ProjectPath:  filepath.Dir(abs),
			SiteName:     strings.TrimSuffix(name, filepath.Ext(name)),
			ArtifactPath: abs,
		}, nil
	}

	env := &entity.TargetEnvironment{
		ProjectPath: abs,
		SiteName:    filepath.Base(abs),
	}
	env.ArtifactPath, err = ResolveArtifact(env.ProjectPath, env.SiteName)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// RemoveState deletes the App_Data directory of the project.
func RemoveState(projectPath string) error {
	dir := filepath.Join(projectPath, constants.StateDirectory)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}

	ui.Info("Deleting %s folder found in %q.", constants.StateDirectory, dir)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("could not delete %q: %w", dir, err)
	}
	return nil
}

// Reset brings the site back to a freshly set up state: stop running hosts,
// wipe local state, build, provision the database, launch and run setup.
func (c *Controller) Reset(ctx context.Context, req *entity.ResetRequest) (*entity.ResetResponse, error) {
	if req.Database.Kind == entity.DatabaseServer && req.Database.Server == nil {
		return nil, errors.New(errors.InvalidDatabaseMode, "server-backed database mode without a target")
	}

	env, err := ResolveTarget(req.WebProjectPath)
	if err != nil {
		return nil, err
	}
	env.Port = req.Port

	processes, err := c.FindHostProcesses(ctx, env.SiteName)
	if err != nil {
		return nil, err
	}
	if err := c.TerminateAll(ctx, processes); err != nil {
		return nil, err
	}

	if err := RemoveState(env.ProjectPath); err != nil {
		return nil, err
	}

	artifact, err := c.EnsureArtifact(ctx, env, req.Rebuild)
	if err != nil {
		return nil, err
	}
	ui.Success("Compiled web project found at %q!", artifact)

	res := &entity.ResetResponse{
		Environment:      env,
		DatabaseProvider: constants.ProviderSqlite,
	}
	var tablePrefix, connectionString string
	if req.Database.Kind == entity.DatabaseServer {
		target, err := c.ProvisionDatabase(ctx, req.Database.Server, req.WorkingDir)
		if err != nil {
			return nil, err
		}
		res.Database = target
		res.DatabaseProvider = constants.ProviderSqlConnection
		tablePrefix = target.TablePrefix
		connectionString = target.ConnectionString()
	}

	settings, err := configs.ReadLaunchSettings(env.ProjectPath, env.SiteName)
	if err != nil {
		return nil, err
	}
	applicationURL, err := c.ResolveURL(req.Port, settings)
	if err != nil {
		return nil, err
	}
	env.EnvironmentName = ResolveEnvironment(req.EnvironmentName, settings)

	launch, err := c.Launch(ctx, env, applicationURL, req.StartupTimeout)
	if err != nil {
		return nil, err
	}
	res.ApplicationURL = launch.ApplicationURL

	payload := NewSetupPayload(req.Setup, res.DatabaseProvider, tablePrefix, connectionString)
	if err := c.RunSetup(ctx, launch, payload); err != nil {
		return nil, err
	}

	if !req.KeepAlive {
		ui.Info("Keep alive not requested, shutting down application host process!")
		if err := c.Stop(launch.Process); err != nil {
			return nil, err
		}
		return res, nil
	}

	res.KeptAlive = true
	if req.Open {
		if err := c.openURL(launch.ApplicationURL); err != nil {
			ui.Warn("Could not open %s in the browser: %s", launch.ApplicationURL, err)
		}
	}
	return res, nil
}

// Pause waits for the user to press Enter.
func (c *Controller) Pause() error {
	return c.pause()
}
