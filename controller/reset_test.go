package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTargetDirectory(t *testing.T) {
	project := filepath.Join(t.TempDir(), "Blog.Web")
	require.NoError(t, os.MkdirAll(project, 0o755))

	env, err := ResolveTarget(project)
	require.NoError(t, err)
	assert.Equal(t, project, env.ProjectPath)
	assert.Equal(t, "Blog.Web", env.SiteName)
	assert.Empty(t, env.ArtifactPath)

	artifact := writeArtifact(t, project, "net8.0", "Blog.Web")
	env, err = ResolveTarget(project)
	require.NoError(t, err)
	assert.Equal(t, artifact, env.ArtifactPath)
}

func TestResolveTargetArtifact(t *testing.T) {
	project := t.TempDir()
	artifact := writeArtifact(t, project, "net8.0", "Blog.Web")

	env, err := ResolveTarget(artifact)
	require.NoError(t, err)
	assert.Equal(t, "Blog.Web", env.SiteName)
	assert.Equal(t, artifact, env.ArtifactPath)
	assert.Equal(t, filepath.Dir(artifact), env.ProjectPath)
}

func TestResolveTargetInvalid(t *testing.T) {
	dir := t.TempDir()
	notAnArtifact := filepath.Join(dir, "readme.md")
	require.NoError(t, os.WriteFile(notAnArtifact, nil, 0o644))

	_, err := ResolveTarget(notAnArtifact)
	assert.True(t, errors.Is(err, errors.InvalidTarget))

	_, err = ResolveTarget(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, errors.InvalidTarget))
}

func TestRemoveState(t *testing.T) {
	captureOutput(t)
	project := t.TempDir()
	state := filepath.Join(project, "App_Data", "Sites", "Default")
	require.NoError(t, os.MkdirAll(state, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(state, "yessql.db"), []byte("x"), 0o644))

	require.NoError(t, RemoveState(project))
	_, err := os.Stat(filepath.Join(project, "App_Data"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, RemoveState(project))
}

// resetFixture is a web project without build output and with stale state.
func resetFixture(t *testing.T) (*testController, *entity.ResetRequest) {
	t.Helper()
	captureOutput(t)
	tc := newTestController(t)

	project := filepath.Join(t.TempDir(), "Blog.Web")
	require.NoError(t, os.MkdirAll(filepath.Join(project, "App_Data"), 0o755))
	buildWritesArtifact(t, tc.gtwy, "Blog.Web")
	tc.finder.processes = []*entity.ProcessInfo{
		{Pid: 31337, Name: "dotnet", CommandLine: "dotnet Blog.Web.dll"},
	}

	req := &entity.ResetRequest{
		WebProjectPath: project,
		WorkingDir:     project,
		Port:           5000,
		Setup:          testSetupOptions(),
		Database:       entity.DatabaseMode{Kind: entity.DatabaseNone},
		StartupTimeout: time.Minute,
	}
	return tc, req
}

func TestResetSqlite(t *testing.T) {
	tc, req := resetFixture(t)

	res, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []int{31337}, tc.killed)
	_, statErr := os.Stat(filepath.Join(req.WebProjectPath, "App_Data"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, []string{
		"dotnet build " + req.WebProjectPath + " --configuration Debug",
		"start",
		"probe",
		"setup",
	}, tc.gtwy.calls)

	assert.Equal(t, "http://localhost:5000", res.ApplicationURL)
	assert.Equal(t, "Sqlite", res.DatabaseProvider)
	assert.Nil(t, res.Database)
	assert.False(t, res.KeptAlive)
	assert.Equal(t, "Development", res.Environment.EnvironmentName)
	assert.NotEmpty(t, res.Environment.ArtifactPath)

	payload := tc.gtwy.setupPayload
	assert.Equal(t, "Sqlite", payload.DatabaseProvider)
	assert.Empty(t, payload.ConnectionString)
	assert.Equal(t, "Default", payload.TenantName)

	assert.True(t, tc.gtwy.process.killed)
	assert.Empty(t, tc.opened)
}

func TestResetUsesLaunchSettings(t *testing.T) {
	tc, req := resetFixture(t)
	req.Port = 0
	settings := filepath.Join(req.WebProjectPath, "Properties")
	require.NoError(t, os.MkdirAll(settings, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(settings, "launchSettings.json"), []byte(`{
  "profiles": {
    "Blog.Web": {
      "commandName": "Project",
      "applicationUrl": "https://localhost:5001;http://localhost:5002",
      "environmentVariables": { "ASPNETCORE_ENVIRONMENT": "Staging" }
    }
  }
}`), 0o644))

	res, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5002", res.ApplicationURL)
	assert.Equal(t, "Staging", res.Environment.EnvironmentName)
	assert.Contains(t, tc.gtwy.launchReq.Args, "Staging")
}

func TestResetSqlServer(t *testing.T) {
	tc, req := resetFixture(t)
	req.Database = entity.DatabaseMode{
		Kind: entity.DatabaseServer,
		Server: &entity.DatabaseTarget{
			ServerName:   ".",
			DatabaseName: "Blog",
			TablePrefix:  "blog",
			Credentials:  entity.NewCredentials("sa", "secret"),
			Force:        true,
		},
	}

	res, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SqlConnection", res.DatabaseProvider)
	assert.Equal(t, []string{"Blog"}, tc.gtwy.createCalls)

	payload := tc.gtwy.setupPayload
	assert.Equal(t, "SqlConnection", payload.DatabaseProvider)
	assert.Equal(t, "blog", payload.TablePrefix)
	assert.Equal(t, "Server=.;Database=Blog;User Id=sa;Password=secret;MultipleActiveResultSets=True;", payload.ConnectionString)
}

func TestResetTwiceWithForceIsRepeatable(t *testing.T) {
	tc, req := resetFixture(t)
	req.Database = entity.DatabaseMode{
		Kind:   entity.DatabaseServer,
		Server: &entity.DatabaseTarget{ServerName: ".", DatabaseName: "Blog", Force: true},
	}

	_, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)
	first := *tc.gtwy.setupPayload

	tc.gtwy.process = &fakeProcess{pid: 4243}
	_, err = tc.Reset(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, *tc.gtwy.setupPayload)
	assert.Equal(t, []string{"Blog", "Blog"}, tc.gtwy.createCalls)
}

func TestResetTwiceWithFolderSuffixKeepsName(t *testing.T) {
	tc, req := resetFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(req.WebProjectPath), "Blog.sln"), nil, 0o644))
	folder := filepath.Base(filepath.Dir(req.WebProjectPath))
	req.Database = entity.DatabaseMode{
		Kind: entity.DatabaseServer,
		Server: &entity.DatabaseTarget{
			ServerName:       ".",
			DatabaseName:     "Blog",
			Force:            true,
			SuffixWithFolder: true,
		},
	}

	res, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Blog_"+folder, res.Database.DatabaseName)

	tc.gtwy.process = &fakeProcess{pid: 4243}
	_, err = tc.Reset(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"Blog_" + folder, "Blog_" + folder}, tc.gtwy.createCalls)
	assert.Equal(t, "Blog", req.Database.Server.DatabaseName)
	assert.Contains(t, tc.gtwy.setupPayload.ConnectionString, "Database=Blog_"+folder+";")
}

func TestResetSuffixWithoutSolutionTouchesNoDatabase(t *testing.T) {
	tc, req := resetFixture(t)
	req.Database = entity.DatabaseMode{
		Kind: entity.DatabaseServer,
		Server: &entity.DatabaseTarget{
			ServerName:       ".",
			DatabaseName:     "Blog",
			SuffixWithFolder: true,
		},
	}

	_, err := tc.Reset(context.Background(), req)
	assert.True(t, errors.Is(err, errors.SolutionNotFound))
	assert.Empty(t, tc.gtwy.createCalls)
	assert.Nil(t, tc.gtwy.launchReq)
}

func TestResetSetupFailureLeavesNoProcess(t *testing.T) {
	tc, req := resetFixture(t)
	req.KeepAlive = true
	tc.gtwy.setupStatus = 500

	_, err := tc.Reset(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.HealthCheckFailed))
	assert.Contains(t, err.Error(), "500")
	exited, _ := tc.gtwy.process.Exited()
	assert.True(t, exited)
	assert.Empty(t, tc.opened)
}

func TestResetKeepAliveOpensBrowser(t *testing.T) {
	tc, req := resetFixture(t)
	req.KeepAlive = true
	req.Open = true

	res, err := tc.Reset(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.KeptAlive)
	assert.False(t, tc.gtwy.process.killed)
	assert.Equal(t, []string{"http://localhost:5000"}, tc.opened)
}

func TestResetInvalidTarget(t *testing.T) {
	tc, req := resetFixture(t)
	req.WebProjectPath = filepath.Join(req.WebProjectPath, "missing")

	_, err := tc.Reset(context.Background(), req)
	assert.True(t, errors.Is(err, errors.InvalidTarget))
	assert.Empty(t, tc.killed)
}

func TestResetRejectsServerModeWithoutTarget(t *testing.T) {
	tc, req := resetFixture(t)
	req.Database = entity.DatabaseMode{Kind: entity.DatabaseServer}

	_, err := tc.Reset(context.Background(), req)
	assert.True(t, errors.Is(err, errors.InvalidDatabaseMode))
}
