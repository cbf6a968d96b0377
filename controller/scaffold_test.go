package controller

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffoldSolutionWithModuleAndTheme(t *testing.T) {
	tc := newTestController(t)
	root := filepath.Join(t.TempDir(), "Fancy")

	created, err := tc.Scaffold(context.Background(), &entity.ScaffoldRequest{
		Path:        root,
		Name:        "Fancy",
		ModuleName:  "Fancy.Core",
		ThemeName:   "Fancy.Theme",
		NuGetSource: "https://nuget.example.com/v3/index.json",
	})
	require.NoError(t, err)

	sln := filepath.Join(root, "Fancy.sln")
	web := filepath.Join(root, "src", "Fancy.Web", "Fancy.Web.csproj")
	module := filepath.Join(root, "src", "Modules", "Fancy.Core", "Fancy.Core.csproj")
	theme := filepath.Join(root, "src", "Themes", "Fancy.Theme", "Fancy.Theme.csproj")

	assert.Equal(t, []string{
		"dotnet new -i OrchardCore.ProjectTemplates::1.0.0-* --nuget-source https://nuget.example.com/v3/index.json",
		"dotnet new occms -o " + filepath.Join(root, "src", "Fancy.Web"),
		"dotnet new sln -o " + root + " -n Fancy",
		"dotnet sln " + sln + " add " + web,
		"dotnet new ocmodulecms -n Fancy.Core -o " + filepath.Join(root, "src", "Modules", "Fancy.Core"),
		"dotnet add " + web + " reference " + module,
		"dotnet sln " + sln + " add " + module,
		"dotnet new octheme -n Fancy.Theme -o " + filepath.Join(root, "src", "Themes", "Fancy.Theme"),
		"dotnet add " + web + " reference " + theme,
		"dotnet sln " + sln + " add " + theme,
	}, tc.gtwy.calls)

	gitignore := filepath.Join(root, ".gitignore")
	assert.Equal(t, []string{sln, web, module, theme, gitignore}, created)

	content, err := os.ReadFile(gitignore)
	require.NoError(t, err)
	assert.Contains(t, string(content), "App_Data/")
}

func TestScaffoldMinimal(t *testing.T) {
	tc := newTestController(t)
	root := t.TempDir()

	created, err := tc.Scaffold(context.Background(), &entity.ScaffoldRequest{Path: root, Name: "Site"})
	require.NoError(t, err)
	assert.Len(t, tc.gtwy.calls, 4)
	assert.Equal(t, "dotnet new -i OrchardCore.ProjectTemplates::1.0.0-*", tc.gtwy.calls[0])
	assert.Len(t, created, 3)
}

func TestScaffoldRefusesExistingGitignore(t *testing.T) {
	tc := newTestController(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("bin/\n"), 0o644))

	_, err := tc.Scaffold(context.Background(), &entity.ScaffoldRequest{Path: root, Name: "Site"})
	assert.True(t, errors.Is(err, errors.GitignoreExists))
	assert.Empty(t, tc.gtwy.calls)
}

func TestScaffoldStopsOnTemplateFailure(t *testing.T) {
	tc := newTestController(t)
	tc.gtwy.dotnet = func(dir string, args []string) (int, error) {
		if args[0] == "new" && args[1] == "occms" {
			return 2, nil
		}
		return 0, nil
	}

	_, err := tc.Scaffold(context.Background(), &entity.ScaffoldRequest{Path: t.TempDir(), Name: "Site"})
	assert.ErrorContains(t, err, "exited with code 2")
	assert.Len(t, tc.gtwy.calls, 2)
}
