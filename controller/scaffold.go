package controller

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
)

//go:embed templates/gitignore
var gitignoreTemplate []byte

// Scaffold creates a new Orchard Core solution from the project templates
// and returns the paths of everything it created, the solution file first.
func (c *Controller) Scaffold(ctx context.Context, req *entity.ScaffoldRequest) ([]string, error) {
	root, err := filepath.Abs(req.Path)
	if err != nil {
		return nil, err
	}
	gitignore := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(gitignore); err == nil {
		return nil, errors.New(errors.GitignoreExists, "%s", gitignore)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}

	install := []string{"new", "-i", constants.TemplatePackage}
	if req.NuGetSource != "" {
		install = append(install, "--nuget-source", req.NuGetSource)
	}
	if err := c.dotnet(ctx, root, install...); err != nil {
		return nil, err
	}

	solution := filepath.Join(root, req.Name+".sln")
	webDir := filepath.Join(root, "src", req.Name+".Web")
	webProject := filepath.Join(webDir, req.Name+".Web.csproj")

	if err := c.dotnet(ctx, root, "new", "occms", "-o", webDir); err != nil {
		return nil, err
	}
	if err := c.dotnet(ctx, root, "new", "sln", "-o", root, "-n", req.Name); err != nil {
		return nil, err
	}
	if err := c.dotnet(ctx, root, "sln", solution, "add", webProject); err != nil {
		return nil, err
	}
	created := []string{solution, webProject}

	extensions := []struct {
		name     string
		template string
		folder   string
	}{
		{req.ModuleName, "ocmodulecms", "Modules"},
		{req.ThemeName, "octheme", "Themes"},
	}
	for _, ext := range extensions {
		if ext.name == "" {
			continue
		}
		dir := filepath.Join(root, "src", ext.folder, ext.name)
		project := filepath.Join(dir, ext.name+".csproj")
		if err := c.dotnet(ctx, root, "new", ext.template, "-n", ext.name, "-o", dir); err != nil {
			return nil, err
		}
		if err := c.dotnet(ctx, root, "add", webProject, "reference", project); err != nil {
			return nil, err
		}
		if err := c.dotnet(ctx, root, "sln", solution, "add", project); err != nil {
			return nil, err
		}
		created = append(created, project)
	}

	if err := writeNewFile(gitignore, gitignoreTemplate); err != nil {
		if os.IsExist(err) {
			return nil, errors.New(errors.GitignoreExists, "%s", gitignore)
		}
		return nil, err
	}
	return append(created, gitignore), nil
}

func (c *Controller) dotnet(ctx context.Context, dir string, args ...string) error {
	code, err := c.gtwy.Dotnet(ctx, dir, args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("dotnet %s exited with code %d", strings.Join(args, " "), code)
	}
	return nil
}

func writeNewFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
