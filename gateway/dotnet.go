package gateway

import (
	"context"
	"os/exec"
	"strings"

	"github.com/orchardctl/cli/ui"
	"github.com/pkg/errors"
)

// DotnetPath is the dotnet executable used for builds, templates and launches.
var DotnetPath = "dotnet"

// RunCommand runs name with args in dir, streaming its output to the console.
// A non-zero exit is reported through the exit code, not the error.
func (g *Gateway) RunCommand(ctx context.Context, dir string, name string, args ...string) (int, error) {
	ui.Debug("$ %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = ui.Output()
	cmd.Stderr = ui.Output()

	err := cmd.Run()
	if exitError, ok := err.(*exec.ExitError); ok {
		return exitError.ExitCode(), nil
	}
	if err != nil {
		return -1, errors.Wrapf(err, "run %s", name)
	}
	return 0, nil
}

// Dotnet runs the dotnet CLI.
func (g *Gateway) Dotnet(ctx context.Context, dir string, args ...string) (int, error) {
	return g.RunCommand(ctx, dir, DotnetPath, args...)
}
