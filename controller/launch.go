package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/gateway"
	"github.com/orchardctl/cli/ui"
)

// FirstHTTPURL returns the first plain http entry of a semicolon separated
// URL list.
func FirstHTTPURL(urls string) string {
	for _, url := range strings.Split(urls, ";") {
		url = strings.TrimSpace(url)
		if strings.HasPrefix(strings.ToLower(url), "http://") {
			return url
		}
	}
	return ""
}

// ResolveURL picks the bind URL: an explicit port, then the launch settings
// profile, then a random free port on localhost.
func (c *Controller) ResolveURL(port int, settings *entity.LaunchSettings) (string, error) {
	if port > 0 {
		return fmt.Sprintf("http://localhost:%d", port), nil
	}
	if settings != nil {
		if url := FirstHTTPURL(settings.ApplicationURL); url != "" {
			return url, nil
		}
	}

	port, err := c.randomizer.PortBetween(constants.MinRandomPort, constants.MaxRandomPort)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://localhost:%d", port), nil
}

func ResolveEnvironment(name string, settings *entity.LaunchSettings) string {
	if name != "" {
		return name
	}
	if settings != nil && settings.EnvironmentName != "" {
		return settings.EnvironmentName
	}
	return constants.DefaultEnvironment
}

// LaunchArgs are the dotnet host arguments for running the artifact.
func LaunchArgs(env *entity.TargetEnvironment, applicationURL string) []string {
	return []string{
		env.ArtifactPath,
		"--urls", applicationURL,
		"--environment", env.EnvironmentName,
		"--webroot", "wwwroot",
		"--AuthorizeOrchardApiRequests", "true",
	}
}

// Launch starts the artifact and polls applicationURL until it answers 200.
// On any failure the process has been stopped by the time Launch returns.
// A zero timeout polls until the process exits or ctx is done.
func (c *Controller) Launch(ctx context.Context, env *entity.TargetEnvironment, applicationURL string, timeout time.Duration) (*entity.LaunchResult, error) {
	result := &entity.LaunchResult{
		ApplicationURL: applicationURL,
		State:          entity.LaunchNotStarted,
	}

	ui.Info("Starting .NET application host at %q!", applicationURL)
	result.State = entity.LaunchStarting
	process, err := c.gtwy.StartProcess(&entity.LaunchRequest{
		Executable: gateway.DotnetPath,
		Args:       LaunchArgs(env, applicationURL),
		Dir:        env.ProjectPath,
	})
	if err != nil {
		result.State = entity.LaunchCrashed
		return result, errors.Wrap(errors.ProcessCrashed, err, "could not start the application host")
	}
	result.Process = process

	result.State = entity.LaunchPolling
	if err := c.awaitHealthy(ctx, result, timeout); err != nil {
		if stopErr := c.Stop(process); stopErr != nil {
			ui.Warn("%s", stopErr)
		}
		return result, err
	}

	result.Started = true
	return result, nil
}

func (c *Controller) awaitHealthy(ctx context.Context, result *entity.LaunchResult, timeout time.Duration) error {
	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Waiting for the application to start",
	})
	defer ui.StopSpinner("")

	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	if err := sleep(ctx, c.timings.initialDelay); err != nil {
		return err
	}

	for {
		if err := sleep(ctx, c.timings.pollInterval); err != nil {
			return err
		}

		// An exited host is never probed again.
		if exited, code := result.Process.Exited(); exited {
			result.State = entity.LaunchCrashed
			return errors.New(errors.ProcessCrashed,
				"application host process exited with exit code %d! Check if another application host process "+
					"(IIS Express or dotnet) is running under a different user account using the same port and terminate it", code)
		}

		status, err := c.gtwy.Probe(ctx, result.ApplicationURL)
		if err == nil {
			if status != http.StatusOK {
				result.State = entity.LaunchCrashed
				return errors.New(errors.HealthCheckFailed,
					"application host process started, but %s returned status code %d", result.ApplicationURL, status)
			}
			result.State = entity.LaunchRunning
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ui.Debug("Application not ready yet: %s", err)

		if !deadline.IsZero() && !time.Now().Before(deadline) {
			result.State = entity.LaunchTimedOut
			return errors.New(errors.HealthCheckTimeout,
				"%s did not respond within %s", result.ApplicationURL, timeout)
		}
	}
}
