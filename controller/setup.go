package controller

import (
	"context"
	"net/http"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

// NewSetupPayload assembles the tenant setup body. connectionString and
// tablePrefix are empty for the Sqlite provider.
func NewSetupPayload(opts entity.SetupOptions, provider, tablePrefix, connectionString string) *entity.SetupPayload {
	return &entity.SetupPayload{
		SiteName:         opts.SiteName,
		DatabaseProvider: provider,
		TablePrefix:      tablePrefix,
		ConnectionString: connectionString,
		RecipeName:       opts.RecipeName,
		UserName:         opts.UserName,
		Password:         opts.Password,
		Email:            opts.Email,
		TenantName:       opts.TenantName,
	}
}

// RunSetup posts the payload to the launched application. The application
// host is stopped before any failure is returned.
func (c *Controller) RunSetup(ctx context.Context, launch *entity.LaunchResult, payload *entity.SetupPayload) error {
	ui.Info("Application started, attempting to run setup!")

	res, err := c.gtwy.RunSetup(ctx, launch.ApplicationURL, payload)
	if err != nil {
		c.stopAfterFailure(launch)
		return errors.Wrap(errors.HealthCheckFailed, err, "setup request failed")
	}
	if res.StatusCode != http.StatusOK {
		c.stopAfterFailure(launch)
		if res.Body != "" {
			ui.Debug("%s", res.Body)
		}
		return errors.New(errors.HealthCheckFailed, "Setup failed with status code %d!", res.StatusCode)
	}

	ui.Success("Setup successful!")
	return nil
}

func (c *Controller) stopAfterFailure(launch *entity.LaunchResult) {
	if err := c.Stop(launch.Process); err != nil {
		ui.Warn("%s", err)
	}
}
