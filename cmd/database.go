package cmd

import (
	"context"

	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) databaseConfig(req *entity.CommandRequest) (*entity.DatabaseConfig, error) {
	if err := h.cfg.BindFlags(req.Cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := h.cfg.GetDatabaseConfig()
	if err != nil {
		return nil, err
	}
	if cfg.ServerName == "" {
		return nil, errors.New(errors.InvalidDatabaseMode, "--server is required")
	}
	return cfg, nil
}

func (h *Handler) DatabaseTest(ctx context.Context, req *entity.CommandRequest) error {
	cfg, err := h.databaseConfig(req)
	if err != nil {
		return err
	}

	ui.StartSpinner(&ui.SpinnerCfg{
		Message: "Connecting to " + cfg.ServerName,
	})
	reachable := h.ctrl.TestServer(ctx, cfg.ServerName, entity.NewCredentials(cfg.UserName, cfg.Password))
	ui.StopSpinner("")

	if !reachable {
		return errors.New(errors.ConnectionError, "could not connect to %q", cfg.ServerName)
	}
	ui.Success("SQL Server at %q is reachable.", cfg.ServerName)
	return nil
}

func (h *Handler) DatabaseCreate(ctx context.Context, req *entity.CommandRequest) error {
	cfg, err := h.databaseConfig(req)
	if err != nil {
		return err
	}
	if cfg.DatabaseName == "" {
		return errors.New(errors.InvalidDatabaseMode, "--database is required")
	}

	target := &entity.DatabaseTarget{
		ServerName:   cfg.ServerName,
		DatabaseName: cfg.DatabaseName,
		Credentials:  entity.NewCredentials(cfg.UserName, cfg.Password),
		Force:        cfg.Force,
	}
	created, err := h.ctrl.CreateDatabase(ctx, target.ServerName, target.DatabaseName, entity.CreateDatabaseOptions{
		Force:       target.Force,
		Credentials: target.Credentials,
	})
	if err != nil {
		return err
	}
	if !created {
		return errors.New(errors.ProvisioningError, "Database %q already exists", target.QualifiedName())
	}

	ui.Success("Database %q created!", target.QualifiedName())
	ui.Info("%s", ui.GrayText(target.MaskedConnectionString()))
	return nil
}
