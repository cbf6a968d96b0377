package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/orchardctl/cli/errors"
	"github.com/orchardctl/cli/ui"
)

func (h *Handler) Reset(ctx context.Context, req *entity.CommandRequest) error {
	if err := h.cfg.BindFlags(req.Cmd.Flags()); err != nil {
		return err
	}
	cfg, err := h.cfg.GetResetConfig()
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	projectPath := "."
	if len(req.Args) > 0 {
		projectPath = req.Args[0]
	}
	resetReq, err := NewResetRequest(cfg, projectPath, wd)
	if err != nil {
		return err
	}

	res, err := h.ctrl.Reset(ctx, resetReq)
	if err != nil {
		return err
	}
	fmt.Fprint(ui.Output(), resetSummary(res))

	if resetReq.Pause {
		return h.ctrl.Pause()
	}
	return nil
}

// NewResetRequest validates the reset configuration and decides the database
// mode once for the whole run.
func NewResetRequest(cfg *entity.ResetConfig, projectPath, workingDir string) (*entity.ResetRequest, error) {
	mode, err := databaseMode(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	timeout := cfg.StartupTimeout
	if timeout < 0 {
		timeout = constants.DefaultStartupTimeout
	}

	return &entity.ResetRequest{
		WebProjectPath:  projectPath,
		WorkingDir:      workingDir,
		Port:            cfg.Port,
		EnvironmentName: cfg.Environment,
		Setup: entity.SetupOptions{
			SiteName:   withDefault(cfg.SiteName, constants.DefaultSiteName),
			TenantName: withDefault(cfg.TenantName, constants.DefaultTenantName),
			RecipeName: withDefault(cfg.RecipeName, constants.DefaultRecipeName),
			UserName:   withDefault(cfg.UserName, constants.DefaultSetupUserName),
			Password:   withDefault(cfg.Password, constants.DefaultSetupPassword),
			Email:      withDefault(cfg.Email, constants.DefaultSetupEmail),
		},
		Database:       mode,
		Rebuild:        cfg.Rebuild,
		KeepAlive:      cfg.KeepAlive,
		Pause:          cfg.Pause,
		Open:           cfg.Open,
		StartupTimeout: timeout,
	}, nil
}

func databaseMode(cfg *entity.ResetConfig) (entity.DatabaseMode, error) {
	provider := cfg.DatabaseProvider
	serverBacked := cfg.ServerName != "" || strings.EqualFold(provider, constants.ProviderSqlConnection)

	if !serverBacked {
		if provider != "" && !strings.EqualFold(provider, constants.ProviderSqlite) {
			return entity.DatabaseMode{}, errors.New(errors.InvalidDatabaseMode, "unknown database provider %q", provider)
		}
		if cfg.Force || cfg.SuffixWithFolder || cfg.SqlPassword != "" {
			return entity.DatabaseMode{}, errors.New(errors.InvalidDatabaseMode,
				"SQL Server options require --setup-database-server-name")
		}
		return entity.DatabaseMode{Kind: entity.DatabaseNone}, nil
	}

	if strings.EqualFold(provider, constants.ProviderSqlite) {
		return entity.DatabaseMode{}, errors.New(errors.InvalidDatabaseMode,
			"the %s provider cannot be used with a database server", constants.ProviderSqlite)
	}
	if cfg.ServerName == "" {
		return entity.DatabaseMode{}, errors.New(errors.InvalidDatabaseMode,
			"--setup-database-server-name is required for the %s provider", constants.ProviderSqlConnection)
	}

	user := withDefault(cfg.SqlUser, constants.DefaultSqlUser)
	credentials := entity.NewCredentials(user, cfg.SqlPassword)
	if credentials == nil && user != constants.DefaultSqlUser {
		ui.Warn("No SQL password given for %q, using integrated security.", cfg.SqlUser)
	}

	return entity.DatabaseMode{
		Kind: entity.DatabaseServer,
		Server: &entity.DatabaseTarget{
			ServerName:       cfg.ServerName,
			DatabaseName:     withDefault(cfg.DatabaseName, constants.DefaultDatabaseName),
			TablePrefix:      cfg.TablePrefix,
			Credentials:      credentials,
			Force:            cfg.Force,
			SuffixWithFolder: cfg.SuffixWithFolder,
		},
	}, nil
}

func resetSummary(res *entity.ResetResponse) string {
	values := map[string]string{
		"Site":              res.Environment.SiteName,
		"Artifact":          res.Environment.ArtifactPath,
		"URL":               res.ApplicationURL,
		"Environment":       res.Environment.EnvironmentName,
		"Database provider": res.DatabaseProvider,
	}
	if res.Database != nil {
		values["Database"] = res.Database.QualifiedName()
		values["Connection string"] = res.Database.MaskedConnectionString()
		if res.Database.TablePrefix != "" {
			values["Table prefix"] = res.Database.TablePrefix
		}
	}

	status := ui.GrayText("stopped")
	if res.KeptAlive {
		status = ui.GreenText("running")
	}
	values["Host"] = status

	return fmt.Sprintf("\n%s\n%s", ui.Bold("🌳 Orchard Core reset complete"), ui.KeyValues(values))
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

