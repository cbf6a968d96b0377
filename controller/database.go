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

// SolutionFolderName walks up from dir to the first directory holding a
// solution file and returns that directory's name.
func SolutionFolderName(dir string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for current := start; ; {
		if hasSolutionFile(current) {
			return filepath.Base(current), nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.New(errors.SolutionNotFound,
				"no solution folder was found to create the database name suffix in %q or its parents", start)
		}
		current = parent
	}
}

func hasSolutionFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(constants.SolutionPattern, entry.Name()); ok {
			return true
		}
	}
	return false
}

// ProvisionDatabase creates the target database, suffixing its name with the
// solution folder first when requested, and returns the target used for this
// run. The caller's target is never modified. An existing database is only
// acceptable when a table prefix was given.
func (c *Controller) ProvisionDatabase(ctx context.Context, requested *entity.DatabaseTarget, workingDir string) (*entity.DatabaseTarget, error) {
	target := *requested
	if target.SuffixWithFolder {
		folder, err := SolutionFolderName(workingDir)
		if err != nil {
			return nil, err
		}
		target.DatabaseName = target.DatabaseName + "_" + folder
	}
	ui.Info("Using the following database name: %q.", target.DatabaseName)

	created, err := c.CreateDatabase(ctx, target.ServerName, target.DatabaseName, entity.CreateDatabaseOptions{
		Force:       target.Force,
		Credentials: target.Credentials,
	})
	if err != nil {
		return nil, err
	}

	switch {
	case created:
		ui.Success("Database %q created!", target.QualifiedName())
	case target.TablePrefix == "":
		return nil, errors.New(errors.ProvisioningError, "Database %q could not be created!", target.QualifiedName())
	default:
		ui.Info("The specified database already exists! Attempting to run setup using the %q table prefix.", target.TablePrefix)
	}
	return &target, nil
}

func (c *Controller) CreateDatabase(ctx context.Context, serverName, name string, opts entity.CreateDatabaseOptions) (bool, error) {
	return c.gtwy.CreateDatabase(ctx, serverName, name, opts)
}

func (c *Controller) TestServer(ctx context.Context, serverName string, credentials *entity.SqlCredentials) bool {
	return c.gtwy.ServerReachable(ctx, serverName, credentials)
}
