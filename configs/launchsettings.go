package configs

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/orchardctl/cli/constants"
	"github.com/orchardctl/cli/entity"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadLaunchSettings reads the profile named after the site from the
// project's launchSettings.json. It returns nil when the file does not exist.
func ReadLaunchSettings(projectPath, profile string) (*entity.LaunchSettings, error) {
	path := filepath.Join(projectPath, filepath.FromSlash(constants.LaunchSettingsPath))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	// Profile names usually contain dots, so "." cannot be the key delimiter.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("json")
	if err := v.ReadConfig(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	prefix := "profiles::" + profile + "::"
	return &entity.LaunchSettings{
		ApplicationURL:  v.GetString(prefix + "applicationUrl"),
		EnvironmentName: v.GetString(prefix + "environmentVariables::ASPNETCORE_ENVIRONMENT"),
	}, nil
}
