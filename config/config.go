package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/instantsaver/instantsaver/constant"
	"github.com/instantsaver/instantsaver/filesystem"
	"github.com/instantsaver/instantsaver/where"
	"github.com/spf13/viper"
)

const fileType = "toml"

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config file if any.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(fileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Path is the location of the config file, whether it exists or not.
func Path() string {
	return filepath.Join(where.Config(), constant.App+"."+fileType)
}

// Parse converts raw command-line values to the type of the key's default.
func Parse(key string, raw []string) (any, error) {
	field, ok := Default[key]
	if !ok {
		return nil, fmt.Errorf("unknown key %s", key)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: missing value", key)
	}

	switch field.Value.(type) {
	case string:
		return raw[0], nil
	case int:
		n, err := strconv.Atoi(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid integer %q", key, raw[0])
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw[0])
		if err != nil {
			return nil, fmt.Errorf("%s: invalid boolean %q", key, raw[0])
		}
		return b, nil
	case []string:
		return raw, nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %s", key, field.TypeName())
	}
}

// Save writes the in-memory configuration, creating the file when needed.
func Save() error {
	err := viper.WriteConfigAs(Path())
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
