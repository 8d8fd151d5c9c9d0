package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satishbabariya/fixsql/internal/debug"
)

var AppFs = afero.NewOsFs()

const (
	configName = ".fixsql"
	envPrefix  = "FIXSQL"
	dotEnvFile = ".env"
)

// Config holds the ambient settings of a fixsql run. None of these change
// what the rewrite passes do.
type Config struct {
	Debug   bool
	NoColor bool
	Summary bool
}

// LoadConfig resolves settings from flags, FIXSQL_* environment variables,
// an optional .fixsql.yaml and FIXSQL_* entries in a local .env file.
func LoadConfig(fs afero.Fs, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(filepath.Join(home, ".config", "fixsql"))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)
	v.SetDefault("summary", false)

	// .env entries sit just above the built-in defaults
	if err := loadDotEnv(fs, v); err != nil {
		debug.Warn("ignoring .env", "error", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"debug":    "debug",
			"no_color": "no-color",
			"summary":  "summary",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	return &Config{
		Debug:   v.GetBool("debug"),
		NoColor: v.GetBool("no_color"),
		Summary: v.GetBool("summary"),
	}, nil
}

func loadDotEnv(fs afero.Fs, v *viper.Viper) error {
	f, err := fs.Open(dotEnvFile)
	if err != nil {
		return nil
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return err
	}

	prefix := envPrefix + "_"
	for name, value := range values {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		v.SetDefault(key, value)
	}
	return nil
}
