package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SHARK"

// Config is the merged result of flags, SHARK_* environment variables and
// the optional config file, in that order of precedence.
type Config struct {
	Ports         string `mapstructure:"ports" validate:"required"`
	Workers       int    `mapstructure:"workers" validate:"min=1"`
	TimeoutMS     int    `mapstructure:"timeout-ms" validate:"min=1"`
	ReadTimeoutMS int    `mapstructure:"read-timeout-ms" validate:"min=1"`
	Probe         bool   `mapstructure:"probe"`
	Verbosity     string `mapstructure:"verbosity" validate:"oneof=none low high"`
	Output        string `mapstructure:"output" validate:"oneof=text table json yaml"`
	MetricsFile   string `mapstructure:"metrics-file"`
	HideEmpty     bool   `mapstructure:"hide-empty"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&cfgFile, "config", "c", "", "Config file (default is ./.shark.yaml or $HOME/.shark.yaml)")
	flags.BoolVarP(&versionRequested, "version", "", false, "Output version information and exit")
	flags.BoolVarP(&debug, "verbose", "v", false, "Enable verbose logging, same as --verbosity high")
	flags.StringP("ports", "p", "1:1024", "Ports to scan. Comma separated, ranges use a colon e.g. 22,80,443,8080:8090")
	flags.IntP("workers", "w", 4, "Parallel routines to scan on (alias --threads)")
	flags.IntP("timeout-ms", "t", 1000, "Connect timeout in MS")
	flags.Int("read-timeout-ms", 1000, "Banner read timeout in MS")
	flags.Bool("probe", false, "Send an HTTP GET to open ports and capture the response banner. Only use against hosts you trust")
	level := verbosity("none")
	flags.Var(&level, "verbosity", "Log verbosity. Must be one of none, low, high")
	flags.StringP("output", "o", "text", "Output format. Must be one of text, table, json, yaml")
	flags.String("metrics-file", "", "Write Prometheus metrics for the run to this file")
	flags.BoolP("hide-empty", "u", false, "Omit output for targets with no open ports")

	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "threads" {
			name = "workers"
		}
		return pflag.NormalizedName(name)
	})
}

func loadConfig(flags *pflag.FlagSet, file string) (*Config, error) {

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file '%s': %w", file, err)
		}
	} else {
		v.SetConfigName(".shark")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed '%s' (got '%v')", fe.Field(), fe.Tag(), fe.Value()))
			}
			return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
