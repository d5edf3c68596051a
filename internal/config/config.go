// Package config loads drvctk configuration from defaults, an optional
// config file, environment variables, and command-line flags, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/go-drvctk/internal/dataset"
)

type Config struct {
	Dataset  DatasetConfig `mapstructure:"dataset"`
	LogLevel string        `mapstructure:"log_level"`
}

type DatasetConfig struct {
	Root     string `mapstructure:"root"`
	Subset   string `mapstructure:"subset"`
	URL      string `mapstructure:"url"`
	Download bool   `mapstructure:"download"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{
			Root:     "data",
			Subset:   string(dataset.SubsetTrain),
			URL:      dataset.DefaultURL,
			Download: false,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("dataset-root", defaults.Dataset.Root, "Directory holding the DR-VCTK archive and extracted tree")
	fs.String("dataset-subset", defaults.Dataset.Subset, "Dataset subset (train|test)")
	fs.String("dataset-url", defaults.Dataset.URL, "Archive download URL")
	fs.Bool("dataset-download", defaults.Dataset.Download, "Download the archive when the dataset is absent")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	v.SetEnvPrefix("DRVCTK")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("drvctk")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("dataset.root", c.Dataset.Root)
	v.SetDefault("dataset.subset", c.Dataset.Subset)
	v.SetDefault("dataset.url", c.Dataset.URL)
	v.SetDefault("dataset.download", c.Dataset.Download)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each nested config key to its flag directly. Binding the
// nested key (rather than aliasing it to the flag name) keeps config-file
// values visible when the flag is left at its default.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"dataset.root":     "dataset-root",
		"dataset.subset":   "dataset-subset",
		"dataset.url":      "dataset-url",
		"dataset.download": "dataset-download",
		"log_level":        "log-level",
	} {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
