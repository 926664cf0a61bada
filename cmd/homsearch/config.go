package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the effective configuration shared by all subcommands.
type Config struct {
	Format           string `mapstructure:"format" yaml:"format"`
	Limit            int    `mapstructure:"limit" yaml:"limit"`
	Workers          int    `mapstructure:"workers" yaml:"workers"`
	MaxDeletions     int    `mapstructure:"max_deletions" yaml:"max_deletions"`
	VertexTransitive bool   `mapstructure:"vertex_transitive" yaml:"vertex_transitive"`
	AvoidComplete    bool   `mapstructure:"avoid_complete" yaml:"avoid_complete"`
	Catalog          string `mapstructure:"catalog" yaml:"catalog"`
	Squash           bool   `mapstructure:"squash" yaml:"squash"`
	Out              string `mapstructure:"out" yaml:"out"`
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"format":            "format",
	"limit":             "limit",
	"workers":           "workers",
	"max-deletions":     "max_deletions",
	"vertex-transitive": "vertex_transitive",
	"avoid-complete":    "avoid_complete",
	"catalog":           "catalog",
	"squash":            "squash",
	"out":               "out",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return errors.Wrapf(err, "binding --%s", flag)
		}
	}

	return nil
}

// load reads the optional config file and decodes the merged settings.
func (a *app) load() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", a.cfgFile)
		}
	}
	a.v.SetEnvPrefix("HOMSEARCH")
	a.v.AutomaticEnv()

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return errors.Wrap(err, "decoding config")
	}

	return nil
}

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return errors.Wrap(err, "encoding config")
			}

			return enc.Close()
		},
	}
}
