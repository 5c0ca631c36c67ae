package config

import (
	"github.com/spf13/viper"
)

// CLIConfig holds the defaults cmd/dwz binds flags and environment
// variables onto, grounded on ferex_cli's spf13/viper dependency - there
// unused by its calc package, here doing real work binding the CLI's
// rate-table path and output format.
type CLIConfig struct {
	RateTablePath string
	OutputFormat  string
}

// LoadCLIConfig builds a *viper.Viper bound to the AFE_ environment
// prefix, with built-in defaults below the environment and any non-empty
// flag value above it, then decodes it into a CLIConfig.
func LoadCLIConfig(rateTablePathFlag, outputFormatFlag string) (*CLIConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("AFE")
	v.AutomaticEnv()

	v.SetDefault("rate_table_path", "ratetable.yaml")
	v.SetDefault("output_format", "console")

	if rateTablePathFlag != "" {
		v.Set("rate_table_path", rateTablePathFlag)
	}
	if outputFormatFlag != "" {
		v.Set("output_format", outputFormatFlag)
	}

	var cfg CLIConfig
	cfg.RateTablePath = v.GetString("rate_table_path")
	cfg.OutputFormat = v.GetString("output_format")
	return &cfg, nil
}
