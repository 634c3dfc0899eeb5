// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/find-overlap/internal/logging"
	"fjacquet/find-overlap/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration,
// e.g. OVERLAP_LOG_LEVEL or OVERLAP_COMPARE_SKIP_INVALID.
const EnvPrefix = "OVERLAP"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Normalize struct {
		StopWordsFile  string `mapstructure:"stopwords_file" yaml:"stopwords_file"`
		FoldAccents    bool   `mapstructure:"fold_accents" yaml:"fold_accents"`
		CanonicalDates bool   `mapstructure:"canonical_dates" yaml:"canonical_dates"`
	} `mapstructure:"normalize" yaml:"normalize"`

	Amounts struct {
		Lenient bool `mapstructure:"lenient" yaml:"lenient"`
	} `mapstructure:"amounts" yaml:"amounts"`

	Compare struct {
		SkipInvalid bool `mapstructure:"skip_invalid" yaml:"skip_invalid"`
	} `mapstructure:"compare" yaml:"compare"`

	Report struct {
		Format string `mapstructure:"format" yaml:"format"`
		Style  string `mapstructure:"style" yaml:"style"`
	} `mapstructure:"report" yaml:"report"`

	Readers struct {
		JSON struct {
			RecordsPath string `mapstructure:"records_path" yaml:"records_path"`
		} `mapstructure:"json" yaml:"json"`
		SQLite struct {
			Table string `mapstructure:"table" yaml:"table"`
		} `mapstructure:"sqlite" yaml:"sqlite"`
	} `mapstructure:"readers" yaml:"readers"`

	Meta struct {
		Extensions []string `mapstructure:"extensions" yaml:"extensions"`
	} `mapstructure:"meta" yaml:"meta"`
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"log-format":      "log.format",
	"delimiter":       "csv.delimiter",
	"stopwords":       "normalize.stopwords_file",
	"fold-accents":    "normalize.fold_accents",
	"canonical-dates": "normalize.canonical_dates",
	"lenient-amounts": "amounts.lenient",
	"skip-invalid":    "compare.skip_invalid",
	"format":          "report.format",
	"style":           "report.style",
	"json-path":       "readers.json.records_path",
	"sqlite-table":    "readers.sqlite.table",
}

// InitializeConfig loads defaults, the config file and environment variables.
func InitializeConfig() (*Config, error) {
	return Load(nil)
}

// Load builds the configuration. Precedence, highest first: flags that were
// set on the command line, environment variables, the config file, defaults.
// A "config" flag, when present and set, names the config file to read.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	configFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.find-overlap")
		v.AddConfigPath(".find-overlap")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Command-line flags
	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	// 5. Read config file (optional unless named explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Normalization defaults
	v.SetDefault("normalize.stopwords_file", "")
	v.SetDefault("normalize.fold_accents", false)
	v.SetDefault("normalize.canonical_dates", false)
	v.SetDefault("amounts.lenient", false)

	// Comparison and report defaults
	v.SetDefault("compare.skip_invalid", false)
	v.SetDefault("report.format", "text")
	v.SetDefault("report.style", "notty")

	// Reader defaults
	v.SetDefault("readers.json.records_path", "$[*]")
	v.SetDefault("readers.sqlite.table", "transactions")
	v.SetDefault("meta.extensions", []string{".json", ".yaml", ".yml"})
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}

	if err := validation.IsValidReportFormat(config.Report.Format); err != nil {
		return err
	}

	if config.Readers.SQLite.Table == "" {
		return fmt.Errorf("readers.sqlite.table must not be empty")
	}

	for _, ext := range config.Meta.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("meta.extensions entries must start with a dot, got: %s", ext)
		}
	}

	return nil
}

// ConfigureLoggingFromConfig builds the application logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
