package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.DelimiterRune())
	assert.Equal(t, "", config.Normalize.StopWordsFile)
	assert.False(t, config.Normalize.FoldAccents)
	assert.False(t, config.Normalize.CanonicalDates)
	assert.False(t, config.Amounts.Lenient)
	assert.False(t, config.Compare.SkipInvalid)
	assert.Equal(t, "text", config.Report.Format)
	assert.Equal(t, "notty", config.Report.Style)
	assert.Equal(t, "$[*]", config.Readers.JSON.RecordsPath)
	assert.Equal(t, "transactions", config.Readers.SQLite.Table)
	assert.Equal(t, []string{".json", ".yaml", ".yml"}, config.Meta.Extensions)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"OVERLAP_LOG_LEVEL":                 "debug",
		"OVERLAP_LOG_FORMAT":                "json",
		"OVERLAP_CSV_DELIMITER":             ";",
		"OVERLAP_COMPARE_SKIP_INVALID":      "true",
		"OVERLAP_NORMALIZE_CANONICAL_DATES": "true",
		"OVERLAP_READERS_SQLITE_TABLE":      "ledger",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.True(t, config.Compare.SkipInvalid)
	assert.True(t, config.Normalize.CanonicalDates)
	assert.Equal(t, "ledger", config.Readers.SQLite.Table)
}

const sampleConfig = `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
normalize:
  fold_accents: true
amounts:
  lenient: true
report:
  format: "markdown"
  style: "ascii"
`

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(sampleConfig), 0o600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.True(t, config.Normalize.FoldAccents)
	assert.True(t, config.Amounts.Lenient)
	assert.Equal(t, "markdown", config.Report.Format)
	assert.Equal(t, "ascii", config.Report.Style)
}

func TestLoad_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	configFile := filepath.Join(tempDir, "overlap.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(sampleConfig), 0o600))
	chdir(t, t.TempDir())

	t.Setenv("OVERLAP_LOG_LEVEL", "error")
	t.Setenv("OVERLAP_REPORT_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.String("format", "text", "")
	flags.Bool("skip-invalid", false, "")
	flags.String("delimiter", ",", "")
	require.NoError(t, flags.Parse([]string{"--config", configFile, "--format", "xml", "--skip-invalid"}))

	config, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)  // env var wins over file
	assert.Equal(t, "xml", config.Report.Format) // flag wins over env var
	assert.True(t, config.Compare.SkipInvalid)   // flag
	assert.Equal(t, "|", config.CSV.Delimiter)   // unset flag does not hide the file
	assert.Equal(t, "ascii", config.Report.Style)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	clearTestEnvVars(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := Load(flags)
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "loud" }},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = ";;" }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
		{"unknown report format", func(c *Config) { c.Report.Format = "pdf" }},
		{"empty sqlite table", func(c *Config) { c.Readers.SQLite.Table = "" }},
		{"meta extension without dot", func(c *Config) { c.Meta.Extensions = []string{"json"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			assert.Error(t, validateConfig(config))
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	config := validConfig()
	config.Log.Level = "DEBUG"

	logger := ConfigureLoggingFromConfig(config)
	assert.NotNil(t, logger)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("OVERLAP_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("OVERLAP_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("OVERLAP_TEST_UNSET_VALUE", "fallback"))
}

func validConfig() *Config {
	config := &Config{}
	config.Log.Level = "info"
	config.Log.Format = "text"
	config.CSV.Delimiter = ","
	config.Report.Format = "text"
	config.Readers.SQLite.Table = "transactions"
	config.Meta.Extensions = []string{".json"}
	return config
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(original)
	})
}

// clearTestEnvVars unsets the variables other tests may set, restoring them
// afterwards.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"OVERLAP_LOG_LEVEL",
		"OVERLAP_LOG_FORMAT",
		"OVERLAP_CSV_DELIMITER",
		"OVERLAP_NORMALIZE_STOPWORDS_FILE",
		"OVERLAP_NORMALIZE_FOLD_ACCENTS",
		"OVERLAP_NORMALIZE_CANONICAL_DATES",
		"OVERLAP_AMOUNTS_LENIENT",
		"OVERLAP_COMPARE_SKIP_INVALID",
		"OVERLAP_REPORT_FORMAT",
		"OVERLAP_REPORT_STYLE",
		"OVERLAP_READERS_JSON_RECORDS_PATH",
		"OVERLAP_READERS_SQLITE_TABLE",
		"OVERLAP_META_EXTENSIONS",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		_ = os.Unsetenv(envVar)
	}
}
