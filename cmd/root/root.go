// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/find-overlap/internal/config"
	"fjacquet/find-overlap/internal/container"
	"fjacquet/find-overlap/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "find-overlap",
		Short: "A CLI tool to find the bank export that overlaps most with a given file.",
		Long: `find-overlap compares the transactions of one bank export against a set of
candidate exports and reports the candidate sharing the most transactions.

Transactions are matched on their normalized date, description and amount.
Supported inputs: CSV, TSV, Parquet, Feather, Avro, JSON, SQLite and CAMT.053 XML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to find-overlap!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initialize(cmd)
		},
	}

	appContainer *container.Container
)

// Init initializes the root command and all flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.String("config", "", "Config file (default is ./config.yaml or $HOME/.find-overlap/config.yaml)")
	flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	flags.String("log-format", "", "Log format (text, json)")
	flags.String("delimiter", "", "Field delimiter of CSV inputs and outputs")
	flags.String("stopwords", "", "File with one stop word per line, replacing the built-in English list")
	flags.Bool("fold-accents", false, "Transliterate descriptions to ASCII before tokenizing")
	flags.Bool("canonical-dates", false, "Render parseable dates as YYYY-MM-DD before matching")
	flags.Bool("lenient-amounts", false, "Strip currency symbols and thousands separators from amounts")
	flags.String("json-path", "", "JSONPath selecting the records of JSON inputs")
	flags.String("sqlite-table", "", "Table read from SQLite inputs")
}

// initialize loads the configuration for cmd and wires the container used by
// every subcommand.
func initialize(cmd *cobra.Command) error {
	config.LoadEnv()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	appContainer = c
	Log = c.GetLogger()
	logging.SetLogger(Log)
	Log.Debug("Configuration loaded",
		logging.Field{Key: "command", Value: cmd.Name()},
		logging.Field{Key: "log_level", Value: cfg.Log.Level})
	return nil
}

// GetContainer returns the container built for the running command. It is
// nil until the root command's pre-run hook has executed.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the container, for tests that drive subcommands
// without going through the root pre-run hook.
func SetContainer(c *container.Container) {
	appContainer = c
	if c != nil {
		Log = c.GetLogger()
	}
}
