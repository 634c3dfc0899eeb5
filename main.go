package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"fjacquet/find-overlap/cmd/compare"
	"fjacquet/find-overlap/cmd/normalize"
	"fjacquet/find-overlap/cmd/root"
	"fjacquet/find-overlap/cmd/stat"
	"fjacquet/find-overlap/internal/config"
	"fjacquet/find-overlap/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Apply the log level from the environment before any logger is used
	logging.SetAllLogLevels(configureLogLevelDirectly())

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(stat.Cmd)
	root.Cmd.AddCommand(normalize.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global logrus level from
// OVERLAP_LOG_LEVEL and returns it
func configureLogLevelDirectly() logrus.Level {
	logLevelStr := os.Getenv(config.EnvPrefix + "_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	return logLevel
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
