package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sreekona1935/medical-insurance-costs/pkg/pipeline"
)

var (
	logLevel   string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:           "insureprep",
	Short:         "Prepare the insurance charges dataset for regression",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with column names, delimiter and feature options")

	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(describeCmd)
}

// Execute runs the root command and logs any error it returns.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("insureprep failed")
		return err
	}
	return nil
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// newPreparer builds a Preparer from --config, or the defaults when unset.
func newPreparer() (*pipeline.Preparer, error) {
	cfg := pipeline.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = pipeline.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}
	return pipeline.New(cfg, pipeline.WithLogger(log.Logger))
}
