package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notifyflow/notifyflow/internal/config"
	"github.com/notifyflow/notifyflow/internal/console"
	"github.com/notifyflow/notifyflow/internal/logging"
	"github.com/notifyflow/notifyflow/internal/metrics"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile  string
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "notifyflow",
		Short: "Send a notification through email or SMS and log it",
		Long: `notifyflow asks for a channel and a message, delivers the message through
the chosen channel and records it with the event and audit loggers.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile, logLevel)
			if err != nil {
				return err
			}

			cleanup, err := logging.Init(cmd.ErrOrStderr(), cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer cleanup()

			err = console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
			if cfg.MetricsSummary {
				logging.Get().Info().Interface("metrics", metrics.GetSnapshot()).Msg("session metrics")
			}
			if err != nil {
				logging.Get().Error().Err(err).Msg("session failed")
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config and NOTIFYFLOW_LOG_LEVEL)")
	return cmd
}

// loadConfig layers defaults, the optional file, environment overrides and
// flags, in increasing precedence.
func loadConfig(path, logLevel string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		c, err := config.LoadConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed loading config: %w", err)
		}
		cfg = c
	}
	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
