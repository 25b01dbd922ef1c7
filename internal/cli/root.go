// Package cli wires the EcoSim commands: simulate, analyze, serve, and
// audit. Logging and configuration are set up once in the root command's
// PersistentPreRunE and flow to subcommands through the command context.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecosim/ecosim/internal/config"
	"github.com/ecosim/ecosim/internal/logging"
)

// contextKey is the private type for values stored on the command
// context.
type contextKey string

const configContextKey contextKey = "ecosim.config"

// NewRootCmd creates the root EcoSim command.
func NewRootCmd(ver string) *cobra.Command {
	var (
		configPath string
		debug      bool
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:     "ecosim",
		Short:   "Deterministic environmental-impact analytics",
		Long:    "EcoSim: scenario simulation, greenwashing claim analysis, and live ESG report auditing",
		Version: ver,
		Example: `  # Run a scenario simulation from a JSON input file
  ecosim simulate --input scenario.json

  # Simulate from flags alone
  ecosim simulate --category smartphone --energy coal --lifespan 3

  # Analyze a sustainability claim
  ecosim analyze --text "Our product is 100% sustainable"

  # Serve the HTTP API with the live auditor
  ecosim serve --addr :8085

  # Run only the dropzone auditor
  ecosim audit --dropzone ./dropzone`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if debug {
				cfg.Logging.Level = "debug"
				cfg.Logging.Format = "console"
			}
			if cmd.Flags().Changed("log-format") {
				if logFormat != "console" && logFormat != "json" {
					return fmt.Errorf("invalid log format %q, expected console or json", logFormat)
				}
				cfg.Logging.Format = logFormat
			}

			logger := logging.NewLogger(cfg.Logging.ToLoggingConfig())
			ctx := logging.WithLogger(cmd.Context(), logger)
			ctx = context.WithValue(ctx, configContextKey, cfg)
			cmd.SetContext(ctx)

			cliLog := logging.ComponentLogger(logger, "cli")
			cliLog.Debug().
				Str("command", cmd.Name()).
				Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default $HOME/.ecosim/config.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	cmd.AddCommand(NewSimulateCmd(), NewAnalyzeCmd(), NewServeCmd(), NewAuditCmd())
	return cmd
}

// configFromContext retrieves the loaded config placed on the context by
// the root command, falling back to defaults for direct command tests.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configContextKey).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
