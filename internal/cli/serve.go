package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ecosim/ecosim/internal/audit"
	"github.com/ecosim/ecosim/internal/logging"
	"github.com/ecosim/ecosim/internal/server"
)

// NewServeCmd creates the "serve" command: the HTTP API plus the live
// dropzone auditor running side by side.
func NewServeCmd() *cobra.Command {
	var (
		addr       string
		dropzone   string
		outputFile string
		noAuditor  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the EcoSim HTTP API",
		Long: `Start the HTTP API (simulation, claim analysis, live audits, health,
metrics) and, unless disabled, the live ESG report auditor watching the
dropzone directory.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("dropzone") {
				cfg.Audit.Dropzone = dropzone
			}
			if cmd.Flags().Changed("output-file") {
				cfg.Audit.OutputFile = outputFile
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := logging.FromContext(ctx)
			store := audit.NewStore(cfg.Audit.OutputFile)
			srv := server.New(cfg.Server, *logger, store)

			if !noAuditor {
				auditor, err := audit.NewAuditor(cfg.Audit.Dropzone, audit.NewSink(cfg.Audit.OutputFile))
				if err != nil {
					return err
				}
				auditor.OnRecord = func(rec audit.Record) {
					srv.Metrics().DocumentsAuditedTotal.WithLabelValues(rec.RiskLevel).Inc()
				}
				auditLog := logging.ComponentLogger(*logger, "audit")
				go func() {
					if err := auditor.Run(ctx); err != nil {
						auditLog.Error().Err(err).Msg("auditor stopped")
					}
				}()
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return srv.Shutdown(context.Background())
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8085", "listen address")
	cmd.Flags().StringVar(&dropzone, "dropzone", "dropzone", "directory watched for incoming .txt reports")
	cmd.Flags().StringVar(&outputFile, "output-file", "live_audits.jsonl", "JSONL file audit records are appended to")
	cmd.Flags().BoolVar(&noAuditor, "no-auditor", false, "serve the API without the dropzone auditor")

	return cmd
}
