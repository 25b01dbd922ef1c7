package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ecosim/ecosim/internal/audit"
)

// NewAuditCmd creates the "audit" command: the dropzone auditor without
// the HTTP API.
func NewAuditCmd() *cobra.Command {
	var (
		dropzone   string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Watch a dropzone and audit incoming ESG reports",
		Long: `Run the live auditor on its own. Every .txt file dropped into the
dropzone directory is classified and appended to the JSONL output file,
which the serve command's /api/live-audits endpoint reads.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			if cmd.Flags().Changed("dropzone") {
				cfg.Audit.Dropzone = dropzone
			}
			if cmd.Flags().Changed("output-file") {
				cfg.Audit.OutputFile = outputFile
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			auditor, err := audit.NewAuditor(cfg.Audit.Dropzone, audit.NewSink(cfg.Audit.OutputFile))
			if err != nil {
				return err
			}
			return auditor.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&dropzone, "dropzone", "dropzone", "directory watched for incoming .txt reports")
	cmd.Flags().StringVar(&outputFile, "output-file", "live_audits.jsonl", "JSONL file audit records are appended to")

	return cmd
}
