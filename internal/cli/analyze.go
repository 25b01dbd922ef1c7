package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecosim/ecosim/internal/greenwash"
)

// AnalyzeParams holds the analyze command's flag values. Exported for
// testing.
type AnalyzeParams struct {
	Text     string
	FilePath string
	Output   string
}

// NewAnalyzeCmd creates the "analyze" command.
func NewAnalyzeCmd() *cobra.Command {
	var params AnalyzeParams

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a sustainability claim for greenwashing",
		Long: `Score free text for greenwashing risk.

The text comes from --text or from a file via --file. The analysis is
deterministic: the same text always yields the same result.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.Text, "text", "", "claim text to analyze")
	cmd.Flags().StringVar(&params.FilePath, "file", "", "file containing the claim text")
	cmd.Flags().StringVar(&params.Output, "output", "table", "output format (table, json)")

	return cmd
}

// ValidateAnalyzeFlags checks flag consistency. Exported for testing.
func ValidateAnalyzeFlags(params *AnalyzeParams) error {
	if params.Output != "table" && params.Output != "json" {
		return fmt.Errorf("invalid output format %q, expected table or json", params.Output)
	}
	if params.Text != "" && params.FilePath != "" {
		return errors.New("--text and --file are mutually exclusive")
	}
	if params.Text == "" && params.FilePath == "" {
		return errors.New("either --text or --file is required")
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, params AnalyzeParams) error {
	if err := ValidateAnalyzeFlags(&params); err != nil {
		return err
	}

	text := params.Text
	if params.FilePath != "" {
		data, err := os.ReadFile(params.FilePath)
		if err != nil {
			return fmt.Errorf("read claim file: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return errors.New("claim text is empty")
	}

	result := greenwash.Analyze(cmd.Context(), text)

	if params.Output == "json" {
		return writeIndentedJSON(cmd.OutOrStdout(), result)
	}
	return renderAnalysisTable(cmd.OutOrStdout(), result)
}
