package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ecosim/ecosim/internal/engine"
	"github.com/ecosim/ecosim/internal/greenwash"
)

// writeIndentedJSON renders any result document as indented JSON.
func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSimulationTable prints the headline simulation numbers. The full
// sample sets and curves are JSON-only; the table is a summary.
func renderSimulationTable(w io.Writer, input engine.SimulationInput, result *engine.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Category:\t%s\n", input.ProductCategory)
	fmt.Fprintf(tw, "Total CO2:\t%.0f kg\n", result.TotalCO2)
	fmt.Fprintf(tw, "Water footprint:\t%.0f L\n", result.WaterFootprint)
	fmt.Fprintf(tw, "Landfill mass:\t%.2f kg\n", result.LandfillMass)
	fmt.Fprintf(tw, "Recycling probability:\t%.0f%%\n", result.RecyclingProbability)
	fmt.Fprintf(tw, "Resource depletion:\t%.0f/100\n", result.ResourceDepletionIndex)
	fmt.Fprintf(tw, "E-waste risk:\t%s (%.0f)\n", result.EWasteRisk, result.EWasteScore)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PHASE\tSHARE\tCO2 (kg)\tWATER (L)")
	for _, phase := range result.LifecyclePhases {
		fmt.Fprintf(tw, "%s\t%d%%\t%.2f\t%.2f\n", phase.Phase, phase.Percentage, phase.CO2, phase.Water)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TOP DRIVERS\tIMPORTANCE\tDIRECTION")
	for i, fi := range result.SHAPValues {
		if i >= 3 {
			break
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%s\n", fi.Feature, fi.Importance, fi.Direction)
	}

	return tw.Flush()
}

// renderAnalysisTable prints the claim analysis verdict and flags.
func renderAnalysisTable(w io.Writer, result greenwash.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Trust score:\t%.0f/100\n", result.TrustScore)
	fmt.Fprintf(tw, "Risk level:\t%s\n", result.RiskLevel)
	fmt.Fprintf(tw, "Summary:\t%s\n", result.Summary)
	fmt.Fprintln(tw)

	if len(result.SuspiciousPhrases) > 0 {
		fmt.Fprintln(tw, "FLAGGED\tCATEGORY\tSEVERITY\tSUGGESTION")
		for _, p := range result.SuspiciousPhrases {
			fmt.Fprintf(tw, "%q\t%s\t%.2f\t%s\n", p.Text, p.Category, p.Severity, p.Suggestion)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintln(tw, "DIMENSION\tSCORE\tASSESSMENT")
	for _, d := range result.ScoreBreakdown {
		fmt.Fprintf(tw, "%s\t%.0f\t%s\n", d.Dimension, d.Score, d.Assessment)
	}

	return tw.Flush()
}
