package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosim/ecosim/internal/engine"
)

// SimulateParams holds the simulate command's flag values. Exported for
// testing.
type SimulateParams struct {
	// InputPath, when set, points at a JSON SimulationInput document and
	// the individual scenario flags are rejected.
	InputPath string

	Category     string
	Energy       string
	Country      string
	UsageCountry string
	Lifespan     int
	Frequency    string
	TransportKm  float64

	Output string
}

// NewSimulateCmd creates the "simulate" command.
func NewSimulateCmd() *cobra.Command {
	var params SimulateParams

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a deterministic environmental-impact simulation",
		Long: `Run the scenario simulator for a product configuration.

The input comes either from a JSON file (--input) or from the scenario
flags. Identical inputs always produce identical results.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputPath, "input", "", "JSON file with the simulation input")
	cmd.Flags().StringVar(&params.Category, "category", "", "product category (e.g. smartphone, laptop)")
	cmd.Flags().StringVar(&params.Energy, "energy", "grid", "energy source (coal, solar, wind, ...)")
	cmd.Flags().StringVar(&params.Country, "country", "", "manufacturing country")
	cmd.Flags().StringVar(&params.UsageCountry, "usage-country", "", "usage country")
	cmd.Flags().IntVar(&params.Lifespan, "lifespan", 5, "product lifespan in years")
	cmd.Flags().StringVar(&params.Frequency, "frequency", "weekly", "usage frequency (daily, weekly, monthly)")
	cmd.Flags().Float64Var(&params.TransportKm, "transport", 0, "transport distance in km")
	cmd.Flags().StringVar(&params.Output, "output", "table", "output format (table, json)")

	return cmd
}

// ValidateSimulateFlags checks flag consistency. Exported for testing.
func ValidateSimulateFlags(cmd *cobra.Command, params *SimulateParams) error {
	if params.Output != "table" && params.Output != "json" {
		return fmt.Errorf("invalid output format %q, expected table or json", params.Output)
	}
	if params.InputPath == "" {
		if params.Category == "" {
			return errors.New("--category is required when no --input file is given")
		}
		return nil
	}
	for _, name := range []string{"category", "energy", "country", "usage-country", "lifespan", "frequency", "transport"} {
		if cmd.Flags().Changed(name) {
			return fmt.Errorf("--%s cannot be combined with --input", name)
		}
	}
	return nil
}

// loadSimulationInput builds the engine input from the params.
func loadSimulationInput(params SimulateParams) (engine.SimulationInput, error) {
	if params.InputPath != "" {
		data, err := os.ReadFile(params.InputPath)
		if err != nil {
			return engine.SimulationInput{}, fmt.Errorf("read input file: %w", err)
		}
		var input engine.SimulationInput
		if err := json.Unmarshal(data, &input); err != nil {
			return engine.SimulationInput{}, fmt.Errorf("parse input file: %w", err)
		}
		return input, nil
	}

	return engine.SimulationInput{
		ProductCategory:      params.Category,
		ManufacturingCountry: params.Country,
		UsageCountry:         params.UsageCountry,
		EnergySource:         params.Energy,
		LifespanYears:        params.Lifespan,
		UsageFrequency:       params.Frequency,
		TransportDistanceKm:  params.TransportKm,
	}, nil
}

func runSimulate(cmd *cobra.Command, params SimulateParams) error {
	if err := ValidateSimulateFlags(cmd, &params); err != nil {
		return err
	}

	input, err := loadSimulationInput(params)
	if err != nil {
		return err
	}

	result, err := engine.Simulate(cmd.Context(), input)
	if err != nil {
		return err
	}

	if params.Output == "json" {
		return writeIndentedJSON(cmd.OutOrStdout(), result)
	}
	return renderSimulationTable(cmd.OutOrStdout(), input, result)
}
