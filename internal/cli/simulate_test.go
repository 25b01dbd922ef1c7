package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosim/ecosim/internal/engine"
)

func TestValidateSimulateFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		errContains string
	}{
		{
			name: "category flags alone",
			args: []string{"--category", "laptop"},
		},
		{
			name: "input file alone",
			args: []string{"--input", "scenario.json"},
		},
		{
			name:        "no input and no category",
			args:        nil,
			wantErr:     true,
			errContains: "--category is required",
		},
		{
			name:        "input combined with scenario flag",
			args:        []string{"--input", "scenario.json", "--category", "laptop"},
			wantErr:     true,
			errContains: "cannot be combined with --input",
		},
		{
			name:        "bad output format",
			args:        []string{"--category", "laptop", "--output", "xml"},
			wantErr:     true,
			errContains: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSimulateCmd()
			require.NoError(t, cmd.ParseFlags(tt.args))

			params := SimulateParams{
				InputPath: cmd.Flag("input").Value.String(),
				Category:  cmd.Flag("category").Value.String(),
				Output:    cmd.Flag("output").Value.String(),
			}
			err := ValidateSimulateFlags(cmd, &params)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadSimulationInput(t *testing.T) {
	t.Run("from flags", func(t *testing.T) {
		input, err := loadSimulationInput(SimulateParams{
			Category:    "smartphone",
			Energy:      "coal",
			Country:     "China",
			Lifespan:    3,
			Frequency:   "daily",
			TransportKm: 8000,
		})
		require.NoError(t, err)
		assert.Equal(t, "smartphone", input.ProductCategory)
		assert.Equal(t, "coal", input.EnergySource)
		assert.Equal(t, 3, input.LifespanYears)
		assert.Equal(t, 8000.0, input.TransportDistanceKm)
	})

	t.Run("from json file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.json")
		want := engine.SimulationInput{
			ProductCategory: "laptop",
			EnergySource:    "solar",
			LifespanYears:   6,
			UsageFrequency:  "weekly",
		}
		data, err := json.Marshal(want)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0600))

		input, err := loadSimulationInput(SimulateParams{InputPath: path})
		require.NoError(t, err)
		assert.Equal(t, want, input)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSimulationInput(SimulateParams{InputPath: filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read input file")
	})

	t.Run("broken json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.json")
		require.NoError(t, os.WriteFile(path, []byte("{nope"), 0600))

		_, err := loadSimulationInput(SimulateParams{InputPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse input file")
	})
}

func TestSimulateCmd_JSONOutput(t *testing.T) {
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"simulate", "--category", "smartphone", "--energy", "coal",
		"--lifespan", "3", "--frequency", "daily", "--output", "json",
		"--config", filepath.Join(t.TempDir(), "none.yaml")})

	require.NoError(t, cmd.Execute())

	var result engine.SimulationResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Positive(t, result.TotalCO2)
	assert.Len(t, result.LifecyclePhases, 5)
}

func TestSimulateCmd_TableOutput(t *testing.T) {
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"simulate", "--category", "laptop",
		"--config", filepath.Join(t.TempDir(), "none.yaml")})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Total CO2:")
	assert.Contains(t, out.String(), "Manufacturing")
}
