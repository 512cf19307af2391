package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goxrpld/lab/internal/core/simulation"
	"github.com/goxrpld/lab/internal/gate"
	"github.com/spf13/cobra"
)

var gateManifestPath string

var gateCmd = &cobra.Command{
	Use:   "gate",
	Short: "Run the evidence layer against a manifest and exit 0/1",
	Long: `gate loads a scenario manifest (spec.md §4.H) and runs the crypto,
fixture, and simulation-envelope checkers it declares, printing a JSON
report and exiting 0 on pass, 1 on fail.`,
	RunE: runGate,
}

func init() {
	gateCmd.Flags().StringVar(&gateManifestPath, "manifest", "", "path to the gate manifest JSON file (required)")
	gateCmd.MarkFlagRequired("manifest")
	rootCmd.AddCommand(gateCmd)
}

func runGate(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig

	manifest, err := gate.LoadManifest(gateManifestPath)
	if err != nil {
		return fmt.Errorf("gate: %w", err)
	}

	experiments := []simulation.ExperimentConfig{
		{Label: "baseline", Consensus: cfg.Consensus},
		{Label: "fast_threshold", Consensus: fasterConsensus(cfg.Consensus)},
		{Label: "slow_establish", Consensus: slowerConsensus(cfg.Consensus)},
	}

	report := gate.RunFromManifest(manifest, cfg.Simulation, experiments)

	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("gate: marshaling report: %w", err)
	}
	fmt.Println(string(body))

	os.Exit(report.ExitCode())
	return nil
}
