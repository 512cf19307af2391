package cli

import (
	"fmt"

	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/simulation"
	"github.com/spf13/cobra"
)

const (
	scenarioLocalCluster     = "local-cluster"
	scenarioQueuePressure    = "queue-pressure"
	scenarioExperimentMatrix = "experiment-matrix"
)

var (
	simulateScenario string
	simulateOutDir   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a seeded simulation scenario and write its artifacts",
	Long: `simulate runs one of the deterministic simulation scenarios named in
spec.md §4.F (local-cluster, queue-pressure, experiment-matrix) against the
configured seed and round count, writing its JSON/NDJSON artifacts to
--out (defaults to simulation.artifact_dir).`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateScenario, "scenario", scenarioLocalCluster,
		fmt.Sprintf("scenario to run: %s, %s, or %s", scenarioLocalCluster, scenarioQueuePressure, scenarioExperimentMatrix))
	simulateCmd.Flags().StringVar(&simulateOutDir, "out", "", "artifact output directory (defaults to simulation.artifact_dir)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := loadedConfig
	outDir := simulateOutDir
	if outDir == "" {
		outDir = cfg.Simulation.ArtifactDir
	}

	switch simulateScenario {
	case scenarioLocalCluster:
		result := simulation.RunLocalCluster(cfg.Simulation.Seed, cfg.Simulation.Nodes, cfg.Simulation.Rounds)
		if err := simulation.WriteLocalClusterArtifacts(outDir, result); err != nil {
			return fmt.Errorf("simulate: writing local-cluster artifacts: %w", err)
		}
	case scenarioQueuePressure:
		qpCfg := simulation.QueuePressureConfig{
			Capacity:       200,
			DrainRate:      100,
			BurstSize:      50,
			RetryPenaltyMs: 5,
			Envelope: simulation.QueuePressureEnvelope{
				MaxDropRatePct:    45,
				MaxPeakQueueDepth: 180,
				MaxAvgLatencyMs:   130,
			},
		}
		result := simulation.RunQueuePressure(cfg.Simulation.Seed, cfg.Simulation.Rounds, qpCfg)
		if err := simulation.WriteQueuePressureArtifacts(outDir, result); err != nil {
			return fmt.Errorf("simulate: writing queue-pressure artifacts: %w", err)
		}
	case scenarioExperimentMatrix:
		experiments := []simulation.ExperimentConfig{
			{Label: "baseline", Consensus: cfg.Consensus},
			{Label: "fast_threshold", Consensus: fasterConsensus(cfg.Consensus)},
			{Label: "slow_establish", Consensus: slowerConsensus(cfg.Consensus)},
		}
		result, err := simulation.RunExperimentMatrix(experiments, cfg.Simulation.Nodes)
		if err != nil {
			return fmt.Errorf("simulate: running experiment matrix: %w", err)
		}
		if err := simulation.WriteMatrixArtifacts(outDir, result); err != nil {
			return fmt.Errorf("simulate: writing experiment-matrix artifacts: %w", err)
		}
	default:
		return fmt.Errorf("simulate: unknown scenario %q", simulateScenario)
	}

	fmt.Printf("simulate: wrote %s artifacts to %s\n", simulateScenario, outDir)
	return nil
}

// fasterConsensus and slowerConsensus perturb one timing knob each,
// giving the experiment matrix three distinct, comparable configurations
// (spec.md §4.F.3).
func fasterConsensus(base config.ConsensusConfig) config.ConsensusConfig {
	fast := base
	fast.ConsensusRoundTicks = base.ConsensusRoundTicks * 3
	return fast
}

func slowerConsensus(base config.ConsensusConfig) config.ConsensusConfig {
	slow := base
	slow.EstablishPhaseTicks = base.EstablishPhaseTicks * 4
	return slow
}
