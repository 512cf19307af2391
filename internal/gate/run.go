package gate

import (
	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/simulation"
)

// RunFromManifest drives every scenario named in the manifest and
// aggregates the crypto, fixture, and simulation-envelope checkers into
// one report (spec.md §4.H). It is the entry point used by the `gate`
// CLI subcommand.
func RunFromManifest(m *Manifest, simCfg config.SimulationConfig, experiments []simulation.ExperimentConfig) Report {
	checkers := []Checker{
		CryptoVectorsCheck(m.StrictCrypto),
	}

	if m.FixtureDir != "" && len(m.FixtureSHAPins) > 0 {
		checkers = append(checkers, FixtureSHACheck(m.FixtureDir, m.FixtureSHAPins))
	}

	localCluster := simulation.RunLocalCluster(simCfg.Seed, simCfg.Nodes, simCfg.Rounds)
	checkers = append(checkers, LocalClusterCheck(localCluster, m.MinLocalClusterSuccessRatePct))

	queuePressure := simulation.RunQueuePressure(simCfg.Seed, simCfg.Rounds, m.QueuePressure)
	checkers = append(checkers, QueuePressureCheck(queuePressure))

	if len(experiments) >= 3 {
		matrix, err := simulation.RunExperimentMatrix(experiments, simCfg.Nodes)
		checkers = append(checkers, func() CheckResult {
			if err != nil {
				return CheckResult{Name: "experiment_matrix_envelope", Pass: false, Reason: err.Error()}
			}
			return ExperimentMatrixCheck(matrix, m.MinExperimentCount)()
		})
	}

	return Run(checkers...)
}
