package gate

import (
	"fmt"

	"github.com/goxrpld/lab/internal/core/simulation"
)

// LocalClusterCheck requires a deterministic local-cluster run whose
// success rate meets the manifest-declared floor (spec.md §4.H, §8
// scenario 2).
func LocalClusterCheck(result simulation.LocalClusterResult, minSuccessRatePct int) Checker {
	return func() CheckResult {
		if !result.Deterministic {
			return CheckResult{Name: "local_cluster_envelope", Pass: false, Reason: "run did not declare deterministic:true"}
		}
		if result.SuccessRate < minSuccessRatePct {
			return CheckResult{Name: "local_cluster_envelope", Pass: false, Reason: fmt.Sprintf("success_rate %d below floor %d", result.SuccessRate, minSuccessRatePct)}
		}
		return CheckResult{Name: "local_cluster_envelope", Pass: true}
	}
}

// QueuePressureCheck requires a deterministic queue-pressure run whose own
// computed status is "pass" (spec.md §4.H, §8 scenario 3).
func QueuePressureCheck(result simulation.QueuePressureResult) Checker {
	return func() CheckResult {
		if !result.Deterministic {
			return CheckResult{Name: "queue_pressure_envelope", Pass: false, Reason: "run did not declare deterministic:true"}
		}
		if result.Status != "pass" {
			reason := fmt.Sprintf("status %q at round %d (%s)", result.Status, result.RootCauseRound, result.RootCauseMetric)
			return CheckResult{Name: "queue_pressure_envelope", Pass: false, Reason: reason}
		}
		return CheckResult{Name: "queue_pressure_envelope", Pass: true}
	}
}

// ExperimentMatrixCheck requires a deterministic matrix run with at least
// minExperiments entries and a baseline delta of zero (spec.md §4.H, §8
// scenario 4).
func ExperimentMatrixCheck(result simulation.MatrixResult, minExperiments int) Checker {
	return func() CheckResult {
		if !result.Deterministic {
			return CheckResult{Name: "experiment_matrix_envelope", Pass: false, Reason: "run did not declare deterministic:true"}
		}
		if result.ExperimentsExecuted < minExperiments {
			return CheckResult{Name: "experiment_matrix_envelope", Pass: false, Reason: fmt.Sprintf("executed %d experiments, floor is %d", result.ExperimentsExecuted, minExperiments)}
		}
		if len(result.DeltasVsBaseline) == 0 || result.DeltasVsBaseline[0] != 0 {
			return CheckResult{Name: "experiment_matrix_envelope", Pass: false, Reason: "baseline delta is not zero"}
		}
		return CheckResult{Name: "experiment_matrix_envelope", Pass: true}
	}
}
