package config

import "github.com/spf13/viper"

// setDefaults sets all default values before any config file or env var
// is applied.
func setDefaults(v *viper.Viper) {
	v.SetDefault("network_id", 0)
	v.SetDefault("profile", ProfileResearch)

	v.SetDefault("rpc.bind_address", "127.0.0.1")
	v.SetDefault("rpc.port", 5005)
	v.SetDefault("rpc.max_peers", 21)

	v.SetDefault("fee.base_fee", uint64(10))
	v.SetDefault("fee.reserve_base", uint64(10_000_000))
	v.SetDefault("fee.reserve_increment", uint64(2_000_000))
	v.SetDefault("fee.fee_multiplier", 1.0)

	v.SetDefault("ledger.history_depth", 256)

	v.SetDefault("consensus.final_threshold", 0.80)
	v.SetDefault("consensus.open_phase_ticks", 2)
	v.SetDefault("consensus.open_phase_ms", 2000)
	v.SetDefault("consensus.establish_phase_ticks", 4)
	v.SetDefault("consensus.consensus_round_ticks", 1)
	v.SetDefault("consensus.max_iterations", 10)

	v.SetDefault("simulation.seed", "xrpl-agent-lab-v1")
	v.SetDefault("simulation.nodes", 5)
	v.SetDefault("simulation.rounds", 20)
	v.SetDefault("simulation.artifact_dir", "./artifacts")

	v.SetDefault("agent.strict_crypto_required", false)
	v.SetDefault("agent.allow_unl_updates", false)
}
