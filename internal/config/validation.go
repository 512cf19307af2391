package config

import "fmt"

// ValidateConfig performs validation on the complete configuration,
// enforcing the invariants the rest of the node assumes hold.
func ValidateConfig(config *Config) error {
	if err := validateProfile(config.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := validateRPC(&config.RPC); err != nil {
		return fmt.Errorf("rpc: %w", err)
	}
	if err := validateFee(&config.Fee); err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	if err := validateLedger(&config.Ledger); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	if err := validateConsensus(&config.Consensus); err != nil {
		return fmt.Errorf("consensus: %w", err)
	}
	if err := validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	return nil
}

func validateProfile(profile string) error {
	switch profile {
	case ProfileResearch, ProfileProduction:
		return nil
	default:
		return fmt.Errorf("unknown profile %q, expected %q or %q", profile, ProfileResearch, ProfileProduction)
	}
}

func validateRPC(rpc *RPCConfig) error {
	if rpc.Port < 1 || rpc.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", rpc.Port)
	}
	if rpc.BindAddress == "" {
		return fmt.Errorf("bind_address must not be empty")
	}
	if rpc.MaxPeers < 0 {
		return fmt.Errorf("max_peers must be non-negative, got %d", rpc.MaxPeers)
	}
	return nil
}

func validateFee(fee *FeeConfig) error {
	if fee.BaseFee == 0 {
		return fmt.Errorf("base_fee must be positive")
	}
	if fee.Multiplier <= 0 {
		return fmt.Errorf("fee_multiplier must be positive, got %f", fee.Multiplier)
	}
	return nil
}

func validateLedger(l *LedgerConfig) error {
	if l.HistoryDepth < 1 {
		return fmt.Errorf("history_depth must be at least 1, got %d", l.HistoryDepth)
	}
	return nil
}

func validateConsensus(c *ConsensusConfig) error {
	if c.FinalThreshold <= 0.5 || c.FinalThreshold > 1.0 {
		return fmt.Errorf("final_threshold must be in (0.5, 1], got %f", c.FinalThreshold)
	}
	if c.OpenPhaseTicks == 0 {
		return fmt.Errorf("open_phase_ticks must be positive")
	}
	if c.EstablishPhaseTicks == 0 {
		return fmt.Errorf("establish_phase_ticks must be positive")
	}
	if c.ConsensusRoundTicks == 0 {
		return fmt.Errorf("consensus_round_ticks must be positive")
	}
	if c.MaxIterations == 0 {
		return fmt.Errorf("max_iterations must be positive")
	}
	return nil
}

func validateSimulation(s *SimulationConfig) error {
	if s.Seed == "" {
		return fmt.Errorf("seed must not be empty")
	}
	if s.Nodes < 1 {
		return fmt.Errorf("nodes must be at least 1, got %d", s.Nodes)
	}
	if s.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", s.Rounds)
	}
	if s.ArtifactDir == "" {
		return fmt.Errorf("artifact_dir must not be empty")
	}
	return nil
}
