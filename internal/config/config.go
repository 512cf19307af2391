// Package config loads and validates the node's runtime configuration.
package config

// Config is the complete runtime configuration for the node.
type Config struct {
	// NetworkID identifies the simulated network (for server_info/agent_status).
	NetworkID int `mapstructure:"network_id"`

	// Profile gates which RPC methods are permitted and whether strict
	// crypto (ECDSA build tag) is required. One of "research", "production".
	Profile string `mapstructure:"profile"`

	RPC        RPCConfig        `mapstructure:"rpc"`
	Fee        FeeConfig        `mapstructure:"fee"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Consensus  ConsensusConfig  `mapstructure:"consensus"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Agent      AgentConfig      `mapstructure:"agent"`

	configPath string
}

// RPCConfig controls the JSON-RPC HTTP listener.
type RPCConfig struct {
	BindAddress string `mapstructure:"bind_address"`
	Port        int    `mapstructure:"port"`
	MaxPeers    int    `mapstructure:"max_peers"`
}

// FeeConfig holds the node's fee schedule, in drops.
type FeeConfig struct {
	BaseFee          uint64  `mapstructure:"base_fee"`
	ReserveBase      uint64  `mapstructure:"reserve_base"`
	ReserveIncrement uint64  `mapstructure:"reserve_increment"`
	Multiplier       float64 `mapstructure:"fee_multiplier"`
}

// LedgerConfig controls ledger history retention.
type LedgerConfig struct {
	HistoryDepth int `mapstructure:"history_depth"`
}

// ConsensusConfig holds the timing and threshold parameters for one round
// of the consensus FSM (spec.md §4.E). It travels with every round rather
// than living as engine-global state.
type ConsensusConfig struct {
	FinalThreshold      float64 `mapstructure:"final_threshold"`
	OpenPhaseTicks      uint32  `mapstructure:"open_phase_ticks"`
	OpenPhaseMs         uint32  `mapstructure:"open_phase_ms"`
	EstablishPhaseTicks uint32  `mapstructure:"establish_phase_ticks"`
	ConsensusRoundTicks uint32  `mapstructure:"consensus_round_ticks"`
	MaxIterations       uint32  `mapstructure:"max_iterations"`
}

// SimulationConfig holds defaults for the simulation harness scenarios.
type SimulationConfig struct {
	Seed        string `mapstructure:"seed"`
	Nodes       int    `mapstructure:"nodes"`
	Rounds      int    `mapstructure:"rounds"`
	ArtifactDir string `mapstructure:"artifact_dir"`
}

// AgentConfig holds the mutable runtime knobs reflected and updated through
// the agent_config_get/agent_config_set RPC methods (spec.md §4.G).
type AgentConfig struct {
	StrictCryptoRequired bool `mapstructure:"strict_crypto_required"`
	AllowUNLUpdates      bool `mapstructure:"allow_unl_updates"`
}

// ConfigPath returns the path the configuration was loaded from, if any.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// IsResearchProfile reports whether mutating RPC methods and relaxed
// crypto requirements are permitted.
func (c *Config) IsResearchProfile() bool {
	return c.Profile == ProfileResearch
}

const (
	// ProfileResearch permits all RPC methods; strict crypto is optional.
	ProfileResearch = "research"
	// ProfileProduction blocks mutating RPC methods; strict crypto is required.
	ProfileProduction = "production"
)
