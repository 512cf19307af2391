package rpc

import "github.com/goxrpld/lab/internal/rpc/rpc_handlers"

// registerMethods wires every method named in spec.md §4.G/§6 into the
// registry. submit and agent_config_set mutate node/ledger state and are
// blocked under the production profile.
func registerMethods(r *registry) {
	r.register("server_info", rpc_handlers.ServerInfo, false)
	r.register("ledger", rpc_handlers.Ledger, false)
	r.register("fee", rpc_handlers.Fee, false)
	r.register("ledger_current", rpc_handlers.LedgerCurrent, false)
	r.register("account_info", rpc_handlers.AccountInfo, false)
	r.register("submit", rpc_handlers.Submit, true)
	r.register("ping", rpc_handlers.Ping, false)
	r.register("agent_status", rpc_handlers.AgentStatus, false)
	r.register("agent_config_get", rpc_handlers.AgentConfigGet, false)
	r.register("agent_config_set", rpc_handlers.AgentConfigSet, true)
}
