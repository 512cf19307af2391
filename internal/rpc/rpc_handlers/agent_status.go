package rpc_handlers

import (
	"encoding/json"
	"time"

	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

const agentAPIVersion = 1

// AgentStatus implements the agent_status method (spec.md §4.G, §6).
func AgentStatus(ctx *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	open := ctx.Ledger.Open()
	var validatedSeq uint32
	if closed := ctx.Ledger.LastClosed(); closed != nil {
		validatedSeq = uint32(closed.Header.Sequence)
	}

	return map[string]any{
		"status": "success",
		"agent_control": map[string]any{
			"api_version":            agentAPIVersion,
			"mode":                   ctx.Config.Profile,
			"strict_crypto_required": ctx.Config.Agent.StrictCryptoRequired,
		},
		"node_state": map[string]any{
			"uptime":               int(time.Since(ctx.StartTime).Seconds()),
			"validated_ledger_seq": validatedSeq,
			// The engine applies transactions directly into the open
			// ledger (no separate mempool); "pending" tracks what has
			// been applied but not yet sealed by a ledger close.
			"pending_transactions": len(open.AppliedTxHashes),
			"max_peers":            ctx.Config.RPC.MaxPeers,
			"allow_unl_updates":    ctx.Config.Agent.AllowUNLUpdates,
		},
	}, nil
}
