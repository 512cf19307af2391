package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// buildVersion is this engine's reported version string.
const buildVersion = "0.1.0-lab"

// ServerInfo implements the server_info method (spec.md §6).
func ServerInfo(ctx *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	var seq ledger.LedgerSeq
	var hash ledger.Hash256
	if closed := ctx.Ledger.LastClosed(); closed != nil {
		seq = closed.Header.Sequence
		hash = closed.Header.Hash
	}

	return map[string]any{
		"info": map[string]any{
			"build_version": buildVersion,
			"server_state":  "full",
			"network_id":    ctx.Config.NetworkID,
			"peers":         0,
			"validated_ledger": map[string]any{
				"seq":  seq,
				"hash": hash.String(),
			},
		},
	}, nil
}
