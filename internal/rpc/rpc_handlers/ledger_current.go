package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// LedgerCurrent implements the ledger_current method (spec.md §6).
func LedgerCurrent(ctx *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	return map[string]any{
		"ledger_current_index": ctx.Ledger.Open().Sequence,
	}, nil
}
