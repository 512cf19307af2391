package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// Fee implements the fee method (spec.md §6). This engine has no open
// transaction-fee market, so median and minimum fee both track the
// configured base fee.
func Fee(ctx *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	base := ctx.Config.Fee.BaseFee
	return map[string]any{
		"status": "success",
		"drops": map[string]any{
			"base_fee":    base,
			"median_fee":  base,
			"minimum_fee": base,
		},
		"ledger_current_index": ctx.Ledger.Open().Sequence,
	}, nil
}
