package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// ledgerParams is the `ledger` method's request shape (spec.md §6).
// LedgerIndex is either a ledger sequence number or the string "current".
type ledgerParams struct {
	LedgerIndex  json.RawMessage `json:"ledger_index"`
	Transactions bool            `json:"transactions"`
	Expand       bool            `json:"expand"`
}

// Ledger implements the ledger method (spec.md §6).
func Ledger(ctx *rpc_types.Context, raw json.RawMessage) (any, *rpc_types.Error) {
	var params ledgerParams
	if err := decodeParams(raw, &params); err != nil {
		return nil, rpc_types.ErrInvalidParams("ledger")
	}

	if isCurrentLedgerIndex(params.LedgerIndex) {
		open := ctx.Ledger.Open()
		return map[string]any{
			"status": "success",
			"ledger": map[string]any{
				"ledger_index":          open.Sequence,
				"parent_hash":           open.ParentHash.String(),
				"close_time_resolution": open.CloseTimeResolution,
				"closed":                false,
			},
		}, nil
	}

	var seq uint32
	if err := json.Unmarshal(params.LedgerIndex, &seq); err != nil {
		return nil, rpc_types.ErrInvalidParams("ledger")
	}

	closed, ok := ctx.Ledger.BySeq(ledger.LedgerSeq(seq))
	if !ok {
		return map[string]any{
			"status": "error",
			"error":  "lgrNotFound",
		}, nil
	}

	result := map[string]any{
		"status": "success",
		"ledger": ledgerHeaderJSON(closed, params.Transactions, params.Expand),
	}
	return result, nil
}

func isCurrentLedgerIndex(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s == "current" || s == ""
}

func ledgerHeaderJSON(closed *ledger.ClosedLedger, withTransactions, expand bool) map[string]any {
	h := closed.Header
	out := map[string]any{
		"ledger_index":           h.Sequence,
		"ledger_hash":            h.Hash.String(),
		"account_hash":           h.AccountStateHash.String(),
		"parent_hash":            h.ParentHash.String(),
		"transaction_hash":       h.TransactionHash.String(),
		"total_coins":            h.TotalCoins,
		"close_time":             h.CloseTime,
		"parent_close_time":      h.ParentCloseTime,
		"close_time_resolution":  h.CloseTimeResolution,
		"close_flags":            h.CloseFlags,
		"closed":                 true,
	}

	if withTransactions {
		// expand has no richer tx body to show beyond the applied hash:
		// ClosedLedger retains only canonical tx hashes, not full tx_json
		// (spec §4.C). Both modes list the same hash strings.
		_ = expand
		hashes := make([]string, len(closed.TxHashes))
		for i, th := range closed.TxHashes {
			hashes[i] = th.String()
		}
		out["transactions"] = hashes
	}

	return out
}
