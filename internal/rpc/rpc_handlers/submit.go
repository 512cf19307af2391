package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/codec/addresscodec"
	"github.com/goxrpld/lab/internal/core/tx"
	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

type submitParams struct {
	TxBlob string `json:"tx_blob"`
}

// Submit implements the submit method (spec.md §4.G, §6): mutating, so it
// is registered with the profile-gated flag and blocked under production.
func Submit(ctx *rpc_types.Context, raw json.RawMessage) (any, *rpc_types.Error) {
	var params submitParams
	if err := decodeParams(raw, &params); err != nil || params.TxBlob == "" {
		return nil, rpc_types.ErrInvalidParams("submit")
	}

	blob, err := addresscodec.DecodeHexUpper(params.TxBlob)
	if err != nil {
		return map[string]any{
			"status": "error",
			"error":  "InvalidTxBlob",
		}, nil
	}

	transaction, receipt, err := tx.Submit(ctx.Ledger, blob, ctx.Config.Fee.BaseFee)
	if err != nil {
		return map[string]any{
			"status": "error",
			"error":  "InvalidTxBlob",
		}, nil
	}

	return map[string]any{
		"status":             "success",
		"engine_result":      receipt.EngineResult,
		"engine_result_code": receipt.EngineResultCode,
		"tx_json": map[string]any{
			"TransactionType": transaction.TypeName(),
			"Account":         transaction.Account.String(),
			"Fee":             transaction.Fee,
			"Sequence":        transaction.Sequence,
		},
		"validated": false,
	}, nil
}
