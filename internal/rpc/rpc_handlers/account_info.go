package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/codec/addresscodec"
	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

type accountInfoParams struct {
	Account string `json:"account"`
}

// AccountInfo implements the account_info method (spec.md §6).
func AccountInfo(ctx *rpc_types.Context, raw json.RawMessage) (any, *rpc_types.Error) {
	var params accountInfoParams
	if err := decodeParams(raw, &params); err != nil || params.Account == "" {
		return nil, rpc_types.ErrInvalidParams("account_info")
	}

	open := ctx.Ledger.Open()

	idBytes, err := addresscodec.DecodeFixed(params.Account, ledger.AccountIDSize)
	if err != nil {
		return map[string]any{
			"status":              "error",
			"error":               "actMalformed",
			"validated":           false,
			"ledger_current_index": open.Sequence,
		}, nil
	}
	var id ledger.AccountID
	copy(id[:], idBytes)

	account, ok := open.AccountState.Get(id)
	if !ok {
		return map[string]any{
			"status":    "error",
			"error":     "actNotFound",
			"validated": true,
			"ledger_index": func() any {
				if closed := ctx.Ledger.LastClosed(); closed != nil {
					return closed.Header.Sequence
				}
				return nil
			}(),
			"ledger_hash": func() string {
				if closed := ctx.Ledger.LastClosed(); closed != nil {
					return closed.Header.Hash.String()
				}
				return ledger.Hash256{}.String()
			}(),
		}, nil
	}

	return map[string]any{
		"status":    "success",
		"validated": true,
		"account_data": map[string]any{
			"Account":    account.ID.String(),
			"Balance":    account.Balance,
			"Flags":      account.Flags,
			"OwnerCount": account.OwnerCount,
			"Sequence":   account.Sequence,
		},
		"ledger_current_index": open.Sequence,
	}, nil
}
