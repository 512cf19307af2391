package rpc_handlers

import (
	"encoding/json"

	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// Ping implements the ping method: a liveness check with no side effects.
func Ping(_ *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	return map[string]any{
		"status": "success",
	}, nil
}
