package rpc_handlers

import (
	"encoding/json"
	"fmt"

	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

func agentConfigView(ctx *rpc_types.Context) map[string]any {
	return map[string]any{
		"status":                 "success",
		"profile":                ctx.Config.Profile,
		"max_peers":              ctx.Config.RPC.MaxPeers,
		"fee_multiplier":         ctx.Config.Fee.Multiplier,
		"strict_crypto_required": ctx.Config.Agent.StrictCryptoRequired,
		"allow_unl_updates":      ctx.Config.Agent.AllowUNLUpdates,
	}
}

// AgentConfigGet implements the agent_config_get method (spec.md §4.G).
func AgentConfigGet(ctx *rpc_types.Context, _ json.RawMessage) (any, *rpc_types.Error) {
	return agentConfigView(ctx), nil
}

type agentConfigSetParams struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// AgentConfigSet implements the agent_config_set method (spec.md §4.G).
// It is mutating and is blocked under the production profile.
func AgentConfigSet(ctx *rpc_types.Context, raw json.RawMessage) (any, *rpc_types.Error) {
	var params agentConfigSetParams
	if err := decodeParams(raw, &params); err != nil || params.Key == "" {
		return nil, rpc_types.ErrInvalidParams("agent_config_set")
	}

	switch params.Key {
	case "profile":
		var v string
		if err := json.Unmarshal(params.Value, &v); err != nil {
			return nil, rpc_types.ErrInvalidParams("agent_config_set")
		}
		ctx.Config.Profile = v
	case "max_peers":
		var v int
		if err := json.Unmarshal(params.Value, &v); err != nil {
			return nil, rpc_types.ErrInvalidParams("agent_config_set")
		}
		ctx.Config.RPC.MaxPeers = v
	case "fee_multiplier":
		var v float64
		if err := json.Unmarshal(params.Value, &v); err != nil {
			return nil, rpc_types.ErrInvalidParams("agent_config_set")
		}
		ctx.Config.Fee.Multiplier = v
	case "strict_crypto_required":
		var v bool
		if err := json.Unmarshal(params.Value, &v); err != nil {
			return nil, rpc_types.ErrInvalidParams("agent_config_set")
		}
		ctx.Config.Agent.StrictCryptoRequired = v
	case "allow_unl_updates":
		var v bool
		if err := json.Unmarshal(params.Value, &v); err != nil {
			return nil, rpc_types.ErrInvalidParams("agent_config_set")
		}
		ctx.Config.Agent.AllowUNLUpdates = v
	default:
		return nil, rpc_types.NewError(fmt.Sprintf("Unknown agent_config key: %s", params.Key))
	}

	return agentConfigView(ctx), nil
}
