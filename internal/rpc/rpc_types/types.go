// Package rpc_types defines the shared request context and per-method
// handler contract used by internal/rpc/rpc_handlers, grounded on the
// teacher's rpc_types package (same name, XRPL-shaped result envelope
// instead of a JSON-RPC 2.0 envelope — see DESIGN.md).
package rpc_types

import (
	"encoding/json"
	"time"

	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/ledger"
)

// Context carries everything a method handler needs for one call. The
// caller (internal/rpc.Server) holds a mutex across the full call so a
// handler observes a consistent ledger/account snapshot (spec.md §5).
type Context struct {
	Config    *config.Config
	Ledger    *ledger.LedgerManager
	StartTime time.Time
}

// Handler implements one RPC method. params is the raw "params" object
// from the request, or nil if the request omitted it. A non-nil *Error
// aborts the call with a method-level failure; anything else a handler
// wants to report (actNotFound, InvalidTxBlob, ...) is returned as part of
// the success value, since spec.md's methods report those as ordinary
// `{"status":"error",...}` results, not protocol-level errors.
type Handler func(ctx *Context, params json.RawMessage) (any, *Error)

// Error is a method-level RPC failure: unknown method, malformed params,
// or a profile policy block.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError wraps a message as a method-level RPC error.
func NewError(message string) *Error {
	return &Error{Message: message}
}
