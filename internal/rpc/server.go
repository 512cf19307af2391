// Package rpc implements the profile-gated JSON control surface described
// in spec.md §4.G/§6, grounded on the teacher's rpc.Server/MethodRegistry
// structure but adapted to an XRPL-style `{"result": {...}}` response
// envelope instead of a generic JSON-RPC 2.0 envelope (see DESIGN.md).
package rpc

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/goxrpld/lab/internal/config"
	"github.com/goxrpld/lab/internal/core/ledger"
	"github.com/goxrpld/lab/internal/rpc/rpc_types"
)

// Server is the HTTP front end for the JSON control surface. One mutex
// serializes method calls for the duration of each call so a handler
// observes a consistent ledger/account snapshot (spec.md §5); no lock is
// held across a consensus tick, which runs outside this package.
type Server struct {
	config   *config.Config
	ledger   *ledger.LedgerManager
	registry *registry
	mu       sync.Mutex
	started  time.Time
}

// NewServer builds an RPC server bound to the given config and ledger
// manager.
func NewServer(cfg *config.Config, lm *ledger.LedgerManager) *Server {
	r := newRegistry()
	registerMethods(r)
	return &Server{config: cfg, ledger: lm, registry: r, started: time.Now()}
}

type request struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "only POST is supported", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeErrorResult(w, rpc_types.NewError("failed to read request body"))
		return
	}
	defer r.Body.Close()

	var req request
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeErrorResult(w, rpc_types.NewError("Invalid JSON"))
		return
	}

	result, rpcErr := s.call(req.Method, req.Params)
	if rpcErr != nil {
		s.writeErrorResult(w, rpcErr)
		return
	}
	s.writeResult(w, result)
}

// call looks up and invokes method, holding the server mutex for the full
// call.
func (s *Server) call(method string, params json.RawMessage) (any, *rpc_types.Error) {
	entry, ok := s.registry.lookup(method)
	if !ok {
		return nil, rpc_types.ErrUnknownMethod()
	}

	if entry.mutating && !s.config.IsResearchProfile() {
		return nil, rpc_types.ErrBlockedByProfile()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := &rpc_types.Context{Config: s.config, Ledger: s.ledger, StartTime: s.started}
	return entry.handler(ctx, params)
}

func (s *Server) writeResult(w http.ResponseWriter, result any) {
	s.writeEnvelope(w, http.StatusOK, result)
}

func (s *Server) writeErrorResult(w http.ResponseWriter, rpcErr *rpc_types.Error) {
	s.writeEnvelope(w, http.StatusOK, map[string]any{
		"status": "error",
		"error":  rpcErr.Error(),
	})
}

func (s *Server) writeEnvelope(w http.ResponseWriter, statusCode int, result any) {
	body, err := json.Marshal(map[string]any{"result": result})
	if err != nil {
		log.Printf("rpc: failed to marshal response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(statusCode)
	w.Write(body)
}
