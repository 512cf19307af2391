package rpc

import "github.com/goxrpld/lab/internal/rpc/rpc_types"

// registryEntry pairs a handler with whether it mutates node/ledger state,
// used to enforce the production profile's block on mutating methods
// (spec.md §4.G).
type registryEntry struct {
	handler  rpc_types.Handler
	mutating bool
}

// registry is the method-name → handler lookup, grounded on the teacher's
// MethodRegistry pattern.
type registry struct {
	methods map[string]registryEntry
}

func newRegistry() *registry {
	return &registry{methods: make(map[string]registryEntry)}
}

func (r *registry) register(name string, h rpc_types.Handler, mutating bool) {
	r.methods[name] = registryEntry{handler: h, mutating: mutating}
}

func (r *registry) lookup(name string) (registryEntry, bool) {
	entry, ok := r.methods[name]
	return entry, ok
}
