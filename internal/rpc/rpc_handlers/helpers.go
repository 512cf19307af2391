// Package rpc_handlers implements one file per RPC method named in
// spec.md §4.G/§6, grounded on the teacher's rpc_handlers per-method-file
// layout.
package rpc_handlers

import "encoding/json"

// decodeParams unmarshals raw into dst, treating a missing/empty params
// object as a decode failure so callers can surface "Invalid <method>
// params" uniformly.
func decodeParams(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return errEmptyParams
	}
	return json.Unmarshal(raw, dst)
}

var errEmptyParams = jsonError("missing params")

type jsonError string

func (e jsonError) Error() string { return string(e) }
