// Package registry owns the fixed set of live CBOR encoders of one payload and
// resolves encoder roles to them.
//
// Lookups return pointers into an array held by the Registry, so the same role
// always yields the same *tinycbor.Encoder for the registry's lifetime.
package registry

import (
	"fmt"

	"github.com/arloliu/coapenc/errs"
	"github.com/arloliu/coapenc/tinycbor"
)

// Registry holds the top-level encoder and one encoder per Role.
type Registry struct {
	stream   *tinycbor.Stream
	global   tinycbor.Encoder
	encoders [roleCount]tinycbor.Encoder
}

// New returns a registry whose top-level encoder writes into s.
func New(s *tinycbor.Stream) *Registry {
	r := &Registry{stream: s}
	r.global.Init(s)

	return r
}

// Global returns the top-level encoder the root map is created from.
func (r *Registry) Global() *tinycbor.Encoder {
	return &r.global
}

// Encoder returns the encoder for role. It panics with an *errs.Fault wrapping
// errs.ErrUnknownEncoder for a role outside the closed set.
func (r *Registry) Encoder(role Role) *tinycbor.Encoder {
	if !role.Valid() {
		errs.Abort(fmt.Errorf("%w: %s", errs.ErrUnknownEncoder, role))
	}

	return &r.encoders[role]
}

// Lookup resolves a symbolic (name, suffix) pair to its encoder.
func (r *Registry) Lookup(name, suffix string) (*tinycbor.Encoder, error) {
	role, err := ParseRole(name, suffix)
	if err != nil {
		return nil, err
	}

	return &r.encoders[role], nil
}

// Stream returns the payload stream the registry's encoders write into.
func (r *Registry) Stream() *tinycbor.Stream {
	return r.stream
}

// Reset unbinds every role encoder and rebinds the top-level encoder to the
// stream. Pointers returned earlier stay valid.
func (r *Registry) Reset() {
	r.encoders = [roleCount]tinycbor.Encoder{}
	r.global.Init(r.stream)
}
