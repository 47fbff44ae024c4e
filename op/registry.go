// Copyright 2026 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package op

import (
	"github.com/grailbio/simdviz/must"
	"github.com/grailbio/simdviz/simd"
	"github.com/samber/lo"
)

// Registry is an ordered, immutable set of operation definitions. It is
// safe for concurrent use.
type Registry struct {
	defs []*Definition
	byID map[string]*Definition
	def  string
}

// NewRegistry returns a registry holding defs in the given order. The
// first definition is the default selection. NewRegistry panics if defs
// is empty, if two definitions share an ID, or if a definition is missing
// its transform or has an unknown category.
func NewRegistry(defs ...Definition) *Registry {
	must.True(len(defs) > 0, "op.NewRegistry: no definitions")
	r := &Registry{byID: make(map[string]*Definition, len(defs))}
	for i := range defs {
		d := defs[i]
		must.Truef(d.ID != "", "op.NewRegistry: definition %d has no id", i)
		must.Truef(r.byID[d.ID] == nil, "op.NewRegistry: duplicate id %q", d.ID)
		must.Truef(d.Arity == Unary || d.Arity == Binary, "op.NewRegistry: %s has invalid arity %v", d.ID, d.Arity)
		must.Truef(d.Transform != nil, "op.NewRegistry: %s has no transform", d.ID)
		must.Truef(lo.Contains(Categories(), d.Category), "op.NewRegistry: %s has unknown category %q", d.ID, d.Category)
		r.defs = append(r.defs, &d)
		r.byID[d.ID] = &d
	}
	r.def = defs[0].ID
	return r
}

// Lookup returns the definition registered under id. It returns an error
// for which IsUnknownOperation is true if id is not registered.
func (r *Registry) Lookup(id string) (*Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, unknown(id)
	}
	return d, nil
}

// Has tells whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Default returns the id selected when a view starts.
func (r *Registry) Default() string {
	return r.def
}

// All returns every definition in registration order.
func (r *Registry) All() []*Definition {
	return append([]*Definition(nil), r.defs...)
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	return lo.Map(r.defs, func(d *Definition, _ int) string { return d.ID })
}

// ListByCategory returns the definitions in category c, in registration
// order.
func (r *Registry) ListByCategory(c Category) []*Definition {
	return lo.Filter(r.defs, func(d *Definition, _ int) bool { return d.Category == c })
}

// Apply looks up id and applies its transform to a and b.
func (r *Registry) Apply(id string, a, b simd.Vec) (simd.Vec, error) {
	d, err := r.Lookup(id)
	if err != nil {
		return simd.Vec{}, err
	}
	return d.Apply(a, b), nil
}
