// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

import (
	"iter"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// Registry maps entry names to entries, remembering insertion order.
//
// Names are compared after Unicode NFC normalization, so "é" typed as one
// code point and as "e" plus a combining accent address the same entry.
//
// Registry is not safe for concurrent use; Sheet serializes access to it.
type Registry struct {
	byName map[string]*Entry
	order  []*Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Entry),
	}
}

func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// Add registers d under name, or replaces the drawer and params of an
// existing entry. A replaced entry keeps its position in iteration order,
// its handle and its last placement; since that placement no longer
// describes the new drawing, the entry drops back to StatePlaced until the
// next pass.
func (r *Registry) Add(name string, d Drawer, params any) (*Entry, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if d == nil {
		return nil, ErrNilDrawer
	}

	key := normalizeName(name)
	if e, ok := r.byName[key]; ok {
		e.drawer = d
		e.params = params
		if e.placed {
			e.state = StatePlaced
		}
		return e, nil
	}

	e := &Entry{
		name:   key,
		drawer: d,
		params: params,
		state:  StateRegistered,
	}
	r.byName[key] = e
	r.order = append(r.order, e)
	return e, nil
}

// Get returns the entry registered under name, or nil.
func (r *Registry) Get(name string) *Entry {
	return r.byName[normalizeName(name)]
}

// Remove unregisters name and returns the removed entry, or nil if the
// name was unknown.
func (r *Registry) Remove(name string) *Entry {
	key := normalizeName(name)
	e, ok := r.byName[key]
	if !ok {
		return nil
	}
	delete(r.byName, key)
	if i := slices.Index(r.order, e); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return e
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.order)
}

// At returns the i-th entry in insertion order, or nil if i is out of range.
func (r *Registry) At(i int) *Entry {
	if i < 0 || i >= len(r.order) {
		return nil
	}
	return r.order[i]
}

// All yields entries in insertion order.
func (r *Registry) All() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for _, e := range r.order {
			if !yield(e) {
				return
			}
		}
	}
}

// Entries returns a snapshot of the entries in insertion order.
func (r *Registry) Entries() []*Entry {
	return slices.Clone(r.order)
}
