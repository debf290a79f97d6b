// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package world

import "sort"

// Attr is a single named attribute value.
type Attr struct {
	Name  string
	Value any
}

// AttrStore holds one attribute namespace of an object. Every store of an
// object shares the same has/get/add/remove/all contract; the Kind
// distinguishes which prefixed namespace it backs ("" is the raw store).
type AttrStore struct {
	kind   string
	values map[string]any
}

// NewAttrStore creates an empty store for the given namespace kind.
func NewAttrStore(kind string) *AttrStore {
	return &AttrStore{kind: kind, values: make(map[string]any)}
}

// Kind returns the attribute namespace this store backs.
func (s *AttrStore) Kind() string { return s.kind }

// Has reports whether name is set.
func (s *AttrStore) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Get returns the value for name, and whether it was set.
func (s *AttrStore) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Add sets name to value, replacing any previous value.
func (s *AttrStore) Add(name string, value any) {
	s.values[name] = value
}

// Remove deletes name. Returns false if it was not set.
func (s *AttrStore) Remove(name string) bool {
	if _, ok := s.values[name]; !ok {
		return false
	}
	delete(s.values, name)
	return true
}

// All returns every attribute, sorted by name.
func (s *AttrStore) All() []Attr {
	out := make([]Attr, 0, len(s.values))
	for name, v := range s.values {
		out = append(out, Attr{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Truthy reports whether the named attribute is set to a value that reads
// as true: any value other than nil, false, zero, or the empty string.
func (s *AttrStore) Truthy(name string) bool {
	v, ok := s.values[name]
	if !ok {
		return false
	}
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}
