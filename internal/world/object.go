// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package world

import (
	"strings"
	"time"
)

// Object is an in-world entity: a room, exit, thing, or a character's body.
type Object struct {
	ID          int64
	Name        string
	TypePath    string
	CreatedAt   time.Time
	Location    *Object
	Destination *Object
	Home        *Object
	Character   *Character // set when this object is a character's body

	aliases []string
	tags    *TagHandler
	stores  map[string]*AttrStore
	locks   map[string]string
}

// NewObject creates an object. Name is validated; callers wanting aliases
// add them afterwards.
func NewObject(id int64, name, typePath string, createdAt time.Time) (*Object, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Object{ID: id, Name: name, TypePath: typePath, CreatedAt: createdAt}, nil
}

// Ref implements Entity. A character body is identified by its character so
// ownership comparisons treat them as one entity.
func (o *Object) Ref() Ref {
	if o.Character != nil {
		return o.Character.Ref()
	}
	return Ref{Class: ClassObject, ID: o.ID, CreatedAt: o.CreatedAt}
}

// Rename changes the object's name after validation.
func (o *Object) Rename(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	o.Name = name
	return nil
}

// Aliases returns the object's aliases in insertion order.
func (o *Object) Aliases() []string {
	out := make([]string, len(o.aliases))
	copy(out, o.aliases)
	return out
}

// AddAlias adds an alias. Duplicate aliases on the same object are
// rejected.
func (o *Object) AddAlias(alias string) error {
	if err := ValidateAliases(append(o.aliases, alias)); err != nil {
		return err
	}
	for _, a := range o.aliases {
		if a == alias {
			return &ValidationError{Field: "aliases", Message: "duplicate alias: " + alias}
		}
	}
	o.aliases = append(o.aliases, alias)
	return nil
}

// RemoveAlias removes an alias. Returns false if it was not present.
func (o *Object) RemoveAlias(alias string) bool {
	for i, a := range o.aliases {
		if a == alias {
			o.aliases = append(o.aliases[:i], o.aliases[i+1:]...)
			return true
		}
	}
	return false
}

// ClearAliases removes all aliases.
func (o *Object) ClearAliases() { o.aliases = nil }

// Tags returns the object's tag handler, creating it on first use.
func (o *Object) Tags() *TagHandler {
	if o.tags == nil {
		o.tags = NewTagHandler()
	}
	return o.tags
}

// Store returns the attribute store for the given namespace kind, creating
// it on first use. The empty kind is the raw store.
func (o *Object) Store(kind string) *AttrStore {
	if o.stores == nil {
		o.stores = make(map[string]*AttrStore)
	}
	s, ok := o.stores[kind]
	if !ok {
		s = NewAttrStore(kind)
		o.stores[kind] = s
	}
	return s
}

// Lock returns the lock string stored under name, and whether one is set.
func (o *Object) Lock(name string) (string, bool) {
	s, ok := o.locks[name]
	return s, ok
}

// SetLock stores a lock string under name, replacing any previous one.
func (o *Object) SetLock(name, lockstring string) {
	if o.locks == nil {
		o.locks = make(map[string]string)
	}
	o.locks[name] = lockstring
}

// Locks returns a copy of all lock strings keyed by lock name.
func (o *Object) Locks() map[string]string {
	out := make(map[string]string, len(o.locks))
	for name, s := range o.locks {
		out[name] = s
	}
	return out
}

// RemoveLock deletes the lock string under name.
func (o *Object) RemoveLock(name string) {
	delete(o.locks, name)
}

// Matches reports whether the object's name or one of its aliases equals
// the query, case-insensitively.
func (o *Object) Matches(query string) bool {
	if strings.EqualFold(o.Name, query) {
		return true
	}
	for _, a := range o.aliases {
		if strings.EqualFold(a, query) {
			return true
		}
	}
	return false
}
