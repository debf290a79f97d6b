// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package world

import (
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// World is the in-memory registry of actors and objects. Tag-based queries
// always reflect the live object population: deleting an object removes its
// tags from every query result immediately.
type World struct {
	nextID     int64
	players    map[int64]*Player
	characters map[int64]*Character
	objects    map[int64]*Object
}

// NewWorld creates an empty world. IDs are assigned sequentially from 1.
func NewWorld() *World {
	return &World{
		players:    make(map[int64]*Player),
		characters: make(map[int64]*Character),
		objects:    make(map[int64]*Object),
	}
}

func (w *World) allocID() int64 {
	w.nextID++
	return w.nextID
}

// AddPlayer creates and registers a player account.
func (w *World) AddPlayer(name string, tier Tier) (*Player, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	p := NewPlayer(w.allocID(), name, tier, time.Now())
	w.players[p.Ref().ID] = p
	return p, nil
}

// AddCharacter creates and registers a character, along with its in-world
// body object of the given type path. player may be nil.
func (w *World) AddCharacter(name string, tier Tier, player *Player, typePath string) (*Character, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	c := NewCharacter(w.allocID(), name, tier, time.Now(), player)
	body, err := NewObject(w.allocID(), name, typePath, time.Now())
	if err != nil {
		return nil, err
	}
	body.Character = c
	c.body = body
	w.characters[c.Ref().ID] = c
	w.objects[body.ID] = body
	return c, nil
}

// CreateObject creates and registers an object.
func (w *World) CreateObject(name, typePath string) (*Object, error) {
	o, err := NewObject(w.allocID(), name, typePath, time.Now())
	if err != nil {
		return nil, err
	}
	w.objects[o.ID] = o
	return o, nil
}

// DeleteObject removes an object from the world. Its tags and attributes
// die with it. Returns ErrNotFound for an unknown id.
func (w *World) DeleteObject(id int64) error {
	o, ok := w.objects[id]
	if !ok {
		return oops.Code("OBJECT_NOT_FOUND").With("id", id).Wrap(ErrNotFound)
	}
	if o.Character != nil {
		o.Character.body = nil
	}
	delete(w.objects, id)
	return nil
}

// Object returns the object with the given id.
func (w *World) Object(id int64) (*Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// FindPlayer resolves a player by id and creation time, compared at second
// granularity. Returns nil when no player matches.
func (w *World) FindPlayer(id int64, createdAt time.Time) *Player {
	p, ok := w.players[id]
	if !ok {
		return nil
	}
	if !p.Ref().Same(Ref{Class: ClassPlayer, ID: id, CreatedAt: createdAt}) {
		return nil
	}
	return p
}

// FindCharacter resolves a character by id and creation time, compared at
// second granularity. Returns nil when no character matches.
func (w *World) FindCharacter(id int64, createdAt time.Time) *Character {
	c, ok := w.characters[id]
	if !ok {
		return nil
	}
	if !c.Ref().Same(Ref{Class: ClassCharacter, ID: id, CreatedAt: createdAt}) {
		return nil
	}
	return c
}

// PlayerByName resolves a player by name, case-insensitively. Returns nil
// when no player matches.
func (w *World) PlayerByName(name string) *Player {
	for _, p := range w.players {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

// CharacterByName resolves a character by name, case-insensitively.
// Returns nil when no character matches.
func (w *World) CharacterByName(name string) *Character {
	for _, c := range w.characters {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}

// ObjectsTaggedAs returns the live set of objects carrying the tag key
// under category, ordered by id.
func (w *World) ObjectsTaggedAs(key, category string) []*Object {
	var out []*Object
	for _, o := range w.objects {
		if o.Tags().Has(key, category) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Search returns objects whose name or alias matches the pattern. Patterns
// may contain the wildcards * and ? and match case-insensitively; a
// pattern without wildcards must match a full name or alias.
func (w *World) Search(pattern string) ([]*Object, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, oops.Code("BAD_SEARCH_PATTERN").With("pattern", pattern).Wrap(err)
	}
	var out []*Object
	for _, o := range w.objects {
		if matchesGlob(g, o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matchesGlob(g glob.Glob, o *Object) bool {
	if g.Match(strings.ToLower(o.Name)) {
		return true
	}
	for _, a := range o.Aliases() {
		if g.Match(strings.ToLower(a)) {
			return true
		}
	}
	return false
}
