// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package world defines the in-memory object and actor model the collab
// layer operates on: players and characters with privilege tiers, game
// objects with tag stores, prefixed attribute stores, and lock strings.
//
// The model assumes the host's cooperative command dispatcher: one command
// runs to completion before the next touches the same object, so none of
// these types carry their own synchronization.
package world

import (
	"strings"
	"time"
)

// Tier is an actor's privilege level. Higher tiers include the powers of
// lower ones.
type Tier int

// Privilege tiers, lowest to highest.
const (
	TierNormal Tier = iota
	TierBuilder
	TierWizard
	TierImmortal
)

var tierNames = map[Tier]string{
	TierNormal:   "normal",
	TierBuilder:  "builder",
	TierWizard:   "wizard",
	TierImmortal: "immortal",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseTier maps a tier name (case-insensitive) to its Tier.
// Returns TierNormal and false for unknown names.
func ParseTier(name string) (Tier, bool) {
	lower := strings.ToLower(name)
	for t, n := range tierNames {
		if n == lower {
			return t, true
		}
	}
	return TierNormal, false
}

// Class discriminates the kinds of entities an ownership tag can point at.
type Class string

// Entity classes.
const (
	ClassPlayer    Class = "player"
	ClassCharacter Class = "character"
	ClassObject    Class = "object"
)

// Ref identifies an entity unambiguously: numeric ids are reused by some
// stores, so the creation timestamp disambiguates.
type Ref struct {
	Class     Class
	ID        int64
	CreatedAt time.Time
}

// Same reports whether two refs name the same entity. Creation timestamps
// are compared at second granularity to tolerate storage-layer precision
// differences.
func (r Ref) Same(other Ref) bool {
	return r.Class == other.Class &&
		r.ID == other.ID &&
		r.CreatedAt.Truncate(time.Second).Equal(other.CreatedAt.Truncate(time.Second))
}

// Entity is anything lock strings can be evaluated against.
type Entity interface {
	Ref() Ref
}

// Subject is an acting identity: a player account or a character it
// controls.
type Subject interface {
	Entity
	Name() string
	Tier() Tier
	// Account normalizes to the account-level actor: a player returns
	// itself, a character returns its controlling player, or itself when
	// uncontrolled.
	Account() Subject
	// Store returns the subject's attribute store for the given namespace
	// kind. A bodied character shares its body object's stores.
	Store(kind string) *AttrStore
}

// Player is an account-level actor.
type Player struct {
	id        int64
	name      string
	tier      Tier
	createdAt time.Time
	stores    map[string]*AttrStore
}

// NewPlayer creates a player. The creation timestamp is recorded for
// ownership-tag disambiguation.
func NewPlayer(id int64, name string, tier Tier, createdAt time.Time) *Player {
	return &Player{id: id, name: name, tier: tier, createdAt: createdAt}
}

// Ref implements Entity.
func (p *Player) Ref() Ref { return Ref{Class: ClassPlayer, ID: p.id, CreatedAt: p.createdAt} }

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

// Tier returns the player's privilege tier.
func (p *Player) Tier() Tier { return p.tier }

// Account implements Subject: players are their own account.
func (p *Player) Account() Subject { return p }

// SetTier changes the player's privilege tier.
func (p *Player) SetTier(t Tier) { p.tier = t }

// Store returns the player's attribute store for kind, creating it on
// first use.
func (p *Player) Store(kind string) *AttrStore {
	if p.stores == nil {
		p.stores = make(map[string]*AttrStore)
	}
	s, ok := p.stores[kind]
	if !ok {
		s = NewAttrStore(kind)
		p.stores[kind] = s
	}
	return s
}

// Character is an in-world actor, optionally controlled by a Player.
type Character struct {
	id        int64
	name      string
	tier      Tier
	createdAt time.Time
	player    *Player
	body      *Object
	stores    map[string]*AttrStore
}

// NewCharacter creates a character. player may be nil for an uncontrolled
// character, which then acts as its own account.
func NewCharacter(id int64, name string, tier Tier, createdAt time.Time, player *Player) *Character {
	return &Character{id: id, name: name, tier: tier, createdAt: createdAt, player: player}
}

// Ref implements Entity.
func (c *Character) Ref() Ref { return Ref{Class: ClassCharacter, ID: c.id, CreatedAt: c.createdAt} }

// Name returns the character's name.
func (c *Character) Name() string { return c.name }

// Tier returns the character's own privilege tier, not the account's.
func (c *Character) Tier() Tier { return c.tier }

// Account returns the controlling player, or the character itself when
// uncontrolled.
func (c *Character) Account() Subject {
	if c.player != nil {
		return c.player
	}
	return c
}

// Player returns the controlling player, or nil.
func (c *Character) Player() *Player { return c.player }

// Body returns the character's in-world object, or nil when the character
// has no body.
func (c *Character) Body() *Object { return c.body }

// SetTier changes the character's privilege tier.
func (c *Character) SetTier(t Tier) { c.tier = t }

// Store returns the attribute store for kind: the body object's store
// when the character has a body, its own otherwise.
func (c *Character) Store(kind string) *AttrStore {
	if c.body != nil {
		return c.body.Store(kind)
	}
	if c.stores == nil {
		c.stores = make(map[string]*AttrStore)
	}
	s, ok := c.stores[kind]
	if !ok {
		s = NewAttrStore(kind)
		c.stores[kind] = s
	}
	return s
}

// SameSubject reports whether two subjects are the same entity.
func SameSubject(a, b Subject) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Ref().Same(b.Ref())
}
