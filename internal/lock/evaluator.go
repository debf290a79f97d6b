// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package lock

import (
	"strconv"
	"strings"

	"github.com/bryonwausau/collabmush/internal/world"
)

// Context carries what lock functions evaluate against: the acting
// subject and the object the lock guards. Object may be nil for locks
// that only inspect the actor (configuration-level locks).
type Context struct {
	Subject world.Subject
	Object  *world.Object
}

// Func is a lock function. It receives the evaluation context and the
// call's arguments and reports whether access is granted.
type Func func(ctx Context, args []string) bool

// Registry maps lock function names to implementations. Function names
// are case-insensitive. The zero value is not usable; construct with
// NewRegistry.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry preloaded with the built-in lock
// functions: all, none, perm, pperm, id, pid. Callers register further
// functions, such as an ownership predicate, before evaluating locks
// that use them.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.Register("all", func(Context, []string) bool { return true })
	r.Register("none", func(Context, []string) bool { return false })
	r.Register("perm", permFunc)
	r.Register("pperm", ppermFunc)
	r.Register("id", idFunc)
	r.Register("pid", pidFunc)
	return r
}

// Register adds or replaces a lock function under name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs[strings.ToLower(name)] = fn
}

// Check evaluates the entry for accessType against ctx. A definition with
// no matching entry (direct or wildcard) denies access. Unknown functions
// evaluate false.
func (d *Definition) Check(accessType string, reg *Registry, ctx Context) bool {
	e := d.entryFor(accessType)
	if e == nil {
		return false
	}
	return evalOr(e.Expr, reg, ctx)
}

// CheckString parses lockstring and evaluates accessType against ctx. An
// unparseable lock string denies access and returns the parse error.
func CheckString(lockstring, accessType string, reg *Registry, ctx Context) (bool, error) {
	def, err := Parse(lockstring)
	if err != nil {
		return false, err
	}
	return def.Check(accessType, reg, ctx), nil
}

func evalOr(e *OrExpr, reg *Registry, ctx Context) bool {
	if evalAnd(e.Left, reg, ctx) {
		return true
	}
	for _, a := range e.Right {
		if evalAnd(a, reg, ctx) {
			return true
		}
	}
	return false
}

func evalAnd(a *AndExpr, reg *Registry, ctx Context) bool {
	if !evalTerm(a.Left, reg, ctx) {
		return false
	}
	for _, t := range a.Right {
		if !evalTerm(t, reg, ctx) {
			return false
		}
	}
	return true
}

func evalTerm(t *Term, reg *Registry, ctx Context) bool {
	var v bool
	switch {
	case t.Call != nil:
		fn, ok := reg.funcs[t.Call.Func]
		if ok {
			v = fn(ctx, t.Call.Args)
		}
	case t.Group != nil:
		v = evalOr(t.Group, reg, ctx)
	}
	if t.Not {
		return !v
	}
	return v
}

// permFunc grants access when the subject's own tier meets the named
// tier. Tier names accept a trailing plural "s" (perm(builders)).
func permFunc(ctx Context, args []string) bool {
	if ctx.Subject == nil || len(args) != 1 {
		return false
	}
	want, ok := parseTierArg(args[0])
	if !ok {
		return false
	}
	return ctx.Subject.Tier() >= want
}

// ppermFunc is perm against the subject's account tier, so a wizard
// puppeting an unprivileged character still passes.
func ppermFunc(ctx Context, args []string) bool {
	if ctx.Subject == nil || len(args) != 1 {
		return false
	}
	want, ok := parseTierArg(args[0])
	if !ok {
		return false
	}
	return ctx.Subject.Account().Tier() >= want
}

// idFunc grants access to the subject with the given numeric id.
func idFunc(ctx Context, args []string) bool {
	if ctx.Subject == nil || len(args) != 1 {
		return false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return false
	}
	return ctx.Subject.Ref().ID == id
}

// pidFunc is id against the subject's account.
func pidFunc(ctx Context, args []string) bool {
	if ctx.Subject == nil || len(args) != 1 {
		return false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return false
	}
	return ctx.Subject.Account().Ref().ID == id
}

func parseTierArg(arg string) (world.Tier, bool) {
	if t, ok := world.ParseTier(arg); ok {
		return t, true
	}
	if s, found := strings.CutSuffix(strings.ToLower(arg), "s"); found {
		return world.ParseTier(s)
	}
	return world.TierNormal, false
}
