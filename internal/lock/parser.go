// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package lock

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/samber/oops"
)

// parser is the singleton participle parser instance.
var parser *participle.Parser[Definition]

func init() {
	var err error
	parser, err = NewParser()
	if err != nil {
		panic(fmt.Sprintf("failed to build lock parser: %v", err))
	}
}

// Parse parses a lock string into a Definition. Access types and function
// names are normalized to lowercase. Duplicate access types within one
// string are rejected.
func Parse(lockstring string) (*Definition, error) {
	def, err := parser.ParseString("", lockstring)
	if err != nil {
		return nil, oops.Code("LOCK_PARSE").With("lockstring", lockstring).Wrapf(err, "parsing lock string")
	}

	seen := make(map[string]struct{}, len(def.Entries))
	for _, e := range def.Entries {
		e.AccessType = strings.ToLower(e.AccessType)
		if _, dup := seen[e.AccessType]; dup {
			return nil, oops.Code("LOCK_PARSE").
				With("lockstring", lockstring).
				With("access_type", e.AccessType).
				Errorf("duplicate access type %q", e.AccessType)
		}
		seen[e.AccessType] = struct{}{}
		normalizeExpr(e.Expr)
	}
	return def, nil
}

func normalizeExpr(e *OrExpr) {
	normalizeAnd(e.Left)
	for _, a := range e.Right {
		normalizeAnd(a)
	}
}

func normalizeAnd(a *AndExpr) {
	normalizeTerm(a.Left)
	for _, t := range a.Right {
		normalizeTerm(t)
	}
}

func normalizeTerm(t *Term) {
	if t.Call != nil {
		t.Call.Func = strings.ToLower(t.Call.Func)
	}
	if t.Group != nil {
		normalizeExpr(t.Group)
	}
}

// entryFor returns the entry matching accessType, falling back to the "_"
// wildcard entry, or nil.
func (d *Definition) entryFor(accessType string) *Entry {
	accessType = strings.ToLower(accessType)
	var wildcard *Entry
	for _, e := range d.Entries {
		if e.AccessType == accessType {
			return e
		}
		if e.AccessType == "_" {
			wildcard = e
		}
	}
	return wildcard
}

// Has reports whether the definition covers accessType, directly or via
// the wildcard entry.
func (d *Definition) Has(accessType string) bool {
	return d.entryFor(accessType) != nil
}
