// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package lock parses and evaluates lock strings, the boolean access
// expressions stored on objects and in configuration. A lock string holds
// one or more entries separated by semicolons:
//
//	examine:perm(wizard);control:id(42) or pperm(immortal)
//
// Each entry names an access type and a boolean expression over lock
// functions combined with "and", "or", and "not". The access type "_"
// matches any access type not covered by another entry.
package lock

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// lockLexer defines the token types for lock strings. Keywords (and, or,
// not) are matched as Ident values by the grammar.
var lockLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[():;,]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Definition is a parsed lock string.
//
// Grammar: entry (";" entry)* [";"]
type Definition struct {
	Pos     lexer.Position `parser:""`
	Entries []*Entry       `parser:"@@ (';' @@)* ';'?"`
}

// Entry binds one access type to an expression.
type Entry struct {
	Pos        lexer.Position `parser:""`
	AccessType string         `parser:"@Ident ':'"`
	Expr       *OrExpr        `parser:"@@"`
}

// OrExpr is a disjunction of conjunctions. "or" binds loosest.
type OrExpr struct {
	Pos   lexer.Position `parser:""`
	Left  *AndExpr       `parser:"@@"`
	Right []*AndExpr     `parser:"('or' @@)*"`
}

// AndExpr is a conjunction of terms.
type AndExpr struct {
	Pos   lexer.Position `parser:""`
	Left  *Term          `parser:"@@"`
	Right []*Term        `parser:"('and' @@)*"`
}

// Term is an optionally negated function call or parenthesized expression.
type Term struct {
	Pos   lexer.Position `parser:""`
	Not   bool           `parser:"@'not'?"`
	Call  *Call          `parser:"( @@"`
	Group *OrExpr        `parser:"| '(' @@ ')' )"`
}

// Call is a lock function invocation, e.g. perm(builder) or all().
type Call struct {
	Pos  lexer.Position `parser:""`
	Func string         `parser:"@Ident"`
	Args []string       `parser:"'(' (@(Ident | Number | String) (',' @(Ident | Number | String))*)? ')'"`
}

// NewParser constructs a participle parser for the lock string grammar.
func NewParser() (*participle.Parser[Definition], error) {
	return participle.Build[Definition](
		participle.Lexer(lockLexer),
		participle.Unquote("String"),
	)
}
