// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package mschema provides document-schema loading, parsing, and traversal utilities.
//
// A document schema is a tree of raw field descriptions: bare type markers
// ("String"), modifier objects ({type: String, required: true}), array markers
// ([String]), map markers ({type: Map, of: Number}) and nested objects. The tree
// is kept exactly as written, with mapping keys in declaration order, so the
// resolver can classify each node without losing source positions.
package mschema

import (
	"fmt"
	"strconv"
)

// Kind identifies the structural kind of a Node.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ScalarKind identifies the literal kind of a scalar Node.
type ScalarKind int

const (
	ScalarString ScalarKind = iota + 1
	ScalarNumber
	ScalarBool
	ScalarNull
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarNumber:
		return "number"
	case ScalarBool:
		return "bool"
	case ScalarNull:
		return "null"
	default:
		return "unknown"
	}
}

// Pos is a 1-based source position. The zero value means unknown.
type Pos struct {
	Line   int
	Column int
}

// IsValid reports whether the position is known.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one raw field description, or one part of it.
type Node struct {
	Kind    Kind
	Scalar  ScalarKind // scalars only
	Value   string     // scalar text as written
	Items   []*Node    // sequences only
	Entries []Entry    // mappings only, in declaration order
	Pos     Pos
}

// Entry is a single key/value pair of a mapping Node.
type Entry struct {
	Key    string
	KeyPos Pos
	Value  *Node
}

// IsScalar reports whether n is a scalar.
func (n *Node) IsScalar() bool { return n != nil && n.Kind == KindScalar }

// IsString reports whether n is a string scalar.
func (n *Node) IsString() bool { return n.IsScalar() && n.Scalar == ScalarString }

// IsSequence reports whether n is a sequence.
func (n *Node) IsSequence() bool { return n != nil && n.Kind == KindSequence }

// IsMapping reports whether n is a mapping.
func (n *Node) IsMapping() bool { return n != nil && n.Kind == KindMapping }

// Lookup returns the value stored under key in a mapping Node.
func (n *Node) Lookup(key string) (*Node, bool) {
	if !n.IsMapping() {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether a mapping Node contains key.
func (n *Node) Has(key string) bool {
	_, ok := n.Lookup(key)
	return ok
}

// Bool returns the value of a bool scalar. ok is false for any other node.
func (n *Node) Bool() (v, ok bool) {
	if !n.IsScalar() || n.Scalar != ScalarBool {
		return false, false
	}
	b, err := strconv.ParseBool(n.Value)
	if err != nil {
		return false, false
	}
	return b, true
}

// Describe returns a short human-readable description of the node,
// suitable for error messages.
func (n *Node) Describe() string {
	if n == nil {
		return "nothing"
	}
	switch n.Kind {
	case KindScalar:
		if n.Scalar == ScalarString {
			return fmt.Sprintf("string %q", n.Value)
		}
		return fmt.Sprintf("%s %s", n.Scalar, n.Value)
	case KindSequence:
		return fmt.Sprintf("sequence of %d", len(n.Items))
	case KindMapping:
		return fmt.Sprintf("mapping with %d keys", len(n.Entries))
	default:
		return "unknown node"
	}
}
