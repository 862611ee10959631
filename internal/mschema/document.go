// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDocument is returned when a decoded file does not have the
// expected document layout.
var ErrInvalidDocument = errors.New("invalid schema document")

// ErrInvalidDeclaration marks a single malformed schema declaration. The
// other schemas of the document stay usable.
var ErrInvalidDeclaration = errors.New("invalid schema declaration")

// Document is one schema file: an optional root namespace and an ordered
// list of top-level schema declarations.
type Document struct {
	Namespace string
	Schemas   []SchemaDecl
}

// SchemaDecl is a single top-level schema: its name, the raw field tree, and
// the optional per-schema options mapping.
type SchemaDecl struct {
	Name    string
	Fields  *Node
	Options *Node
	Pos     Pos
	// Err is set when the declaration itself is malformed, with ErrPos
	// pointing at the offending key. Such a schema fails on its own when
	// compiled.
	Err    error
	ErrPos Pos
}

// Lookup returns the schema declared under name.
func (d *Document) Lookup(name string) (SchemaDecl, bool) {
	for _, s := range d.Schemas {
		if s.Name == name {
			return s, true
		}
	}
	return SchemaDecl{}, false
}

// Names returns the schema names in declaration order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Schemas))
	for _, s := range d.Schemas {
		names = append(names, s.Name)
	}
	return names
}

// DependsOn returns the names from candidates that appear as string values
// anywhere in the schema's field tree, in candidate order.
func (s SchemaDecl) DependsOn(candidates []string) []string {
	mentioned := make(map[string]struct{})
	for n := range Walk(s.Fields) {
		if n.IsString() {
			mentioned[lastSegment(n.Value)] = struct{}{}
		}
	}
	var out []string
	for _, c := range candidates {
		if c == s.Name {
			continue
		}
		if _, ok := mentioned[c]; ok && !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

func lastSegment(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// ParseDocument interprets a decoded tree as a schema document:
//
//	namespace: mongoose
//	schemas:
//	  User:
//	    fields: {...}
//	    options: {...}
func ParseDocument(root *Node) (*Document, error) {
	if !root.IsMapping() {
		return nil, fmt.Errorf("%w: expected a mapping at the top level, got %s", ErrInvalidDocument, root.Describe())
	}

	doc := &Document{}
	var schemas *Node
	for _, e := range root.Entries {
		switch e.Key {
		case "namespace":
			if !e.Value.IsString() {
				return nil, fmt.Errorf("%w: %s: namespace must be a string", ErrInvalidDocument, e.KeyPos)
			}
			doc.Namespace = e.Value.Value
		case "schemas":
			schemas = e.Value
		default:
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidDocument, e.KeyPos, e.Key)
		}
	}

	if schemas == nil {
		return nil, fmt.Errorf("%w: missing schemas", ErrInvalidDocument)
	}
	if !schemas.IsMapping() {
		return nil, fmt.Errorf("%w: %s: schemas must be a mapping of name to declaration", ErrInvalidDocument, schemas.Pos)
	}

	for _, e := range schemas.Entries {
		doc.Schemas = append(doc.Schemas, parseDecl(e))
	}
	return doc, nil
}

func parseDecl(e Entry) SchemaDecl {
	decl := SchemaDecl{Name: e.Key, Pos: e.KeyPos}
	invalid := func(pos Pos, format string, args ...any) SchemaDecl {
		decl.Fields, decl.Options = nil, nil
		decl.Err = fmt.Errorf("%w: %s", ErrInvalidDeclaration, fmt.Sprintf(format, args...))
		decl.ErrPos = pos
		return decl
	}

	if e.Key == "" {
		return invalid(e.KeyPos, "schema name must not be empty")
	}
	if !e.Value.IsMapping() {
		return invalid(e.KeyPos, "must be a mapping with fields")
	}
	for _, sub := range e.Value.Entries {
		switch sub.Key {
		case "fields":
			if !sub.Value.IsMapping() {
				return invalid(sub.KeyPos, "fields must be a mapping")
			}
			decl.Fields = sub.Value
		case "options":
			if !sub.Value.IsMapping() {
				return invalid(sub.KeyPos, "options must be a mapping")
			}
			decl.Options = sub.Value
		default:
			return invalid(sub.KeyPos, "unknown key %q", sub.Key)
		}
	}
	if decl.Fields == nil {
		return invalid(e.KeyPos, "no fields")
	}
	return decl
}
