// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import "strconv"

// The constructors below build field trees in Go code, the same way a schema
// object would be declared at runtime. Nodes built here carry no positions.

// Ident returns a bare type marker such as "String" or "Schema.Types.ObjectId".
func Ident(name string) *Node { return Str(name) }

// Str returns a string scalar.
func Str(s string) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarString, Value: s}
}

// Num returns a numeric scalar.
func Num(v float64) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarNumber, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Bool returns a bool scalar.
func Bool(v bool) *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarBool, Value: strconv.FormatBool(v)}
}

// Null returns a null scalar.
func Null() *Node {
	return &Node{Kind: KindScalar, Scalar: ScalarNull, Value: "null"}
}

// Seq returns a sequence of items.
func Seq(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// Map returns a mapping with entries in the given order.
func Map(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}

// E returns a mapping entry.
func E(key string, value *Node) Entry {
	return Entry{Key: key, Value: value}
}

// Schema returns a top-level schema declaration. options may be nil.
func Schema(name string, fields, options *Node) SchemaDecl {
	return SchemaDecl{Name: name, Fields: fields, Options: options}
}

// Doc returns a document holding schemas in the given order.
func Doc(schemas ...SchemaDecl) *Document {
	return &Document{Schemas: schemas}
}
