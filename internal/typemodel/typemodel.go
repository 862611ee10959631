// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typemodel defines the resolved type graph produced from document
// schemas: named records, enumerations and discriminated unions, and the
// type references that connect them.
//
// A Model is immutable once built. Accessors return copies, so translators
// can reshape what they read without affecting other consumers.
package typemodel

import (
	"fmt"
	"slices"
)

// PrimitiveKind is a scalar type understood by every translator.
type PrimitiveKind string

const (
	String     PrimitiveKind = "String"
	Number     PrimitiveKind = "Number"
	Boolean    PrimitiveKind = "Boolean"
	Date       PrimitiveKind = "Date"
	Buffer     PrimitiveKind = "Buffer"
	ObjectID   PrimitiveKind = "ObjectId"
	Decimal128 PrimitiveKind = "Decimal128"
	UUID       PrimitiveKind = "UUID"
	BigInt     PrimitiveKind = "BigInt"
	Mixed      PrimitiveKind = "Mixed"
)

var primitiveKinds = []PrimitiveKind{String, Number, Boolean, Date, Buffer, ObjectID, Decimal128, UUID, BigInt, Mixed}

// PrimitiveKinds returns every known primitive kind.
func PrimitiveKinds() []PrimitiveKind {
	return slices.Clone(primitiveKinds)
}

// RefKind identifies the variant of a TypeRef.
type RefKind string

const (
	RefPrimitive RefKind = "primitive"
	RefArray     RefKind = "array"
	RefMap       RefKind = "map"
	RefNamed     RefKind = "named"
)

// TypeRef is the type of a field slot: a primitive, an array or string-keyed
// map of another TypeRef, or a reference to a named type.
type TypeRef struct {
	Kind      RefKind       `json:"kind"`
	Primitive PrimitiveKind `json:"primitive,omitempty"`
	Elem      *TypeRef      `json:"elem,omitempty"`
	Name      string        `json:"name,omitempty"`
}

// Prim returns a primitive reference.
func Prim(k PrimitiveKind) TypeRef { return TypeRef{Kind: RefPrimitive, Primitive: k} }

// ArrayOf returns an array reference.
func ArrayOf(elem TypeRef) TypeRef { return TypeRef{Kind: RefArray, Elem: &elem} }

// MapOf returns a string-keyed map reference.
func MapOf(value TypeRef) TypeRef { return TypeRef{Kind: RefMap, Elem: &value} }

// Named returns a reference to a named type.
func Named(name string) TypeRef { return TypeRef{Kind: RefNamed, Name: name} }

// Clone returns a deep copy of r.
func (r TypeRef) Clone() TypeRef {
	if r.Elem != nil {
		e := r.Elem.Clone()
		r.Elem = &e
	}
	return r
}

func (r TypeRef) String() string {
	switch r.Kind {
	case RefPrimitive:
		return string(r.Primitive)
	case RefArray:
		return fmt.Sprintf("[%s]", r.Elem)
	case RefMap:
		return fmt.Sprintf("Map<%s>", r.Elem)
	case RefNamed:
		return r.Name
	default:
		return "?"
	}
}

// FieldSlot is one field of a record.
type FieldSlot struct {
	Name     string  `json:"name"`
	Type     TypeRef `json:"type"`
	Optional bool    `json:"optional"`
	// Derived marks slots synthesized from schema options rather than
	// declared: the identifier and the timestamps.
	Derived bool `json:"derived,omitempty"`
}

// LiteralKind is the kind of an enum literal.
type LiteralKind string

const (
	LiteralString LiteralKind = "string"
	LiteralNumber LiteralKind = "number"
)

// Literal is one enum value, kept as written.
type Literal struct {
	Kind  LiteralKind `json:"kind"`
	Value string      `json:"value"`
}

// TypeKind identifies the variant of a NamedType.
type TypeKind string

const (
	KindRecord TypeKind = "record"
	KindEnum   TypeKind = "enum"
	KindUnion  TypeKind = "union"
)

// NamedType is a type registered in a Model under a unique name.
// The set of implementations is closed: *RecordType, *EnumType, *UnionType.
type NamedType interface {
	TypeName() string
	TypeNamespace() string
	Kind() TypeKind
	clone() NamedType
}

// RecordType is a structured type with ordered fields.
type RecordType struct {
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []FieldSlot `json:"fields"`
}

func (r *RecordType) TypeName() string      { return r.Name }
func (r *RecordType) TypeNamespace() string { return r.Namespace }
func (r *RecordType) Kind() TypeKind        { return KindRecord }

func (r *RecordType) clone() NamedType {
	c := *r
	c.Fields = make([]FieldSlot, len(r.Fields))
	for i, f := range r.Fields {
		f.Type = f.Type.Clone()
		c.Fields[i] = f
	}
	return &c
}

// Field returns the field with the given name.
func (r *RecordType) Field(name string) (FieldSlot, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSlot{}, false
}

// EnumType is a closed set of literal values of one kind.
type EnumType struct {
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Base      LiteralKind `json:"base"`
	Literals  []Literal   `json:"literals"`
}

func (e *EnumType) TypeName() string      { return e.Name }
func (e *EnumType) TypeNamespace() string { return e.Namespace }
func (e *EnumType) Kind() TypeKind        { return KindEnum }

func (e *EnumType) clone() NamedType {
	c := *e
	c.Literals = slices.Clone(e.Literals)
	return &c
}

// UnionType is a discriminated union of records.
type UnionType struct {
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	Members   []string `json:"members"`
	Nullable  bool     `json:"nullable"`
}

func (u *UnionType) TypeName() string      { return u.Name }
func (u *UnionType) TypeNamespace() string { return u.Namespace }
func (u *UnionType) Kind() TypeKind        { return KindUnion }

func (u *UnionType) clone() NamedType {
	c := *u
	c.Members = slices.Clone(u.Members)
	return &c
}

// FullName returns the namespace-qualified name of t.
func FullName(t NamedType) string {
	if t.TypeNamespace() == "" {
		return t.TypeName()
	}
	return t.TypeNamespace() + "." + t.TypeName()
}
