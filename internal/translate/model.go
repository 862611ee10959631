// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/gatsbylabs/malt/internal/typemodel"

// SchemaData is the complete input passed to a translator template.
type SchemaData struct {
	Unit    string
	Records []TypeDef  // records in model order, roots included
	Enums   []EnumDef  // enums in model order
	Unions  []UnionDef // unions in model order
	Roots   []string   // formatted root record names, in schema order
	Extra   map[string]any
}

// TypeDef represents a named record.
type TypeDef struct {
	Name      string // formatted name
	RawName   string // name in the type model
	Namespace string
	Root      bool
	Fields    []Field
}

// Field represents a single slot within a record.
type Field struct {
	Name     string            // slot name (may be mutated by EnrichField)
	Type     string            // fully resolved target type string
	Nullable bool              // true if the slot is optional
	Derived  bool              // identifier or timestamp slot
	Tag      string            // language-specific annotation, e.g. `json:"name,omitempty"`
	Ref      typemodel.TypeRef // the unformatted type
}

// EnumDef represents a named enumeration.
type EnumDef struct {
	Name      string
	RawName   string
	Namespace string
	Base      typemodel.LiteralKind
	Values    []EnumValue
}

// EnumValue is one enum literal.
type EnumValue struct {
	Key   string // identifier derived from the literal
	Value string // literal as written in the schema
	Quote bool   // true for string literals
}

// UnionDef represents a named discriminated union of records.
type UnionDef struct {
	Name      string
	RawName   string
	Namespace string
	Members   []string // formatted record names
	Nullable  bool
}
