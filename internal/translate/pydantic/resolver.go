// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pydantic provides Pydantic BaseModel schema translation utilities.
package pydantic

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

var pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await", "break",
	"class", "continue", "def", "del", "elif", "else", "except", "finally",
	"for", "from", "global", "if", "import", "in", "is", "lambda", "nonlocal",
	"not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
}

type resolver struct{}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	switch kind {
	case typemodel.String, typemodel.ObjectID:
		return "str"
	case typemodel.Number:
		return "float"
	case typemodel.BigInt:
		return "int"
	case typemodel.Boolean:
		return "bool"
	case typemodel.Buffer:
		return "bytes"
	case typemodel.Date:
		return "datetime.datetime"
	case typemodel.Decimal128:
		return "decimal.Decimal"
	case typemodel.UUID:
		return "uuid.UUID"
	default:
		return "Any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "list[" + elemType + "]"
}

func (r *resolver) MapType(valueType string) string {
	return "dict[str, " + valueType + "]"
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	if kind == "" {
		return "Any"
	}
	return defName
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToPascalCase(defName)
}

// EnrichField renames fields that are not valid public attribute names and
// keeps the document name as the alias.
func (r *resolver) EnrichField(f *translate.Field) {
	alias := ""
	if name := attrName(f.Name); name != f.Name {
		alias = f.Name
		f.Name = name
	}

	switch {
	case f.Nullable && alias != "":
		f.Type = "Optional[" + f.Type + "]"
		f.Tag = fmt.Sprintf(" = Field(default=None, alias=%q)", alias)
	case f.Nullable:
		f.Type = "Optional[" + f.Type + "]"
		f.Tag = " = None"
	case alias != "":
		f.Tag = fmt.Sprintf(" = Field(alias=%q)", alias)
	}
}

// attrName converts a document field name to a public Python attribute.
func attrName(name string) string {
	s := strings.TrimLeft(translate.ToSnakeCase(name), "_")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "f_" + s
	}
	if slices.Contains(pythonKeywords, s) {
		s += "_"
	}
	return s
}
