// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package gotypes

import (
	"strings"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// resolver remembers which named types render as interfaces; those are
// never wrapped in a pointer.
type resolver struct {
	interfaces map[string]bool
}

func newResolver() *resolver {
	return &resolver{interfaces: make(map[string]bool)}
}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	switch kind {
	case typemodel.String, typemodel.ObjectID, typemodel.Decimal128, typemodel.UUID:
		return "string"
	case typemodel.Number:
		return "float64"
	case typemodel.BigInt:
		return "int64"
	case typemodel.Boolean:
		return "bool"
	case typemodel.Date:
		return "time.Time"
	case typemodel.Buffer:
		return "[]byte"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "[]" + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map[string]" + valueType
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	if kind == typemodel.KindUnion || kind == "" {
		r.interfaces[defName] = true
	}
	if kind == "" {
		return "any"
	}
	return defName
}

func (r *resolver) FormatDefName(defName string) string {
	return toPascalCase(defName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	tag := f.Name
	if f.Nullable {
		tag += ",omitempty"
		if r.pointable(f.Type) {
			f.Type = "*" + f.Type
		}
	}
	f.Tag = "`json:\"" + tag + "\" bson:\"" + tag + "\"`"
	f.Name = toPascalCase(f.Name)
}

// pointable reports whether an optional field of type t needs a pointer to
// tell absent from zero.
func (r *resolver) pointable(t string) bool {
	switch {
	case t == "any", r.interfaces[t]:
		return false
	case strings.HasPrefix(t, "[]"), strings.HasPrefix(t, "map["):
		return false
	}
	return true
}

// Common Go acronyms that should be fully uppercased.
var acronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"http": "HTTP",
	"api":  "API",
	"json": "JSON",
	"xml":  "XML",
	"sql":  "SQL",
	"html": "HTML",
	"ip":   "IP",
	"uri":  "URI",
	"uuid": "UUID",
}

// toPascalCase converts a field or type name to an exported Go identifier,
// uppercasing common acronyms.
func toPascalCase(s string) string {
	out := joinWords(s)
	if out == "" || (out[0] >= '0' && out[0] <= '9') {
		out = "X" + out
	}
	return out
}

func joinWords(s string) string {
	words := strings.FieldsFunc(translate.ToSnakeCase(s), func(r rune) bool {
		return r == '_'
	})

	var sb strings.Builder
	for _, w := range words {
		if acronym, ok := acronyms[w]; ok {
			sb.WriteString(acronym)
		} else {
			sb.WriteString(strings.ToUpper(w[:1]) + w[1:])
		}
	}
	return sb.String()
}
