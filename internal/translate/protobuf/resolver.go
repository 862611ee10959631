// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"fmt"
	"strings"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Well-known types and the files that declare them.
var wellKnown = map[string]string{
	"google.protobuf.Timestamp": "google/protobuf/timestamp.proto",
	"google.protobuf.Value":     "google/protobuf/struct.proto",
	"google.protobuf.Any":       "google/protobuf/any.proto",
}

// resolver records the first container nesting proto3 cannot express.
type resolver struct {
	err error
}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	switch kind {
	case typemodel.String, typemodel.ObjectID, typemodel.Decimal128, typemodel.UUID:
		return "string"
	case typemodel.Number:
		return "double"
	case typemodel.BigInt:
		return "int64"
	case typemodel.Boolean:
		return "bool"
	case typemodel.Buffer:
		return "bytes"
	case typemodel.Date:
		return "google.protobuf.Timestamp"
	default:
		return "google.protobuf.Value"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	if isContainer(elemType) && r.err == nil {
		r.err = fmt.Errorf("repeated field cannot hold %q", elemType)
	}
	return "repeated " + elemType
}

func (r *resolver) MapType(valueType string) string {
	if isContainer(valueType) && r.err == nil {
		r.err = fmt.Errorf("map value cannot be %q", valueType)
	}
	return "map<string, " + valueType + ">"
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	if kind == "" {
		return "google.protobuf.Any"
	}
	return defName
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToPascalCase(defName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	if name := fieldName(f.Name); name != f.Name {
		f.Tag = fmt.Sprintf(" [json_name = %q]", f.Name)
		f.Name = name
	}
	if f.Nullable && !isContainer(f.Type) {
		f.Type = "optional " + f.Type
	}
}

func isContainer(t string) bool {
	return strings.HasPrefix(t, "repeated ") || strings.HasPrefix(t, "map<")
}

// fieldName converts a document field name to a proto field name.
func fieldName(name string) string {
	s := translate.ToSnakeCase(name)
	s = strings.TrimLeft(s, "_")
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "f_" + s
	}
	return s
}
