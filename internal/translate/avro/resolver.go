// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package avro provides Apache Avro schema translation utilities.
package avro

import (
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

type resolver struct{}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	switch kind {
	case typemodel.String, typemodel.ObjectID, typemodel.Decimal128:
		return "string"
	case typemodel.Number:
		return "double"
	case typemodel.BigInt:
		return "long"
	case typemodel.Boolean:
		return "boolean"
	case typemodel.Buffer:
		return "bytes"
	case typemodel.Date:
		return "timestamp-millis"
	case typemodel.UUID:
		return "uuid"
	default:
		return "mixed"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	return "array:" + elemType
}

func (r *resolver) MapType(valueType string) string {
	return "map:" + valueType
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	if kind == "" {
		return "ext:" + defName
	}
	return "ref:" + defName
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToIdentifier(defName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = translate.ToIdentifier(f.Name)
}
