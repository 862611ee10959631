// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typescript

import (
	"regexp"
	"strings"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

type resolver struct{}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	switch kind {
	case typemodel.String:
		return "string"
	case typemodel.Number:
		return "number"
	case typemodel.Boolean:
		return "boolean"
	case typemodel.Date:
		return "Date"
	case typemodel.Buffer:
		return "Buffer"
	case typemodel.ObjectID:
		return "mongoose.Types.ObjectId"
	case typemodel.Decimal128:
		return "mongoose.Types.Decimal128"
	case typemodel.UUID:
		return "mongoose.Types.UUID"
	case typemodel.BigInt:
		return "bigint"
	default:
		return "any"
	}
}

func (r *resolver) ArrayType(elemType string) string {
	if strings.ContainsAny(elemType, " |") {
		return "(" + elemType + ")[]"
	}
	return elemType + "[]"
}

func (r *resolver) MapType(valueType string) string {
	return "Map<string, " + valueType + ">"
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	return defName
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToIdentifier(defName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	if f.Nullable {
		f.Type += " | null | undefined"
	}
	if !identRe.MatchString(f.Name) {
		f.Name = quote(f.Name)
	}
}

func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
