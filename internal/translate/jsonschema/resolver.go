// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsonschema

import (
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// resolver renders types as markers that the builder expands into schema
// nodes once every definition name is known.
type resolver struct{}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	return "prim:" + string(kind)
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
	return defName
}

func (r *resolver) EnrichField(*translate.Field) {}
