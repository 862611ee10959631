// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package markdown provides markdown schema documentation utilities.
package markdown

import (
	"strings"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

type resolver struct{}

func (r *resolver) PrimitiveType(kind typemodel.PrimitiveKind) string {
	return string(kind)
}

func (r *resolver) ArrayType(elemType string) string {
	return "array(" + elemType + ")"
}

func (r *resolver) MapType(valueType string) string {
	return "map(" + valueType + ")"
}

func (r *resolver) RefType(defName string, kind typemodel.TypeKind) string {
	if kind == "" {
		return defName
	}
	return "[" + defName + "](#" + anchor(defName) + ")"
}

func (r *resolver) FormatDefName(defName string) string {
	return translate.ToPascalCase(defName)
}

func (r *resolver) EnrichField(f *translate.Field) {
	f.Name = strings.ReplaceAll(f.Name, "|", `\|`)
}

// anchor mirrors how common renderers slug a heading.
func anchor(heading string) string {
	return strings.ToLower(strings.ReplaceAll(heading, " ", "-"))
}
