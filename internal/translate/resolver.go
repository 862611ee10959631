// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "github.com/gatsbylabs/malt/internal/typemodel"

// TypeResolver converts model types to target-language type strings and naming conventions.
// Each translator implements this interface to control how the model maps to its output format.
type TypeResolver interface {
	// PrimitiveType maps a primitive kind to a target type string.
	PrimitiveType(kind typemodel.PrimitiveKind) string

	// ArrayType wraps an element type string in an array type.
	ArrayType(elemType string) string

	// MapType wraps a value type string in a string-keyed map type.
	MapType(valueType string) string

	// RefType returns the type string for a reference to a named type.
	// defName is already formatted; kind is empty for types the model does
	// not define.
	RefType(defName string, kind typemodel.TypeKind) string

	// FormatDefName applies target-language rules to a styled type name.
	FormatDefName(defName string) string

	// EnrichField applies language-specific post-processing to a resolved field.
	// It may rename the field, wrap its type for nullability, or set a tag.
	// Called once per field after type resolution, before template execution.
	EnrichField(f *Field)
}
