// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		node  *ms.Node
		check func(t *testing.T, s Shape)
	}{
		{
			name: "bare primitive",
			node: ms.Ident("String"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapePrimitive, s.Kind)
				assert.Equal(t, typemodel.String, s.Primitive)
				assert.Nil(t, s.Modifiers)
			},
		},
		{
			name: "dotted primitive",
			node: ms.Ident("Schema.Types.ObjectId"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapePrimitive, s.Kind)
				assert.Equal(t, typemodel.ObjectID, s.Primitive)
			},
		},
		{
			name: "object is mixed",
			node: ms.Ident("Object"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, typemodel.Mixed, s.Primitive)
			},
		},
		{
			name: "reference",
			node: ms.Ident("Address"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeReference, s.Kind)
				assert.Equal(t, "Address", s.Ref)
			},
		},
		{
			name: "bare map",
			node: ms.Ident("Map"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeMap, s.Kind)
				assert.Nil(t, s.Elem)
			},
		},
		{
			name: "bare array",
			node: ms.Ident("Array"),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeArray, s.Kind)
				assert.Nil(t, s.Elem)
			},
		},
		{
			name: "array marker",
			node: ms.Seq(ms.Ident("Number")),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeArray, s.Kind)
				assert.Equal(t, "Number", s.Elem.Value)
			},
		},
		{
			name: "empty array marker",
			node: ms.Seq(),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeArray, s.Kind)
				assert.Nil(t, s.Elem)
			},
		},
		{
			name: "map marker with of",
			node: ms.Map(ms.E("type", ms.Ident("Map")), ms.E("of", ms.Ident("Number"))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeMap, s.Kind)
				assert.Equal(t, "Number", s.Elem.Value)
				assert.NotNil(t, s.Modifiers)
			},
		},
		{
			name: "type is a list",
			node: ms.Map(ms.E("type", ms.Seq(ms.Ident("String"))), ms.E("required", ms.Bool(true))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeArray, s.Kind)
				assert.Equal(t, "String", s.Elem.Value)
			},
		},
		{
			name: "type is a nested mapping",
			node: ms.Map(ms.E("type", ms.Map(ms.E("street", ms.Ident("String"))))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeNested, s.Kind)
				assert.Equal(t, "street", s.Fields.Entries[0].Key)
			},
		},
		{
			name: "type is an empty mapping",
			node: ms.Map(ms.E("type", ms.Map())),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapePrimitive, s.Kind)
				assert.Equal(t, typemodel.Mixed, s.Primitive)
			},
		},
		{
			name: "modifier with discriminators",
			node: ms.Map(
				ms.E("type", ms.Map()),
				ms.E("discriminators", ms.Map(ms.E("Dog", ms.Map(ms.E("bark", ms.Ident("Boolean")))))),
			),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeUnion, s.Kind)
				assert.Len(t, s.Variants, 1)
			},
		},
		{
			name: "primitive with enum",
			node: ms.Map(ms.E("type", ms.Ident("Number")), ms.E("enum", ms.Seq(ms.Num(1), ms.Num(2)))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapePrimitive, s.Kind)
				assert.Equal(t, []typemodel.Literal{
					{Kind: typemodel.LiteralNumber, Value: "1"},
					{Kind: typemodel.LiteralNumber, Value: "2"},
				}, s.Enum)
			},
		},
		{
			name: "enum values object",
			node: ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Map(ms.E("values", ms.Seq(ms.Str("a")))))),
			check: func(t *testing.T, s Shape) {
				require.Len(t, s.Enum, 1)
				assert.Equal(t, "a", s.Enum[0].Value)
			},
		},
		{
			name: "nested object",
			node: ms.Map(ms.E("street", ms.Ident("String"))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeNested, s.Kind)
				assert.Nil(t, s.Modifiers)
			},
		},
		{
			name: "empty object is mixed",
			node: ms.Map(),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapePrimitive, s.Kind)
				assert.Equal(t, typemodel.Mixed, s.Primitive)
			},
		},
		{
			name: "union without type key",
			node: ms.Map(ms.E("discriminators", ms.Map(ms.E("Cat", ms.Map(ms.E("meow", ms.Ident("Boolean"))))))),
			check: func(t *testing.T, s Shape) {
				assert.Equal(t, ShapeUnion, s.Kind)
				assert.Equal(t, "Cat", s.Variants[0].Key)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Classify("field", tt.node, "type")
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestClassify_CustomTypeKey(t *testing.T) {
	node := ms.Map(ms.E("$type", ms.Ident("String")), ms.E("type", ms.Ident("Number")))
	s, err := Classify("kind", node, "$type")
	require.NoError(t, err)
	assert.Equal(t, typemodel.String, s.Primitive)

	// Without the custom key the same mapping is a nested object.
	s, err = Classify("kind", ms.Map(ms.E("type", ms.Ident("Number"))), "$type")
	require.NoError(t, err)
	assert.Equal(t, ShapeNested, s.Kind)
}

func TestClassify_Errors(t *testing.T) {
	tests := []struct {
		name string
		node *ms.Node
		want error
	}{
		{"nil", nil, ErrUnclassifiableField},
		{"number", ms.Num(3), ErrUnclassifiableField},
		{"bool", ms.Bool(true), ErrUnclassifiableField},
		{"two element array", ms.Seq(ms.Ident("String"), ms.Ident("Number")), ErrUnclassifiableField},
		{"type value is a modifier object", ms.Map(ms.E("type", ms.Map(ms.E("type", ms.Ident("String"))))), ErrUnclassifiableField},
		{"type value is a number", ms.Map(ms.E("type", ms.Num(1))), ErrUnclassifiableField},
		{"discriminators not mapping", ms.Map(ms.E("discriminators", ms.Seq())), ErrUnclassifiableField},
		{"no variants", ms.Map(ms.E("discriminators", ms.Map())), ErrMissingUnionMember},
		{"empty enum", ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Seq())), ErrMalformedEnum},
		{"enum not a list", ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Str("a"))), ErrMalformedEnum},
		{"mixed enum", ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Seq(ms.Str("a"), ms.Num(1)))), ErrMalformedEnum},
		{"non-literal enum", ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Seq(ms.Seq()))), ErrMalformedEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify("field", tt.node, "type")
			require.ErrorIs(t, err, tt.want)

			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "field", fe.Path)
		})
	}
}
