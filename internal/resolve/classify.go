// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"strings"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// ShapeKind identifies the variant of a Shape.
type ShapeKind int

const (
	ShapePrimitive ShapeKind = iota + 1
	ShapeReference
	ShapeArray
	ShapeMap
	ShapeNested
	ShapeUnion
)

func (k ShapeKind) String() string {
	switch k {
	case ShapePrimitive:
		return "primitive"
	case ShapeReference:
		return "reference"
	case ShapeArray:
		return "array"
	case ShapeMap:
		return "map"
	case ShapeNested:
		return "nested"
	case ShapeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// Shape is the classified form of one raw field description.
type Shape struct {
	Kind ShapeKind

	// Primitive is set for ShapePrimitive.
	Primitive typemodel.PrimitiveKind
	// Ref is the referenced type name for ShapeReference.
	Ref string
	// Elem is the element of ShapeArray or the value of ShapeMap.
	// Nil means Mixed.
	Elem *mschema.Node
	// Fields is the nested field tree of ShapeNested.
	Fields *mschema.Node
	// Variants are the discriminator entries of ShapeUnion.
	Variants []mschema.Entry
	// Enum holds the enum literals annotating a primitive or reference.
	Enum []typemodel.Literal
	// Modifiers is the modifier object the shape was read from, if any.
	Modifiers *mschema.Node
}

// primitiveNames maps lower-cased type names to primitive kinds: every
// kind under its own name plus the common aliases.
var primitiveNames = func() map[string]typemodel.PrimitiveKind {
	names := map[string]typemodel.PrimitiveKind{
		"int32":  typemodel.Number,
		"double": typemodel.Number,
		"bool":   typemodel.Boolean,
		"object": typemodel.Mixed,
	}
	for _, k := range typemodel.PrimitiveKinds() {
		names[strings.ToLower(string(k))] = k
	}
	return names
}()

const (
	mapMarker   = "map"
	arrayMarker = "array"
)

// Classify determines the shape of the field description node. It does not
// look at anything outside node and never allocates names.
func Classify(name string, node *mschema.Node, typeKey string) (Shape, error) {
	if node == nil {
		return Shape{}, fieldErr(ErrUnclassifiableField, name, mschema.Pos{}, "missing field description")
	}
	switch {
	case node.IsString():
		return classifyMarker(name, node)

	case node.IsSequence():
		return classifyArray(name, node)

	case node.IsMapping() && node.Has(typeKey):
		return classifyModifiers(name, node, typeKey)

	case node.IsMapping():
		if node.Has("discriminators") {
			return classifyUnion(name, node)
		}
		if len(node.Entries) == 0 {
			return Shape{Kind: ShapePrimitive, Primitive: typemodel.Mixed}, nil
		}
		return Shape{Kind: ShapeNested, Fields: node}, nil
	}

	return Shape{}, fieldErr(ErrUnclassifiableField, name, node.Pos, "unexpected %s", node.Describe())
}

func classifyMarker(name string, node *mschema.Node) (Shape, error) {
	ident := lastSegment(node.Value)
	if ident == "" {
		return Shape{}, fieldErr(ErrUnclassifiableField, name, node.Pos, "empty type name %q", node.Value)
	}
	lower := strings.ToLower(ident)
	if p, ok := primitiveNames[lower]; ok {
		return Shape{Kind: ShapePrimitive, Primitive: p}, nil
	}
	switch lower {
	case mapMarker:
		return Shape{Kind: ShapeMap}, nil
	case arrayMarker:
		return Shape{Kind: ShapeArray}, nil
	}
	return Shape{Kind: ShapeReference, Ref: ident}, nil
}

func classifyArray(name string, node *mschema.Node) (Shape, error) {
	switch len(node.Items) {
	case 0:
		return Shape{Kind: ShapeArray}, nil
	case 1:
		return Shape{Kind: ShapeArray, Elem: node.Items[0]}, nil
	}
	return Shape{}, fieldErr(ErrUnclassifiableField, name, node.Pos,
		"array marker must have exactly one element, got %d", len(node.Items))
}

func classifyModifiers(name string, node *mschema.Node, typeKey string) (Shape, error) {
	typ, _ := node.Lookup(typeKey)

	var (
		shape Shape
		err   error
	)
	switch {
	case typ.IsString() && strings.EqualFold(lastSegment(typ.Value), mapMarker):
		shape = Shape{Kind: ShapeMap}
		if of, ok := node.Lookup("of"); ok {
			shape.Elem = of
		}

	case typ.IsSequence():
		shape, err = classifyArray(name, typ)

	case node.Has("discriminators"):
		shape, err = classifyUnion(name, node)

	case typ.IsMapping() && !typ.Has(typeKey):
		if len(typ.Entries) == 0 {
			shape = Shape{Kind: ShapePrimitive, Primitive: typemodel.Mixed}
		} else {
			shape = Shape{Kind: ShapeNested, Fields: typ}
		}

	case typ.IsString():
		shape, err = classifyMarker(name, typ)
		if err == nil && (shape.Kind == ShapePrimitive || shape.Kind == ShapeReference) {
			if raw, ok := node.Lookup("enum"); ok {
				shape.Enum, err = parseEnum(name, raw)
			}
		}

	default:
		err = fieldErr(ErrUnclassifiableField, name, typ.Pos, "%s value must name a type, got %s", typeKey, typ.Describe())
	}
	if err != nil {
		return Shape{}, err
	}

	shape.Modifiers = node
	return shape, nil
}

func classifyUnion(name string, node *mschema.Node) (Shape, error) {
	d, _ := node.Lookup("discriminators")
	if !d.IsMapping() {
		return Shape{}, fieldErr(ErrUnclassifiableField, name, d.Pos,
			"discriminators must be a mapping of variant name to schema, got %s", d.Describe())
	}
	if len(d.Entries) == 0 {
		return Shape{}, fieldErr(ErrMissingUnionMember, name, d.Pos, "discriminators declare no variants")
	}
	return Shape{Kind: ShapeUnion, Variants: d.Entries, Modifiers: node}, nil
}

// parseEnum reads an enum annotation: a list of literals, or a mapping with
// a values list.
func parseEnum(name string, raw *mschema.Node) ([]typemodel.Literal, error) {
	list := raw
	if raw.IsMapping() {
		list, _ = raw.Lookup("values")
	}
	if !list.IsSequence() {
		return nil, fieldErr(ErrMalformedEnum, name, raw.Pos, "enum must be a list, got %s", raw.Describe())
	}
	if len(list.Items) == 0 {
		return nil, fieldErr(ErrMalformedEnum, name, list.Pos, "enum must not be empty")
	}

	out := make([]typemodel.Literal, 0, len(list.Items))
	for i, item := range list.Items {
		var kind typemodel.LiteralKind
		switch {
		case item.IsString():
			kind = typemodel.LiteralString
		case item.IsScalar() && item.Scalar == mschema.ScalarNumber:
			kind = typemodel.LiteralNumber
		default:
			return nil, fieldErr(ErrMalformedEnum, name, item.Pos, "entry %d is %s, not a string or number", i, item.Describe())
		}
		if len(out) > 0 && out[0].Kind != kind {
			return nil, fieldErr(ErrMalformedEnum, name, item.Pos, "entry %d is a %s but the enum holds %s values", i, kind, out[0].Kind)
		}
		out = append(out, typemodel.Literal{Kind: kind, Value: item.Value})
	}
	return out, nil
}

func lastSegment(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}
