// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Translator translates type models to Apache Avro schema definitions.
type Translator struct{}

// FileExtension returns the file extension for Avro schema files.
func (t *Translator) FileExtension() string {
	return ".avsc"
}

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroField represents a field within an Avro record.
type avroField struct {
	Name    string          `json:"name"`
	Type    any             `json:"type"`
	Default json.RawMessage `json:"default,omitempty"`
}

// avroArray represents an Avro array type.
type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// avroMap represents an Avro map type.
type avroMap struct {
	Type   string `json:"type"`
	Values any    `json:"values"`
}

// avroEnum represents an Avro enum type.
type avroEnum struct {
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Namespace string   `json:"namespace,omitempty"`
	Symbols   []string `json:"symbols"`
}

// avroLogicalType represents an Avro logical type.
type avroLogicalType struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

// mixedValues is the value union used for untyped (Mixed) data.
var mixedValues = []string{"null", "double", "string", "boolean"}

var nullDefault = json.RawMessage("null")

// builder inlines each named type at its first use and refers to it by
// name afterwards.
type builder struct {
	records map[string]*translate.TypeDef
	enums   map[string]*translate.EnumDef
	unions  map[string]*translate.UnionDef
	inlined map[string]bool
}

// Translate converts a type model to an Avro schema JSON document. A unit
// with one root yields a record; several roots yield a union of records.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	b := &builder{
		records: make(map[string]*translate.TypeDef, len(data.Records)),
		enums:   make(map[string]*translate.EnumDef, len(data.Enums)),
		unions:  make(map[string]*translate.UnionDef, len(data.Unions)),
		inlined: make(map[string]bool),
	}
	for i := range data.Records {
		b.records[data.Records[i].Name] = &data.Records[i]
	}
	for i := range data.Enums {
		b.enums[data.Enums[i].Name] = &data.Enums[i]
	}
	for i := range data.Unions {
		b.unions[data.Unions[i].Name] = &data.Unions[i]
	}

	roots := make([]any, 0, len(data.Roots))
	for _, name := range data.Roots {
		rec, err := b.record(name)
		if err != nil {
			return nil, err
		}
		roots = append(roots, rec)
	}

	var doc any = roots
	if len(roots) == 1 {
		doc = roots[0]
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Avro schema: %w", err)
	}

	return append(out, '\n'), nil
}

func (b *builder) record(name string) (any, error) {
	def := b.records[name]
	if b.inlined[name] {
		return fullName(def.Name, def.Namespace), nil
	}
	b.inlined[name] = true

	fields := make([]avroField, 0, len(def.Fields))
	for _, f := range def.Fields {
		avroType, err := b.fieldType(f)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", def.RawName, f.Name, err)
		}
		field := avroField{Name: f.Name, Type: avroType}
		if first, ok := avroType.([]any); ok && len(first) > 0 && first[0] == "null" {
			field.Default = nullDefault
		}
		fields = append(fields, field)
	}
	return avroRecord{
		Type:      "record",
		Name:      def.Name,
		Namespace: namespace(def.Namespace),
		Fields:    fields,
	}, nil
}

// fieldType builds a field's type, making it nullable when the field is
// optional. Union fields carry their own null branch.
func (b *builder) fieldType(f translate.Field) (any, error) {
	if name, ok := strings.CutPrefix(f.Type, "ref:"); ok {
		if u, isUnion := b.unions[name]; isUnion {
			return b.union(u, f.Nullable)
		}
	}
	avroType, err := b.buildAvroType(f.Type)
	if err != nil {
		return nil, err
	}
	if f.Nullable {
		return []any{"null", avroType}, nil
	}
	return avroType, nil
}

func (b *builder) union(u *translate.UnionDef, nullable bool) (any, error) {
	branches := make([]any, 0, len(u.Members)+1)
	if nullable || u.Nullable {
		branches = append(branches, "null")
	}
	for _, m := range u.Members {
		rec, err := b.record(m)
		if err != nil {
			return nil, err
		}
		branches = append(branches, rec)
	}
	return branches, nil
}

// buildAvroType converts a resolver type string to an Avro type value.
func (b *builder) buildAvroType(typeStr string) (any, error) {
	if name, ok := strings.CutPrefix(typeStr, "ref:"); ok {
		switch {
		case b.records[name] != nil:
			return b.record(name)
		case b.enums[name] != nil:
			return b.enum(name), nil
		case b.unions[name] != nil:
			return b.union(b.unions[name], false)
		}
		return name, nil
	}
	if name, ok := strings.CutPrefix(typeStr, "ext:"); ok {
		return nil, fmt.Errorf("type %s is not defined in this unit", name)
	}

	if elemStr, ok := strings.CutPrefix(typeStr, "array:"); ok {
		items, err := b.buildAvroType(elemStr)
		if err != nil {
			return nil, err
		}
		return avroArray{Type: "array", Items: items}, nil
	}
	if valueStr, ok := strings.CutPrefix(typeStr, "map:"); ok {
		values, err := b.buildAvroType(valueStr)
		if err != nil {
			return nil, err
		}
		return avroMap{Type: "map", Values: values}, nil
	}

	switch typeStr {
	case "timestamp-millis":
		return avroLogicalType{Type: "long", LogicalType: "timestamp-millis"}, nil
	case "uuid":
		return avroLogicalType{Type: "string", LogicalType: "uuid"}, nil
	case "mixed":
		return avroMap{Type: "map", Values: mixedValues}, nil
	}

	// Primitive types pass through as strings
	return typeStr, nil
}

// enum renders an enum. Avro symbols must be names, so numeric enums
// fall back to their base type.
func (b *builder) enum(name string) any {
	def := b.enums[name]
	if def.Base == typemodel.LiteralNumber {
		return "double"
	}
	if b.inlined[name] {
		return fullName(def.Name, def.Namespace)
	}
	b.inlined[name] = true

	symbols := make([]string, 0, len(def.Values))
	for _, v := range def.Values {
		symbols = append(symbols, v.Key)
	}
	return avroEnum{
		Type:      "enum",
		Name:      def.Name,
		Namespace: namespace(def.Namespace),
		Symbols:   symbols,
	}
}

// fullName is the name a later definition uses to refer back to a named
// type. A bare name would resolve against the referrer's namespace.
func fullName(name, ns string) string {
	if ns := namespace(ns); ns != "" {
		return ns + "." + name
	}
	return name
}

// namespace sanitizes each segment of a dotted namespace.
func namespace(ns string) string {
	if ns == "" {
		return ""
	}
	parts := strings.Split(ns, ".")
	for i, p := range parts {
		parts[i] = translate.ToIdentifier(p)
	}
	return strings.Join(parts, ".")
}
