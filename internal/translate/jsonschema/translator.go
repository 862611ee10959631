// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsonschema provides JSON Schema (draft 2020-12) translation for
// mongoose schemas.
package jsonschema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Draft is the meta-schema every generated document declares.
const Draft = "https://json-schema.org/draft/2020-12/schema"

const objectIDPattern = "^[0-9a-fA-F]{24}$"

// Translator translates type models to JSON Schema documents.
type Translator struct{}

// FileExtension returns the file extension for JSON Schema files.
func (t *Translator) FileExtension() string {
	return ".schema.json"
}

// Translate converts a type model to a JSON Schema document. Every named
// type lands in $defs; the document itself refers to the unit's roots.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	doc := &jsonschema.Schema{
		Schema: Draft,
		Title:  unit,
		Defs:   make(map[string]*jsonschema.Schema),
	}

	for _, rec := range data.Records {
		def := &jsonschema.Schema{
			Type:       "object",
			Title:      rec.RawName,
			Properties: make(map[string]*jsonschema.Schema, len(rec.Fields)),
		}
		for _, f := range rec.Fields {
			prop, err := typeSchema(f.Type)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", rec.Name, f.Name, err)
			}
			if f.Derived {
				prop.ReadOnly = true
			}
			def.Properties[f.Name] = prop
			if !f.Nullable {
				def.Required = append(def.Required, f.Name)
			}
		}
		doc.Defs[rec.Name] = def
	}

	for _, e := range data.Enums {
		def := &jsonschema.Schema{Type: "string", Title: e.RawName}
		if e.Base == typemodel.LiteralNumber {
			def.Type = "number"
		}
		for _, v := range e.Values {
			if v.Quote {
				def.Enum = append(def.Enum, v.Value)
				continue
			}
			n, err := strconv.ParseFloat(v.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("enum %s: %w", e.Name, err)
			}
			def.Enum = append(def.Enum, n)
		}
		doc.Defs[e.Name] = def
	}

	for _, u := range data.Unions {
		def := &jsonschema.Schema{Title: u.RawName}
		for _, m := range u.Members {
			def.OneOf = append(def.OneOf, refTo(m))
		}
		if u.Nullable {
			def.OneOf = append(def.OneOf, &jsonschema.Schema{Type: "null"})
		}
		doc.Defs[u.Name] = def
	}

	roots := data.Roots
	switch len(roots) {
	case 0:
	case 1:
		doc.Ref = "#/$defs/" + roots[0]
	default:
		for _, r := range roots {
			doc.AnyOf = append(doc.AnyOf, refTo(r))
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON schema: %w", err)
	}
	return append(out, '\n'), nil
}

func refTo(name string) *jsonschema.Schema {
	return &jsonschema.Schema{Ref: "#/$defs/" + name}
}

func typeSchema(marker string) (*jsonschema.Schema, error) {
	if name, ok := strings.CutPrefix(marker, "ref:"); ok {
		return refTo(name), nil
	}
	if name, ok := strings.CutPrefix(marker, "ext:"); ok {
		return &jsonschema.Schema{Description: "defined outside this document: " + name}, nil
	}
	if elem, ok := strings.CutPrefix(marker, "array:"); ok {
		items, err := typeSchema(elem)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "array", Items: items}, nil
	}
	if value, ok := strings.CutPrefix(marker, "map:"); ok {
		values, err := typeSchema(value)
		if err != nil {
			return nil, err
		}
		return &jsonschema.Schema{Type: "object", AdditionalProperties: values}, nil
	}
	if kind, ok := strings.CutPrefix(marker, "prim:"); ok {
		return primitive(typemodel.PrimitiveKind(kind)), nil
	}
	return nil, fmt.Errorf("unknown type marker %q", marker)
}

func primitive(kind typemodel.PrimitiveKind) *jsonschema.Schema {
	switch kind {
	case typemodel.String, typemodel.Decimal128:
		return &jsonschema.Schema{Type: "string"}
	case typemodel.Number:
		return &jsonschema.Schema{Type: "number"}
	case typemodel.BigInt:
		return &jsonschema.Schema{Type: "integer"}
	case typemodel.Boolean:
		return &jsonschema.Schema{Type: "boolean"}
	case typemodel.Date:
		return &jsonschema.Schema{Type: "string", Format: "date-time"}
	case typemodel.UUID:
		return &jsonschema.Schema{Type: "string", Format: "uuid"}
	case typemodel.ObjectID:
		return &jsonschema.Schema{Type: "string", Pattern: objectIDPattern}
	case typemodel.Buffer:
		return &jsonschema.Schema{Type: "string", ContentEncoding: "base64"}
	default:
		return &jsonschema.Schema{}
	}
}
