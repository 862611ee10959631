// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package model dumps the resolved type model itself, for inspection and
// for tools that consume it directly.
package model

import (
	"fmt"

	"github.com/goccy/go-json"
	"sigs.k8s.io/yaml"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Encoding selects the serialization of the dump.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// Dump is the serialized shape of a model. Names are the model's own;
// text styles do not apply.
type Dump struct {
	Unit  string      `json:"unit"`
	Roots []string    `json:"roots"`
	Types []DumpEntry `json:"types"`
}

// DumpEntry is one named type tagged with its kind.
type DumpEntry struct {
	Kind typemodel.TypeKind  `json:"kind"`
	Type typemodel.NamedType `json:"type"`
}

// NewDump snapshots a model.
func NewDump(unit string, m *typemodel.Model) Dump {
	d := Dump{Unit: unit, Roots: m.Roots(), Types: make([]DumpEntry, 0, m.Len())}
	for t := range m.All() {
		d.Types = append(d.Types, DumpEntry{Kind: t.Kind(), Type: t})
	}
	return d
}

// Translator writes the model as JSON or YAML.
type Translator struct {
	Encoding Encoding
}

// FileExtension returns the file extension for the chosen encoding.
func (t *Translator) FileExtension() string {
	if t.Encoding == YAML {
		return ".model.yaml"
	}
	return ".model.json"
}

// Translate serializes the model. The target is ignored.
func (t *Translator) Translate(unit string, m *typemodel.Model, _ translate.Target) ([]byte, error) {
	dump := NewDump(unit, m)

	switch t.Encoding {
	case YAML:
		out, err := yaml.Marshal(dump)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal model as YAML: %w", err)
		}
		return out, nil
	case JSON, "":
		out, err := json.MarshalIndent(dump, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal model as JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported model encoding: %s", t.Encoding)
	}
}
