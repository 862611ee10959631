// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate renders resolved type models into target formats.
package translate

import (
	"fmt"
	"slices"

	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Translator defines the interface all format translators must implement.
type Translator interface {
	// Translate renders the model. unit names the compilation unit the
	// model came from, usually the input file path.
	Translate(unit string, model *typemodel.Model, target Target) ([]byte, error)

	// FileExtension returns the appropriate file extension (e.g., ".ts", ".avsc")
	FileExtension() string
}

// Target carries the output settings shared by all translators.
type Target struct {
	// Package is the package name for formats that need one (gotypes).
	Package string
	// InterfaceStyle is applied to record and union names.
	InterfaceStyle TextStyle
	// EnumStyle is applied to enum names.
	EnumStyle TextStyle
}

// DefaultFormat is used when neither flags nor configuration pick a format.
const DefaultFormat = "typescript"

// Register maps format names to translators.
type Register map[string]Translator

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default returns the translator for DefaultFormat.
func (r Register) Default() (Translator, error) {
	return r.Get(DefaultFormat)
}
