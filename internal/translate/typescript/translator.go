// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript provides TypeScript interface translation for
// mongoose schemas.
package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

//go:embed typescript.ts.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join":  strings.Join,
	"quote": quote,
}

var tmpl = template.Must(template.New("typescript.ts.tmpl").Funcs(funcMap).ParseFS(tmplFS, "typescript.ts.tmpl"))

// Translator translates type models to TypeScript interfaces.
type Translator struct{}

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string {
	return ".ts"
}

// Translate converts a type model to TypeScript declarations.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	// references to schemas outside the unit are declared loosely so the
	// file still type-checks on its own.
	var external []string
	for _, name := range model.External() {
		external = append(external, translate.ToIdentifier(name))
	}
	data.Extra["External"] = external

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.ts.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
