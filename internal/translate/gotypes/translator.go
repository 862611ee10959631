// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package gotypes provides Go struct type schema translation utilities.
package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join": strings.Join,
	"constName": func(enumName, key string) string {
		return enumName + joinWords(key)
	},
}

var tmpl = template.Must(template.New("gotypes.go.tmpl").Funcs(funcMap).ParseFS(tmplFS, "gotypes.go.tmpl"))

// DefaultPackage is used when the target names no package.
const DefaultPackage = "models"

// Translator translates type models to Go struct type definitions.
type Translator struct{}

// FileExtension returns the file extension for Go source files.
func (t *Translator) FileExtension() string {
	return ".go"
}

// Translate converts a type model to Go type definitions.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, newResolver())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	pkg := target.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	data.Extra["Package"] = pkg

	// checks if any field type contains time.Time.
	data.Extra["NeedsTimeImport"] = false
	for _, def := range data.Records {
		for i := range def.Fields {
			if strings.Contains(def.Fields[i].Type, "time.Time") {
				data.Extra["NeedsTimeImport"] = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}
