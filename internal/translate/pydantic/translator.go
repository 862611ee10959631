// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package pydantic

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

//go:embed pydantic.py.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"join": strings.Join,
	"enumMember": func(key string) string {
		return strings.ToUpper(key)
	},
}

var tmpl = template.Must(template.New("pydantic.py.tmpl").Funcs(funcMap).ParseFS(tmplFS, "pydantic.py.tmpl"))

// Translator translates type models to Pydantic BaseModel definitions.
type Translator struct{}

// FileExtension returns the file extension for Python files.
func (t *Translator) FileExtension() string {
	return ".py"
}

// Translate converts a type model to Pydantic BaseModel definitions.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	// checks which standard modules the field types need.
	var types strings.Builder
	for _, def := range data.Records {
		for _, f := range def.Fields {
			types.WriteString(f.Type + " ")
		}
	}
	all := types.String()

	var imports []string
	for _, mod := range []string{"datetime", "decimal", "uuid"} {
		if strings.Contains(all, mod+".") {
			imports = append(imports, "import "+mod)
		}
	}
	if len(data.Enums) > 0 {
		imports = append(imports, "from enum import Enum")
	}
	typing := []string{"Any"}
	if strings.Contains(all, "Optional[") {
		typing = append(typing, "Optional")
	}
	if len(data.Unions) > 0 {
		typing = append(typing, "Union")
	}
	imports = append(imports,
		"from typing import "+strings.Join(typing, ", "),
		"",
		"from pydantic import BaseModel, ConfigDict, Field",
	)
	data.Extra["Imports"] = imports

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "pydantic.py.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
