// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package markdown

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

//go:embed markdown.md.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"enumValues":  enumValues,
	"memberLinks": memberLinks,
}

var tmpl = template.Must(template.New("markdown.md.tmpl").Funcs(funcMap).ParseFS(tmplFS, "markdown.md.tmpl"))

// Translator translates type models to markdown documentation.
type Translator struct{}

// FileExtension returns the file extension for markdown files.
func (t *Translator) FileExtension() string {
	return ".md"
}

// Translate converts a type model to markdown documentation.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	data, err := translate.Prepare(unit, model, target, &resolver{})
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "markdown.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// enumValues formats enum members as inline code, quoting strings.
func enumValues(values []translate.EnumValue) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if v.Quote {
			parts[i] = fmt.Sprintf("`%q`", v.Value)
		} else {
			parts[i] = "`" + v.Value + "`"
		}
	}
	return strings.Join(parts, ", ")
}

func memberLinks(members []string) string {
	links := make([]string, len(members))
	for i, m := range members {
		links[i] = "[" + m + "](#" + anchor(m) + ")"
	}
	return strings.Join(links, ", ")
}
