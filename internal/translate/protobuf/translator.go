// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package protobuf provides Protocol Buffers (proto3) schema translation utilities.
package protobuf

import (
	"bytes"
	"embed"
	"fmt"
	"slices"
	"strings"
	"text/template"

	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

//go:embed protobuf.proto.tmpl
var tmplFS embed.FS

var funcMap = template.FuncMap{
	"inc":        func(i int) int { return i + 1 },
	"oneofField": fieldName,
}

var tmpl = template.Must(template.New("protobuf.proto.tmpl").Funcs(funcMap).ParseFS(tmplFS, "protobuf.proto.tmpl"))

// DefaultPackage is used when the target names no package.
const DefaultPackage = "models"

type protoEnum struct {
	Name   string
	Values []protoEnumValue
}

type protoEnumValue struct {
	Name    string
	Number  int
	Comment string
}

// Translator translates type models to Protocol Buffers (proto3) message definitions.
type Translator struct{}

// FileExtension returns the file extension for Protocol Buffers files.
func (t *Translator) FileExtension() string {
	return ".proto"
}

// Translate converts a type model to proto3 message definitions.
func (t *Translator) Translate(unit string, model *typemodel.Model, target translate.Target) ([]byte, error) {
	r := &resolver{}
	data, err := translate.Prepare(unit, model, target, r)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare schema data: %w", err)
	}
	if r.err != nil {
		return nil, fmt.Errorf("type not representable in proto3: %w", r.err)
	}

	pkg := target.Package
	if pkg == "" {
		pkg = DefaultPackage
	}
	data.Extra["Package"] = pkg

	// collects imports for the well-known types in use.
	var imports []string
	for _, def := range data.Records {
		for _, f := range def.Fields {
			for typ, file := range wellKnown {
				if strings.Contains(f.Type, typ) && !slices.Contains(imports, file) {
					imports = append(imports, file)
				}
			}
		}
	}
	slices.Sort(imports)
	data.Extra["Imports"] = imports

	enums := make([]protoEnum, 0, len(data.Enums))
	for _, e := range data.Enums {
		enums = append(enums, enumValues(e))
	}
	data.Extra["Enums"] = enums

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "protobuf.proto.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// enumValues numbers enum members from 1; proto3 reserves 0 for the
// unset value. Value names carry the enum name since proto enum values
// share the package scope.
func enumValues(e translate.EnumDef) protoEnum {
	prefix := strings.ToUpper(translate.ToSnakeCase(e.Name))
	out := protoEnum{Name: e.Name}

	names := make(map[string]bool, len(e.Values))
	for i, v := range e.Values {
		name := prefix + "_" + strings.ToUpper(strings.Trim(translate.ToSnakeCase(v.Key), "_"))
		names[name] = true
		comment := ""
		if !v.Quote {
			comment = v.Value
		}
		out.Values = append(out.Values, protoEnumValue{Name: name, Number: i + 1, Comment: comment})
	}

	zero := prefix + "_UNSPECIFIED"
	for names[zero] {
		zero += "_"
	}
	out.Values = slices.Insert(out.Values, 0, protoEnumValue{Name: zero})
	return out
}
