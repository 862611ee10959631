// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package formats assembles the built-in translators.
package formats

import (
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/translate/avro"
	"github.com/gatsbylabs/malt/internal/translate/gotypes"
	"github.com/gatsbylabs/malt/internal/translate/jsonschema"
	"github.com/gatsbylabs/malt/internal/translate/markdown"
	"github.com/gatsbylabs/malt/internal/translate/model"
	"github.com/gatsbylabs/malt/internal/translate/protobuf"
	"github.com/gatsbylabs/malt/internal/translate/pydantic"
	"github.com/gatsbylabs/malt/internal/translate/typescript"
)

// Builtin returns a register holding every built-in format.
func Builtin() translate.Register {
	translators := make(translate.Register)
	translators["typescript"] = &typescript.Translator{}
	translators["avro"] = &avro.Translator{}
	translators["gotypes"] = &gotypes.Translator{}
	translators["jsonschema"] = &jsonschema.Translator{}
	translators["markdown"] = &markdown.Translator{}
	translators["protobuf"] = &protobuf.Translator{}
	translators["pydantic"] = &pydantic.Translator{}
	translators["model"] = &model.Translator{Encoding: model.JSON}
	translators["model-yaml"] = &model.Translator{Encoding: model.YAML}
	return translators
}
