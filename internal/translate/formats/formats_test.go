// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/translate"
)

func TestBuiltin(t *testing.T) {
	translators := Builtin()
	assert.Equal(t, []string{"avro", "gotypes", "jsonschema", "markdown", "model", "model-yaml", "protobuf", "pydantic", "typescript"}, translators.Available())

	def, err := translators.Default()
	require.NoError(t, err)
	assert.Equal(t, ".ts", def.FileExtension())

	_, err = translators.Get("cobol")
	assert.Error(t, err)
}

// Every format renders the same model without error and to distinct files.
func TestBuiltin_AllFormatsTranslate(t *testing.T) {
	doc := ms.Doc(
		ms.Schema("Account", ms.Map(ms.E("email", ms.Ident("String"))), nil),
		ms.Schema("User", ms.Map(
			ms.E("name", ms.Map(ms.E("type", ms.Ident("String")), ms.E("required", ms.Bool(true)))),
			ms.E("account", ms.Ident("Account")),
			ms.E("balance", ms.Ident("Decimal128")),
			ms.E("avatar", ms.Ident("Buffer")),
			ms.E("visits", ms.Ident("BigInt")),
			ms.E("key", ms.Map(ms.E("type", ms.Ident("String")), ms.E("default", ms.Str("uuidv4")))),
			ms.E("meta", ms.Map()),
			ms.E("history", ms.Seq(ms.Map(ms.E("at", ms.Ident("Date"))))),
			ms.E("role", ms.Map(ms.E("type", ms.Ident("String")), ms.E("enum", ms.Seq(ms.Str("admin"), ms.Str("user"))))),
			ms.E("pet", ms.Map(ms.E("discriminators", ms.Map(
				ms.E("Cat", ms.Map(ms.E("lives", ms.Ident("Number")))),
				ms.E("Dog", ms.Map(ms.E("bark", ms.Ident("Boolean")))),
			)))),
		), ms.Map(ms.E("timestamps", ms.Bool(true)))),
	)
	m, err := resolve.CompileUnit("user.yaml", doc, resolve.DefaultOptions())
	require.NoError(t, err)

	target := translate.Target{InterfaceStyle: translate.StylePascalCase, EnumStyle: translate.StylePascalCase}
	extensions := map[string]string{}
	for name, tr := range Builtin() {
		t.Run(name, func(t *testing.T) {
			out, err := tr.Translate("user.yaml", m, target)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
		})
		prev, dup := extensions[tr.FileExtension()]
		assert.False(t, dup, "%s and %s share %s", prev, name, tr.FileExtension())
		extensions[tr.FileExtension()] = name
	}
}
