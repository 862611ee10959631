// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package protobuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/translate"
)

func translateFields(t *testing.T, fields *ms.Node, target translate.Target) (string, error) {
	t.Helper()
	m, err := resolve.CompileUnit("users.yaml", ms.Doc(ms.Schema("users", fields, nil)), resolve.DefaultOptions())
	require.NoError(t, err)

	output, err := (&Translator{}).Translate("users.yaml", m, target)
	return string(output), err
}

func TestTranslate_SimpleObject(t *testing.T) {
	result, err := translateFields(t, ms.Map(
		ms.E("name", ms.Map(ms.E("type", ms.Ident("String")), ms.E("required", ms.Bool(true)))),
		ms.E("age", ms.Ident("Number")),
	), translate.Target{Package: "schemas"})
	require.NoError(t, err)

	assert.Contains(t, result, `syntax = "proto3";`)
	assert.Contains(t, result, "package schemas;")
	assert.Contains(t, result, "message Users {")
	assert.Contains(t, result, `  optional string id = 1 [json_name = "_id"];`)
	assert.Contains(t, result, "  string name = 2;")
	assert.Contains(t, result, "  optional double age = 3;")
	assert.NotContains(t, result, "import")
}

func TestTranslate_AllPrimitiveTypes(t *testing.T) {
	req := ms.E("required", ms.Bool(true))
	typed := func(name string) *ms.Node { return ms.Map(ms.E("type", ms.Ident(name)), req) }
	result, err := translateFields(t, ms.Map(
		ms.E("_id", ms.Bool(false)),
		ms.E("str", typed("String")),
		ms.E("num", typed("Number")),
		ms.E("big", typed("BigInt")),
		ms.E("flag", typed("Boolean")),
		ms.E("blob", typed("Buffer")),
		ms.E("ref", typed("ObjectId")),
		ms.E("at", typed("Date")),
		ms.E("any", typed("Mixed")),
	), translate.Target{})
	require.NoError(t, err)

	assert.Contains(t, result, "package models;")
	assert.Contains(t, result, "  string str = 1;")
	assert.Contains(t, result, "  double num = 2;")
	assert.Contains(t, result, "  int64 big = 3;")
	assert.Contains(t, result, "  bool flag = 4;")
	assert.Contains(t, result, "  bytes blob = 5;")
	assert.Contains(t, result, "  string ref = 6;")
	assert.Contains(t, result, "  google.protobuf.Timestamp at = 7;")
	assert.Contains(t, result, "  google.protobuf.Value any = 8;")
	assert.Contains(t, result, "import \"google/protobuf/struct.proto\";\nimport \"google/protobuf/timestamp.proto\";")
}

func TestTranslate_Containers(t *testing.T) {
	result, err := translateFields(t, ms.Map(
		ms.E("_id", ms.Bool(false)),
		ms.E("tags", ms.Seq(ms.Ident("String"))),
		ms.E("scores", ms.Map(ms.E("type", ms.Ident("Map")), ms.E("of", ms.Ident("Number")))),
		ms.E("address", ms.Map(ms.E("street", ms.Ident("String")))),
		ms.E("team", ms.Ident("Team")),
	), translate.Target{InterfaceStyle: translate.StylePascalCase})
	require.NoError(t, err)

	assert.Contains(t, result, "  repeated string tags = 1;")
	assert.Contains(t, result, "  map<string, double> scores = 2;")
	assert.Contains(t, result, "  optional Address address = 3;")
	assert.Contains(t, result, "  optional google.protobuf.Any team = 4;")
	assert.Contains(t, result, "message Address {")
	assert.Contains(t, result, `import "google/protobuf/any.proto";`)
}

func TestTranslate_EnumsAndUnions(t *testing.T) {
	result, err := translateFields(t, ms.Map(
		ms.E("status", ms.Map(
			ms.E("type", ms.Ident("String")),
			ms.E("enum", ms.Seq(ms.Str("active"), ms.Str("on-hold"), ms.Str("unspecified"))),
		)),
		ms.E("level", ms.Map(ms.E("type", ms.Ident("Number")), ms.E("enum", ms.Seq(ms.Num(1), ms.Num(2))))),
		ms.E("pet", ms.Map(ms.E("discriminators", ms.Map(
			ms.E("Cat", ms.Map(ms.E("lives", ms.Ident("Number")))),
			ms.E("HouseDog", ms.Map(ms.E("bark", ms.Ident("Boolean")))),
		)))),
	), translate.Target{EnumStyle: translate.StylePascalCase, InterfaceStyle: translate.StylePascalCase})
	require.NoError(t, err)

	assert.Contains(t, result, "enum Status {\n  STATUS_UNSPECIFIED_ = 0;\n  STATUS_ACTIVE = 1;\n  STATUS_ON_HOLD = 2;\n  STATUS_UNSPECIFIED = 3;\n}")
	assert.Contains(t, result, "enum Level {\n  LEVEL_UNSPECIFIED = 0;\n  LEVEL_1 = 1; // 1\n  LEVEL_2 = 2; // 2\n}")
	assert.Contains(t, result, "message Pet {\n  oneof value {\n    Cat cat = 1;\n    HouseDog house_dog = 2;\n  }\n}")
	assert.Contains(t, result, "  optional Status status = 2;")
}

func TestTranslate_NestedContainers(t *testing.T) {
	_, err := translateFields(t, ms.Map(
		ms.E("grid", ms.Seq(ms.Seq(ms.Ident("Number")))),
	), translate.Target{})
	assert.ErrorContains(t, err, "not representable in proto3")

	_, err = translateFields(t, ms.Map(
		ms.E("lines", ms.Map(ms.E("type", ms.Ident("Map")), ms.E("of", ms.Seq(ms.Ident("String"))))),
	), translate.Target{})
	assert.ErrorContains(t, err, "not representable in proto3")
}

func TestFieldName(t *testing.T) {
	tests := map[string]string{
		"_id":        "id",
		"firstName":  "first_name",
		"first name": "first_name",
		"2fa":        "f_2fa",
	}
	for in, want := range tests {
		assert.Equal(t, want, fieldName(in), in)
	}
}
