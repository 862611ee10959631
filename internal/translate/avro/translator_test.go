// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package avro

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

func compile(t *testing.T, doc *mschema.Document) *typemodel.Model {
	t.Helper()
	m, err := resolve.CompileUnit("test.yaml", doc, resolve.DefaultOptions())
	require.NoError(t, err)
	return m
}

func translateToMap(t *testing.T, m *typemodel.Model) map[string]any {
	t.Helper()
	out, err := (&Translator{}).Translate("test.yaml", m, translate.Target{InterfaceStyle: translate.StylePascalCase})
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(out, &result))
	return result
}

func fieldTypes(result map[string]any) map[string]any {
	types := make(map[string]any)
	for _, f := range result["fields"].([]any) {
		fm := f.(map[string]any)
		types[fm["name"].(string)] = fm["type"]
	}
	return types
}

func TestTranslate_Primitives(t *testing.T) {
	req := mschema.E("required", mschema.Bool(true))
	prim := func(name string) *mschema.Node {
		return mschema.Map(mschema.E("type", mschema.Ident(name)), req)
	}
	m := compile(t, mschema.Doc(mschema.Schema("user", mschema.Map(
		mschema.E("name", prim("String")),
		mschema.E("age", prim("Number")),
		mschema.E("admin", prim("Boolean")),
		mschema.E("born", prim("Date")),
		mschema.E("avatar", prim("Buffer")),
		mschema.E("ref", prim("ObjectId")),
		mschema.E("key", prim("UUID")),
		mschema.E("big", prim("BigInt")),
		mschema.E("nick", mschema.Ident("String")),
	), nil)))

	result := translateToMap(t, m)
	assert.Equal(t, "record", result["type"])
	assert.Equal(t, "User", result["name"])
	assert.Equal(t, "mongoose", result["namespace"])

	types := fieldTypes(result)
	assert.Equal(t, "string", types["name"])
	assert.Equal(t, "double", types["age"])
	assert.Equal(t, "boolean", types["admin"])
	assert.Equal(t, map[string]any{"type": "long", "logicalType": "timestamp-millis"}, types["born"])
	assert.Equal(t, "bytes", types["avatar"])
	assert.Equal(t, "string", types["ref"])
	assert.Equal(t, map[string]any{"type": "string", "logicalType": "uuid"}, types["key"])
	assert.Equal(t, "long", types["big"])
	assert.Equal(t, []any{"null", "string"}, types["nick"])
	assert.Equal(t, []any{"null", "string"}, types["_id"])
}

func TestTranslate_OptionalHasNullDefault(t *testing.T) {
	m := compile(t, mschema.Doc(mschema.Schema("user", mschema.Map(mschema.E("nick", mschema.Ident("String"))), nil)))
	result := translateToMap(t, m)

	for _, f := range result["fields"].([]any) {
		fm := f.(map[string]any)
		assert.Contains(t, fm, "default")
		assert.Nil(t, fm["default"])
	}
}

func TestTranslate_NestedRecordInlinedOnce(t *testing.T) {
	addr := mschema.Map(mschema.E("street", mschema.Ident("String")))
	m := compile(t, mschema.Doc(
		mschema.Schema("Place", addr, mschema.Map(mschema.E("_id", mschema.Bool(false)))),
		mschema.Schema("Order", mschema.Map(
			mschema.E("from", mschema.Map(mschema.E("type", mschema.Ident("Place")), mschema.E("required", mschema.Bool(true)))),
			mschema.E("to", mschema.Map(mschema.E("type", mschema.Ident("Place")), mschema.E("required", mschema.Bool(true)))),
		), mschema.Map(mschema.E("_id", mschema.Bool(false)))),
	))

	out, err := (&Translator{}).Translate("test.yaml", m, translate.Target{})
	require.NoError(t, err)

	var roots []any
	require.NoError(t, json.Unmarshal(out, &roots))
	require.Len(t, roots, 2)

	order := fieldTypes(roots[1].(map[string]any))
	assert.Equal(t, "mongoose.Place", order["from"])
	assert.Equal(t, "mongoose.Place", order["to"])
}

func TestTranslate_NestedRecordRefersToEarlierRoot(t *testing.T) {
	noID := mschema.Map(mschema.E("_id", mschema.Bool(false)))
	m := compile(t, mschema.Doc(
		mschema.Schema("User", mschema.Map(mschema.E("name", mschema.Ident("String"))), noID),
		mschema.Schema("Post", mschema.Map(
			mschema.E("author", mschema.Map(mschema.E("type", mschema.Ident("User")), mschema.E("required", mschema.Bool(true)))),
			mschema.E("meta", mschema.Map(mschema.E("by", mschema.Map(mschema.E("type", mschema.Ident("User")), mschema.E("required", mschema.Bool(true)))))),
		), noID),
	))

	out, err := (&Translator{}).Translate("test.yaml", m, translate.Target{})
	require.NoError(t, err)

	var roots []any
	require.NoError(t, json.Unmarshal(out, &roots))
	require.Len(t, roots, 2)

	post := fieldTypes(roots[1].(map[string]any))
	assert.Equal(t, "mongoose.User", post["author"])

	meta := post["meta"].([]any)
	require.Len(t, meta, 2)
	metaRec := meta[1].(map[string]any)
	assert.Equal(t, "mongoose.Post", metaRec["namespace"])
	assert.Equal(t, "mongoose.User", fieldTypes(metaRec)["by"])
}

func TestTranslate_ArraysMapsEnumsUnions(t *testing.T) {
	m := compile(t, mschema.Doc(mschema.Schema("user", mschema.Map(
		mschema.E("tags", mschema.Map(mschema.E("type", mschema.Seq(mschema.Ident("String"))), mschema.E("required", mschema.Bool(true)))),
		mschema.E("meta", mschema.Map(mschema.E("type", mschema.Ident("Map")), mschema.E("default", mschema.Map()))),
		mschema.E("role", mschema.Map(
			mschema.E("type", mschema.Ident("String")),
			mschema.E("enum", mschema.Seq(mschema.Str("admin"), mschema.Str("guest"))),
			mschema.E("required", mschema.Bool(true)),
		)),
		mschema.E("level", mschema.Map(
			mschema.E("type", mschema.Ident("Number")),
			mschema.E("enum", mschema.Seq(mschema.Num(1), mschema.Num(2))),
			mschema.E("required", mschema.Bool(true)),
		)),
		mschema.E("pet", mschema.Map(mschema.E("discriminators", mschema.Map(
			mschema.E("Dog", mschema.Map(mschema.E("_id", mschema.Bool(false)), mschema.E("bark", mschema.Ident("Boolean")))),
		)))),
	), mschema.Map(mschema.E("_id", mschema.Bool(false))))))

	types := fieldTypes(translateToMap(t, m))

	assert.Equal(t, map[string]any{"type": "array", "items": "string"}, types["tags"])
	assert.Equal(t, map[string]any{
		"type":   "map",
		"values": map[string]any{"type": "map", "values": []any{"null", "double", "string", "boolean"}},
	}, types["meta"])
	assert.Equal(t, map[string]any{
		"type":      "enum",
		"name":      "role",
		"namespace": "mongoose.user",
		"symbols":   []any{"admin", "guest"},
	}, types["role"])
	assert.Equal(t, "double", types["level"])

	pet := types["pet"].([]any)
	require.Len(t, pet, 2)
	assert.Equal(t, "null", pet[0])
	dog := pet[1].(map[string]any)
	assert.Equal(t, "Dog", dog["name"])
	assert.Equal(t, "mongoose.user.pet", dog["namespace"])
}

func TestTranslate_ExternalReference(t *testing.T) {
	m := compile(t, mschema.Doc(mschema.Schema("user", mschema.Map(mschema.E("img", mschema.Ident("Image"))), nil)))
	_, err := (&Translator{}).Translate("test.yaml", m, translate.Target{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Image")
}
