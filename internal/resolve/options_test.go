// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ms "github.com/gatsbylabs/malt/internal/mschema"
)

func TestParseSchemaOptions(t *testing.T) {
	base := DefaultOptions()

	tests := []struct {
		name string
		node *ms.Node
		want func(o *Options)
	}{
		{
			name: "nil keeps base",
			node: nil,
			want: func(o *Options) {},
		},
		{
			name: "timestamps shorthand",
			node: ms.Map(ms.E("timestamps", ms.Bool(true))),
			want: func(o *Options) { o.Timestamps = DefaultTimestamps },
		},
		{
			name: "timestamps off",
			node: ms.Map(ms.E("timestamps", ms.Bool(false))),
			want: func(o *Options) {},
		},
		{
			name: "timestamps mapping",
			node: ms.Map(ms.E("timestamps", ms.Map(ms.E("createdAt", ms.Str("created_at")), ms.E("updatedAt", ms.Bool(true))))),
			want: func(o *Options) { o.Timestamps = Timestamps{CreatedAt: "created_at", UpdatedAt: "updatedAt"} },
		},
		{
			name: "timestamps mapping partial",
			node: ms.Map(ms.E("timestamps", ms.Map(ms.E("createdAt", ms.Bool(true)), ms.E("updatedAt", ms.Bool(false))))),
			want: func(o *Options) { o.Timestamps = Timestamps{CreatedAt: "createdAt"} },
		},
		{
			name: "omit id",
			node: ms.Map(ms.E("_id", ms.Bool(false))),
			want: func(o *Options) { o.OmitIdentifier = true },
		},
		{
			name: "type key",
			node: ms.Map(ms.E("typeKey", ms.Str("$type"))),
			want: func(o *Options) { o.TypeKey = "$type" },
		},
		{
			name: "unrelated options ignored",
			node: ms.Map(ms.E("collection", ms.Str("users")), ms.E("strict", ms.Bool(false))),
			want: func(o *Options) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := base
			tt.want(&want)
			got, err := ParseSchemaOptions(tt.node, base)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseSchemaOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		node *ms.Node
	}{
		{"not a mapping", ms.Seq()},
		{"type key not string", ms.Map(ms.E("typeKey", ms.Num(1)))},
		{"empty type key", ms.Map(ms.E("typeKey", ms.Str("")))},
		{"id not bool", ms.Map(ms.E("_id", ms.Str("no")))},
		{"timestamps scalar", ms.Map(ms.E("timestamps", ms.Str("yes")))},
		{"timestamps entry", ms.Map(ms.E("timestamps", ms.Map(ms.E("createdAt", ms.Num(1)))))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchemaOptions(tt.node, DefaultOptions())
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestOptions_WithDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, DefaultTypeKey, o.TypeKey)
	assert.Equal(t, DefaultIdentifierField, o.IdentifierField)
	assert.Equal(t, DefaultMaxDepth, o.MaxDepth)
	assert.Empty(t, o.Timestamps.Names())
	assert.Equal(t, []string{"createdAt", "updatedAt"}, DefaultTimestamps.Names())
}
