// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextStyle_Apply(t *testing.T) {
	tests := []struct {
		in     string
		style  TextStyle
		expect string
	}{
		{"user_account", StyleDefault, "user_account"},
		{"user_account", StylePascalCase, "UserAccount"},
		{"user_account", StyleCamelCase, "userAccount"},
		{"user_account", StyleScreamingSnake, "USER_ACCOUNT"},
		{"userAccount", StyleScreamingSnake, "USER_ACCOUNT"},
		{"address0", StylePascalCase, "Address0"},
		{"XMLHttpRequest", StyleCamelCase, "xmlHttpRequest"},
		{"XMLHttpRequest", StyleScreamingSnake, "XML_HTTP_REQUEST"},
		{"order-item", StylePascalCase, "OrderItem"},
		{"item_2", StylePascalCase, "Item_2"},
	}
	for _, tt := range tests {
		t.Run(string(tt.style)+"/"+tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.style.Apply(tt.in))
		})
	}
}

func TestParseTextStyle(t *testing.T) {
	s, err := ParseTextStyle("")
	require.NoError(t, err)
	assert.Equal(t, StyleDefault, s)

	s, err = ParseTextStyle("PascalCase")
	require.NoError(t, err)
	assert.Equal(t, StylePascalCase, s)

	_, err = ParseTextStyle("kebab-case")
	require.Error(t, err)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "user_name", ToSnakeCase("userName"))
	assert.Equal(t, "_2fa_code", ToSnakeCase("2fa code"))
}

func TestToIdentifier(t *testing.T) {
	assert.Equal(t, "in_progress", ToIdentifier("in-progress"))
	assert.Equal(t, "_1st", ToIdentifier("1st"))
	assert.Equal(t, "_", ToIdentifier(""))
}
