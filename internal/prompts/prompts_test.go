// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentifierValidator(t *testing.T) {
	validate := identifierValidator(goKeywords...)

	tests := []struct {
		in      string
		wantErr string
	}{
		{in: "models"},
		{in: "_db2"},
		{in: "", wantErr: "required"},
		{in: "2db", wantErr: "must start"},
		{in: "my-models", wantErr: "only letters"},
		{in: "type", wantErr: "reserved"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validate(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequiredValidator(t *testing.T) {
	assert.ErrorContains(t, requiredValidator("input path")(""), "input path is required")
	assert.NoError(t, requiredValidator("input path")("."))
}

func TestFprintResult(t *testing.T) {
	var buf bytes.Buffer
	FprintResult(&buf, []ResultField{{Label: "Output", Value: "gen/user.ts"}}, "Done")

	out := buf.String()
	assert.Contains(t, out, "Output:")
	assert.Contains(t, out, "gen/user.ts")
	assert.Contains(t, out, "Done")
}

func TestFprintFailures(t *testing.T) {
	var buf bytes.Buffer
	FprintFailures(&buf, nil)
	assert.Empty(t, buf.String())

	FprintFailures(&buf, []ResultField{{Label: "user.yaml", Value: "boom"}})
	assert.Contains(t, buf.String(), "Errors:")
	assert.Contains(t, buf.String(), "boom")
}
