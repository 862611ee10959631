// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatsbylabs/malt/internal/config"
	"github.com/gatsbylabs/malt/internal/translate/formats"
)

const userSchema = `schemas:
  User:
    fields:
      name: { type: String, required: true }
      role: { type: String, enum: [admin, user] }
`

// execute runs the CLI in dir and returns stdout and stderr.
func execute(t *testing.T, dir string, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(formats.Builtin(), func(k string) string { return env[k] })
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schemas", "user.yaml"), userSchema)

	stdout, _, err := execute(t, dir, nil, "gen", "schemas", "--non-interactive")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generating typescript from schemas...")
	assert.Contains(t, stdout, "Generated 1 file(s)")

	content, err := os.ReadFile(filepath.Join(dir, "schemas", "__generated__", "user.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "export interface User {")
	assert.Contains(t, string(content), "export enum Role {")
}

func TestGen_ConfigAndFlags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user.yaml"), userSchema)
	writeFile(t, filepath.Join(dir, config.FileName), "version: 1\nformat: avro\noutDir: gen\n")

	_, _, err := execute(t, dir, nil, "gen", "user.yaml", "--non-interactive")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "gen", "user.avsc"))

	_, _, err = execute(t, dir, nil, "gen", "user.yaml", "--non-interactive", "--format", "gotypes", "--package", "db")
	require.NoError(t, err)
	content, err := os.ReadFile(filepath.Join(dir, "gen", "user.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "package db")

	_, _, err = execute(t, dir, map[string]string{config.EnvOutDir: "env"}, "gen", "user.yaml", "--non-interactive")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "env", "user.avsc"))
}

func TestGen_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yaml"), "schemas:\n  Bad:\n    fields:\n      x: { type: String, enum: [a, 1] }\n")

	tests := []struct {
		name    string
		args    []string
		wantErr string
		wantOut string
	}{
		{name: "no paths", args: []string{"gen", "--non-interactive"}, wantErr: "requires at least one path"},
		{name: "unknown format", args: []string{"gen", "bad.yaml", "--format", "cobol"}, wantErr: "unsupported format"},
		{name: "missing path", args: []string{"gen", "nope", "--non-interactive"}, wantErr: "failed to read input"},
		{name: "resolution failure", args: []string{"gen", "bad.yaml", "--non-interactive"}, wantErr: "failed to generate 1 of 1", wantOut: "Errors:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, dir, nil, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, stdout, tt.wantOut)
		})
	}
}

func TestGen_DryRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user.yaml"), userSchema)

	stdout, _, err := execute(t, dir, nil, "gen", "user.yaml", "--non-interactive", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Would generate 1 file(s)")
	assert.NoDirExists(t, filepath.Join(dir, "__generated__"))
}

func TestGen_VerboseLogs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user.yaml"), userSchema)

	_, stderr, err := execute(t, dir, nil, "gen", "user.yaml", "--non-interactive", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote output")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user.yaml"), userSchema)

	stdout, _, err := execute(t, dir, nil, "inspect", "user.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Roots:")
	assert.Contains(t, stdout, "record mongoose.User")
	assert.Contains(t, stdout, "  name: String")
	assert.Contains(t, stdout, "  role?: role")
	assert.Contains(t, stdout, "enum mongoose.User.role = admin | user")

	stdout, _, err = execute(t, dir, nil, "inspect", "user.yaml", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"roots": [`)

	_, _, err = execute(t, dir, nil, "inspect", "user.yaml", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output style")
}

func TestInspect_Dependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "shop.yaml"), `schemas:
  User:
    fields:
      name: String
  Order:
    fields:
      buyer: { type: User, required: true }
`)

	stdout, _, err := execute(t, dir, nil, "inspect", "shop.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Order uses:")
	assert.NotContains(t, stdout, "User uses:")
}

func TestInspect_Failures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mixed.yaml"), `schemas:
  Good:
    fields:
      n: Number
  Bad:
    fields:
      x: [String, Number]
`)

	stdout, stderr, err := execute(t, dir, nil, "inspect", "mixed.yaml")
	assert.ErrorContains(t, err, "1 schema(s) failed to resolve")
	assert.Contains(t, stdout, "record mongoose.Good")
	assert.Contains(t, stderr, "Bad:")
}

func TestFormats(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), nil, "formats")
	require.NoError(t, err)
	assert.Contains(t, stdout, "typescript")
	assert.Contains(t, stdout, ".ts (default)")
	assert.Contains(t, stdout, "gotypes")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, t.TempDir(), nil, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "malt version")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, dir, nil, "init", "--non-interactive", "--format", "gotypes", "--package", "models", "--timestamps")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "gotypes", cfg.Format)
	assert.Equal(t, "models", cfg.Package)
	assert.True(t, cfg.Timestamps)

	_, _, err = execute(t, dir, nil, "init", "--non-interactive")
	assert.ErrorContains(t, err, "already initialized")
}

func TestInit_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown format", args: []string{"init", "--non-interactive", "--format", "cobol"}},
		{name: "unknown style", args: []string{"init", "--non-interactive", "--enum-style", "kebab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, _, err := execute(t, dir, nil, tt.args...)
			assert.ErrorContains(t, err, "invalid configuration")
			assert.NoFileExists(t, filepath.Join(dir, config.FileName))
		})
	}
}
