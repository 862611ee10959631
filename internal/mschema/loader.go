// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("format not supported")

// IsSchemaFile reports whether the file name has an extension the Loader
// can decode.
func IsSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Decode parses data as a schema document. The format is determined from
// the extension of filePath.
func Decode(data []byte, filePath string) (*Document, error) {
	var (
		root *Node
		err  error
	)
	switch strings.ToLower(path.Ext(filePath)) {
	case ".yaml", ".yml":
		root, err = DecodeYAML(data)
	case ".json":
		root, err = DecodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	doc, err := ParseDocument(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return doc, nil
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema document.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return Decode(data, filePath)
}
