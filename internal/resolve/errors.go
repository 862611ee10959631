// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gatsbylabs/malt/internal/mschema"
)

var (
	// ErrUnclassifiableField is returned when a field description matches
	// none of the known shapes.
	ErrUnclassifiableField = errors.New("unclassifiable field")
	// ErrMalformedEnum is returned for enum lists that are empty, mix
	// string and numeric literals, or contain non-literal entries.
	ErrMalformedEnum = errors.New("malformed enum")
	// ErrMissingUnionMember is returned when a discriminator variant cannot
	// be resolved.
	ErrMissingUnionMember = errors.New("missing union member")
	// ErrNameExhaustion is returned when no free suffixed name is left.
	ErrNameExhaustion = errors.New("name exhaustion")
	// ErrNestingTooDeep is returned when a field tree nests deeper than
	// the configured limit, which is how cyclic trees surface.
	ErrNestingTooDeep = errors.New("nesting too deep")
	// ErrUnresolvedReference is returned in strict mode for references to
	// types that are not defined in the compilation unit.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrInvalidOptions is returned for malformed per-schema options.
	ErrInvalidOptions = errors.New("invalid schema options")
)

// FieldError describes a failure to resolve one field of a schema.
type FieldError struct {
	Unit   string
	Schema string
	// Path is the dotted field path from the schema root. Empty for
	// failures of the schema itself.
	Path   string
	Kind   error
	Reason string
	Pos    mschema.Pos
	// Cause is the underlying failure, for errors that wrap another one
	// such as a union variant that failed to resolve.
	Cause error
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Unit != "" {
		b.WriteString(e.Unit)
		if e.Pos.IsValid() {
			b.WriteString(":" + e.Pos.String())
		}
		b.WriteString(": ")
	}
	if e.Schema != "" {
		fmt.Fprintf(&b, "schema %s: ", e.Schema)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, "field %s: ", e.Path)
	}
	b.WriteString(e.Kind.Error())
	if e.Reason != "" {
		b.WriteString(": " + e.Reason)
	}
	if e.Cause != nil {
		b.WriteString(": " + e.Cause.Error())
	}
	return b.String()
}

func (e *FieldError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func fieldErr(kind error, path string, pos mschema.Pos, format string, args ...any) *FieldError {
	return &FieldError{Path: path, Kind: kind, Reason: fmt.Sprintf(format, args...), Pos: pos}
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
