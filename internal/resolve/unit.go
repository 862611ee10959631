// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package resolve turns raw document schemas into a typemodel.Model.
//
// Each input document is one compilation unit. A unit owns the name
// allocator and the symbol table of its schemas; nothing is shared between
// units, so independent documents can be compiled in parallel.
package resolve

import (
	"errors"
	"fmt"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// Unit compiles the schemas of one document into a single model.
type Unit struct {
	id        string
	opts      Options
	namespace string
	names     *Allocator
	symbols   map[string]string
	decls     map[string]mschema.SchemaDecl
	builder   *typemodel.Builder
}

// NewUnit creates a compilation unit. id identifies the unit in errors,
// usually the path of the input file.
func NewUnit(id string, opts Options) *Unit {
	opts = opts.withDefaults()
	return &Unit{
		id:        id,
		opts:      opts,
		namespace: opts.Namespace,
		names:     NewAllocator(),
		symbols:   make(map[string]string),
		decls:     make(map[string]mschema.SchemaDecl),
		builder:   typemodel.NewBuilder(),
	}
}

// Declare makes decls available as discriminator variants by name without
// compiling them.
func (u *Unit) Declare(decls ...mschema.SchemaDecl) {
	for _, d := range decls {
		if _, ok := u.decls[d.Name]; !ok {
			u.decls[d.Name] = d
		}
	}
}

// Compile resolves one top-level schema and adds its types to the unit.
// It returns the name of the root record. On failure nothing is added and
// every name the schema reserved is released.
func (u *Unit) Compile(decl mschema.SchemaDecl) (string, error) {
	u.Declare(decl)

	if decl.Err != nil {
		return "", u.locate(decl, &FieldError{
			Kind:   mschema.ErrInvalidDeclaration,
			Reason: unwrapReason(decl.Err, mschema.ErrInvalidDeclaration),
			Pos:    decl.ErrPos,
		})
	}

	opts, err := ParseSchemaOptions(decl.Options, u.opts)
	if err != nil {
		return "", u.locate(decl, &FieldError{Kind: ErrInvalidOptions, Reason: unwrapReason(err, ErrInvalidOptions), Pos: decl.Pos})
	}

	mark := u.names.checkpoint()
	r := &resolver{opts: opts, names: u.names, symbols: u.symbols, decls: u.decls}

	rootName, err := r.allocate(decl.Name, "", decl.Pos)
	if err == nil {
		_, err = r.resolveRecord(decl.Fields, rootName, u.namespace, "", 0)
	}
	if err != nil {
		u.names.rollback(mark)
		return "", u.locate(decl, err)
	}

	for _, t := range r.staged {
		if rec, ok := t.(*typemodel.RecordType); ok && rec.Name == rootName {
			err = u.builder.AddRoot(rec)
		} else {
			err = u.builder.Add(t)
		}
		if err != nil {
			return "", fmt.Errorf("%s: schema %s: %w", u.id, decl.Name, err)
		}
	}
	u.symbols[decl.Name] = rootName
	return rootName, nil
}

// Model returns the model built from every schema compiled so far. The unit
// must not be used afterwards.
func (u *Unit) Model() *typemodel.Model {
	return u.builder.Build()
}

// locate stamps the unit and schema onto a resolution error.
func (u *Unit) locate(decl mschema.SchemaDecl, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		fe.Unit = u.id
		fe.Schema = decl.Name
		return fe
	}
	return &FieldError{Unit: u.id, Schema: decl.Name, Kind: ErrUnclassifiableField, Reason: err.Error()}
}

func unwrapReason(err, kind error) string {
	msg := err.Error()
	prefix := kind.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

// CompileUnit resolves every schema of doc in order. Schemas that fail are
// left out of the model and reported in the returned error, which joins one
// *FieldError per failed schema. The model is never nil.
func CompileUnit(unitID string, doc *mschema.Document, opts Options) (*typemodel.Model, error) {
	if doc.Namespace != "" {
		opts.Namespace = doc.Namespace
	}
	u := NewUnit(unitID, opts)
	u.Declare(doc.Schemas...)

	var errs []error
	for _, decl := range doc.Schemas {
		if _, err := u.Compile(decl); err != nil {
			errs = append(errs, err)
		}
	}
	return u.Model(), errors.Join(errs...)
}
