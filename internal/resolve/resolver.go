// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"slices"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

// uuidDefault matches default generators that produce UUID strings.
var uuidDefault = regexp.MustCompile(`(?i)^(uuid|v4)`)

// scope is the record whose fields are being resolved.
type scope struct {
	name      string
	namespace string
}

func (s scope) child() string { return ChildNamespace(s.namespace, s.name) }

// resolver resolves one top-level schema. Types it produces are staged and
// only reach the model once the whole schema succeeds.
type resolver struct {
	opts    Options
	names   *Allocator
	symbols map[string]string
	decls   map[string]mschema.SchemaDecl
	staged  []typemodel.NamedType
}

func (r *resolver) resolveRecord(fields *mschema.Node, name, namespace, path string, depth int) (*typemodel.RecordType, error) {
	if !fields.IsMapping() {
		return nil, fieldErr(ErrUnclassifiableField, path, mschema.Pos{}, "record fields must be a mapping, got %s", fields.Describe())
	}
	if depth > r.opts.MaxDepth {
		return nil, fieldErr(ErrNestingTooDeep, path, fields.Pos, "more than %d levels", r.opts.MaxDepth)
	}

	rec := &typemodel.RecordType{Name: name, Namespace: namespace}
	sc := scope{name: name, namespace: namespace}
	omitID := r.opts.OmitIdentifier
	declared := make(map[string]struct{}, len(fields.Entries))

	for _, e := range fields.Entries {
		fieldPath := joinPath(path, e.Key)
		if _, dup := declared[e.Key]; dup {
			return nil, fieldErr(ErrUnclassifiableField, fieldPath, e.KeyPos, "field declared twice")
		}
		// `_id: false` inside a field tree switches the identifier off for
		// that record only.
		if e.Key == r.opts.IdentifierField {
			if keep, ok := e.Value.Bool(); ok {
				omitID = !keep
				continue
			}
		}
		if e.Value.IsScalar() && e.Value.Scalar == mschema.ScalarNull {
			continue
		}

		ref, required, err := r.resolveType(e.Key, e.Value, sc, fieldPath, depth+1, false)
		if err != nil {
			return nil, err
		}
		declared[e.Key] = struct{}{}
		rec.Fields = append(rec.Fields, typemodel.FieldSlot{Name: e.Key, Type: ref, Optional: !required})
	}

	if _, ok := declared[r.opts.IdentifierField]; !ok && !omitID {
		id := typemodel.FieldSlot{
			Name:     r.opts.IdentifierField,
			Type:     typemodel.Prim(typemodel.ObjectID),
			Optional: true,
			Derived:  true,
		}
		rec.Fields = append([]typemodel.FieldSlot{id}, rec.Fields...)
	}
	// Timestamp slots always close the record, created before updated. A
	// declared timestamp moves there and keeps its type and presence.
	for _, ts := range r.opts.Timestamps.Names() {
		slot := typemodel.FieldSlot{
			Name:     ts,
			Type:     typemodel.Prim(typemodel.Date),
			Optional: true,
			Derived:  true,
		}
		if i := slices.IndexFunc(rec.Fields, func(f typemodel.FieldSlot) bool { return f.Name == ts }); i >= 0 {
			slot.Type = rec.Fields[i].Type
			slot.Optional = rec.Fields[i].Optional
			rec.Fields = slices.Delete(rec.Fields, i, i+1)
		}
		rec.Fields = append(rec.Fields, slot)
	}

	r.staged = append(r.staged, rec)
	return rec, nil
}

// resolveType resolves one field description and reports whether the field
// is always present.
func (r *resolver) resolveType(name string, node *mschema.Node, sc scope, path string, depth int, forced bool) (typemodel.TypeRef, bool, error) {
	if node == nil {
		return typemodel.TypeRef{}, false, fieldErr(ErrUnclassifiableField, path, mschema.Pos{}, "missing field description")
	}
	if depth > r.opts.MaxDepth {
		return typemodel.TypeRef{}, false, fieldErr(ErrNestingTooDeep, path, node.Pos, "more than %d levels", r.opts.MaxDepth)
	}

	shape, err := Classify(name, node, r.opts.TypeKey)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return typemodel.TypeRef{}, false, err
	}
	required := forced || r.isRequired(name, shape.Modifiers)

	switch shape.Kind {
	case ShapePrimitive:
		if len(shape.Enum) > 0 {
			ref, err := r.enum(name, shape.Enum, sc, path, node.Pos)
			return ref, required, err
		}
		prim := shape.Primitive
		if prim == typemodel.String && hasUUIDDefault(shape.Modifiers) {
			prim = typemodel.UUID
		}
		return typemodel.Prim(prim), required, nil

	case ShapeReference:
		if len(shape.Enum) > 0 {
			ref, err := r.enum(name, shape.Enum, sc, path, node.Pos)
			return ref, required, err
		}
		ref, err := r.reference(shape.Ref, path, node.Pos)
		return ref, required, err

	case ShapeArray:
		elem, err := r.elem(name, shape.Elem, sc, path, depth)
		if err != nil {
			return typemodel.TypeRef{}, false, err
		}
		return typemodel.ArrayOf(elem), required, nil

	case ShapeMap:
		value, err := r.elem(name, shape.Elem, sc, path, depth)
		if err != nil {
			return typemodel.TypeRef{}, false, err
		}
		return typemodel.MapOf(value), required, nil

	case ShapeNested:
		recName, err := r.allocate(name, path, node.Pos)
		if err != nil {
			return typemodel.TypeRef{}, false, err
		}
		if _, err := r.resolveRecord(shape.Fields, recName, sc.child(), path, depth); err != nil {
			return typemodel.TypeRef{}, false, err
		}
		return typemodel.Named(recName), required, nil

	case ShapeUnion:
		ref, err := r.union(name, shape.Variants, sc, path, depth, !required, node.Pos)
		return ref, required, err
	}

	return typemodel.TypeRef{}, false, fieldErr(ErrUnclassifiableField, path, node.Pos, "unhandled shape %s", shape.Kind)
}

// elem resolves an array element or map value. Elements are always present
// once their container is; the container carries the optionality.
func (r *resolver) elem(name string, node *mschema.Node, sc scope, path string, depth int) (typemodel.TypeRef, error) {
	if node == nil {
		return typemodel.Prim(typemodel.Mixed), nil
	}
	ref, _, err := r.resolveType(name, node, sc, path, depth+1, true)
	return ref, err
}

func (r *resolver) enum(name string, literals []typemodel.Literal, sc scope, path string, pos mschema.Pos) (typemodel.TypeRef, error) {
	enumName, err := r.allocate(name, path, pos)
	if err != nil {
		return typemodel.TypeRef{}, err
	}
	r.staged = append(r.staged, &typemodel.EnumType{
		Name:      enumName,
		Namespace: sc.child(),
		Base:      literals[0].Kind,
		Literals:  literals,
	})
	return typemodel.Named(enumName), nil
}

func (r *resolver) union(name string, variants []mschema.Entry, sc scope, path string, depth int, nullable bool, pos mschema.Pos) (typemodel.TypeRef, error) {
	unionName, err := r.allocate(name, path, pos)
	if err != nil {
		return typemodel.TypeRef{}, err
	}
	memberNS := sc.child() + "." + name

	u := &typemodel.UnionType{Name: unionName, Namespace: sc.child(), Nullable: nullable}
	for _, v := range variants {
		variantPath := joinPath(path, v.Key)
		fields, err := r.variantFields(v)
		if err != nil {
			return typemodel.TypeRef{}, &FieldError{Path: variantPath, Kind: ErrMissingUnionMember, Reason: err.Error(), Pos: v.KeyPos}
		}
		memberName, err := r.allocate(v.Key, variantPath, v.KeyPos)
		if err != nil {
			return typemodel.TypeRef{}, err
		}
		if _, err := r.resolveRecord(fields, memberName, memberNS, variantPath, depth+1); err != nil {
			return typemodel.TypeRef{}, &FieldError{
				Path:   variantPath,
				Kind:   ErrMissingUnionMember,
				Reason: "variant " + v.Key + " did not resolve",
				Pos:    v.KeyPos,
				Cause:  err,
			}
		}
		u.Members = append(u.Members, memberName)
	}

	r.staged = append(r.staged, u)
	return typemodel.Named(unionName), nil
}

// variantFields returns the field tree of a discriminator variant: an inline
// mapping, or the name of another schema in the same document.
func (r *resolver) variantFields(v mschema.Entry) (*mschema.Node, error) {
	switch {
	case v.Value.IsMapping():
		return v.Value, nil
	case v.Value.IsString():
		decl, ok := r.decls[lastSegment(v.Value.Value)]
		if !ok {
			return nil, errors.New("no schema named " + v.Value.Value)
		}
		if decl.Err != nil {
			return nil, fmt.Errorf("schema %s is malformed: %w", decl.Name, decl.Err)
		}
		return decl.Fields, nil
	}
	return nil, errors.New("variant must be a field mapping or a schema name, got " + v.Value.Describe())
}

func (r *resolver) reference(name, path string, pos mschema.Pos) (typemodel.TypeRef, error) {
	if root, ok := r.symbols[name]; ok {
		return typemodel.Named(root), nil
	}
	if r.opts.StrictReferences {
		return typemodel.TypeRef{}, fieldErr(ErrUnresolvedReference, path, pos, "%s is neither a primitive nor an earlier schema", name)
	}
	return typemodel.Named(name), nil
}

func (r *resolver) allocate(candidate, path string, pos mschema.Pos) (string, error) {
	name, err := r.names.Allocate(candidate)
	if err != nil {
		return "", &FieldError{Path: path, Kind: ErrNameExhaustion, Reason: err.Error(), Pos: pos}
	}
	return name, nil
}

// isRequired reports whether a field is always present. A required list
// such as [true, "message"] or [validatorName] counts as required unless
// it opens with false.
func (r *resolver) isRequired(name string, mods *mschema.Node) bool {
	if r.opts.isTimestamp(name) {
		return true
	}
	if mods == nil {
		return false
	}
	if mods.Has("default") || mods.Has("auto") {
		return true
	}
	req, ok := mods.Lookup("required")
	if !ok {
		return false
	}
	if b, ok := req.Bool(); ok {
		return b
	}
	if req.IsSequence() && len(req.Items) > 0 {
		if b, ok := req.Items[0].Bool(); ok && !b {
			return false
		}
		return true
	}
	return false
}

func hasUUIDDefault(mods *mschema.Node) bool {
	def, ok := mods.Lookup("default")
	return ok && def.IsString() && uuidDefault.MatchString(def.Value)
}
