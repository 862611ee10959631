// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typemodel

import (
	"fmt"
	"iter"
	"slices"
)

// Model is a resolved set of named types.
type Model struct {
	types map[string]NamedType
	order []string
	roots []string
}

// Builder accumulates named types for a Model. It is not safe for
// concurrent use.
type Builder struct {
	m Model
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{m: Model{types: make(map[string]NamedType)}}
}

// Add registers t. Names must be unique.
func (b *Builder) Add(t NamedType) error {
	name := t.TypeName()
	if _, exists := b.m.types[name]; exists {
		return fmt.Errorf("type %q already defined", name)
	}
	b.m.types[name] = t.clone()
	b.m.order = append(b.m.order, name)
	return nil
}

// AddRoot registers rec and marks it as a top-level record.
func (b *Builder) AddRoot(rec *RecordType) error {
	if err := b.Add(rec); err != nil {
		return err
	}
	b.m.roots = append(b.m.roots, rec.Name)
	return nil
}

// Build returns the finished Model. The Builder must not be used afterwards.
func (b *Builder) Build() *Model {
	m := b.m
	b.m = Model{}
	return &m
}

// Len returns the number of named types.
func (m *Model) Len() int { return len(m.order) }

// Roots returns the top-level record names in the order their schemas were
// supplied.
func (m *Model) Roots() []string { return slices.Clone(m.roots) }

// Names returns every type name in declaration order.
func (m *Model) Names() []string { return slices.Clone(m.order) }

// Lookup returns a copy of the named type.
func (m *Model) Lookup(name string) (NamedType, bool) {
	t, ok := m.types[name]
	if !ok {
		return nil, false
	}
	return t.clone(), true
}

// Record returns a copy of the named record.
func (m *Model) Record(name string) (*RecordType, bool) {
	t, ok := m.types[name]
	if !ok {
		return nil, false
	}
	r, ok := t.(*RecordType)
	if !ok {
		return nil, false
	}
	return r.clone().(*RecordType), true
}

// Enum returns a copy of the named enum.
func (m *Model) Enum(name string) (*EnumType, bool) {
	t, ok := m.types[name]
	if !ok {
		return nil, false
	}
	e, ok := t.(*EnumType)
	if !ok {
		return nil, false
	}
	return e.clone().(*EnumType), true
}

// Union returns a copy of the named union.
func (m *Model) Union(name string) (*UnionType, bool) {
	t, ok := m.types[name]
	if !ok {
		return nil, false
	}
	u, ok := t.(*UnionType)
	if !ok {
		return nil, false
	}
	return u.clone().(*UnionType), true
}

// All returns an iterator over copies of every named type in declaration
// order.
func (m *Model) All() iter.Seq[NamedType] {
	return func(yield func(NamedType) bool) {
		for _, name := range m.order {
			if !yield(m.types[name].clone()) {
				return
			}
		}
	}
}

// Refs returns an iterator over every TypeRef reachable from ref, ref first.
func Refs(ref TypeRef) iter.Seq[TypeRef] {
	return func(yield func(TypeRef) bool) {
		for r := &ref; r != nil; r = r.Elem {
			if !yield(*r) {
				return
			}
		}
	}
}

// External returns the names referenced by record fields that are not
// defined in the model, sorted.
func (m *Model) External() []string {
	seen := make(map[string]struct{})
	for _, name := range m.order {
		rec, ok := m.types[name].(*RecordType)
		if !ok {
			continue
		}
		for _, f := range rec.Fields {
			for r := range Refs(f.Type) {
				if r.Kind != RefNamed {
					continue
				}
				if _, defined := m.types[r.Name]; !defined {
					seen[r.Name] = struct{}{}
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
