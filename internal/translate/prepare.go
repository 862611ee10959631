// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gatsbylabs/malt/internal/typemodel"
)

// ErrNameCollision is returned when two model types render to the same
// name after styling.
var ErrNameCollision = errors.New("type name collision")

// prepareContext holds the name table built before any field is resolved.
type prepareContext struct {
	resolver TypeResolver
	model    *typemodel.Model
	names    map[string]string // model name -> formatted name
}

// Prepare converts a type model into a SchemaData ready for template execution.
// Type names are styled per target, then passed through the resolver's
// FormatDefName; every field type is resolved with the TypeResolver.
func Prepare(unit string, model *typemodel.Model, target Target, resolver TypeResolver) (*SchemaData, error) {
	ctx := &prepareContext{
		resolver: resolver,
		model:    model,
		names:    make(map[string]string, model.Len()),
	}
	if err := ctx.formatNames(target); err != nil {
		return nil, err
	}

	roots := model.Roots()
	data := &SchemaData{
		Unit:  unit,
		Extra: make(map[string]any),
	}
	for _, r := range roots {
		data.Roots = append(data.Roots, ctx.names[r])
	}

	for nt := range model.All() {
		switch t := nt.(type) {
		case *typemodel.RecordType:
			data.Records = append(data.Records, TypeDef{
				Name:      ctx.names[t.Name],
				RawName:   t.Name,
				Namespace: t.Namespace,
				Root:      slices.Contains(roots, t.Name),
				Fields:    ctx.resolveFields(t.Fields),
			})
		case *typemodel.EnumType:
			data.Enums = append(data.Enums, EnumDef{
				Name:      ctx.names[t.Name],
				RawName:   t.Name,
				Namespace: t.Namespace,
				Base:      t.Base,
				Values:    enumValues(t.Literals),
			})
		case *typemodel.UnionType:
			u := UnionDef{
				Name:      ctx.names[t.Name],
				RawName:   t.Name,
				Namespace: t.Namespace,
				Nullable:  t.Nullable,
			}
			for _, m := range t.Members {
				u.Members = append(u.Members, ctx.names[m])
			}
			data.Unions = append(data.Unions, u)
		}
	}

	return data, nil
}

func (c *prepareContext) formatNames(target Target) error {
	owner := make(map[string]string, c.model.Len())
	for nt := range c.model.All() {
		style := target.InterfaceStyle
		if nt.Kind() == typemodel.KindEnum {
			style = target.EnumStyle
		}
		styled := style.Apply(nt.TypeName())
		if styled == "" {
			styled = nt.TypeName()
		}
		name := c.resolver.FormatDefName(styled)
		if prev, taken := owner[name]; taken {
			return fmt.Errorf("%w: %q and %q both render as %q", ErrNameCollision, prev, nt.TypeName(), name)
		}
		owner[name] = nt.TypeName()
		c.names[nt.TypeName()] = name
	}
	return nil
}

func (c *prepareContext) resolveFields(slots []typemodel.FieldSlot) []Field {
	fields := make([]Field, 0, len(slots))
	for _, s := range slots {
		f := Field{
			Name:     s.Name,
			Type:     c.resolveType(s.Type),
			Nullable: s.Optional,
			Derived:  s.Derived,
			Ref:      s.Type,
		}
		c.resolver.EnrichField(&f)
		fields = append(fields, f)
	}
	return fields
}

func (c *prepareContext) resolveType(ref typemodel.TypeRef) string {
	switch ref.Kind {
	case typemodel.RefArray:
		return c.resolver.ArrayType(c.resolveType(*ref.Elem))
	case typemodel.RefMap:
		return c.resolver.MapType(c.resolveType(*ref.Elem))
	case typemodel.RefNamed:
		if name, ok := c.names[ref.Name]; ok {
			nt, _ := c.model.Lookup(ref.Name)
			return c.resolver.RefType(name, nt.Kind())
		}
		return c.resolver.RefType(c.resolver.FormatDefName(ref.Name), "")
	default:
		return c.resolver.PrimitiveType(ref.Primitive)
	}
}

func enumValues(literals []typemodel.Literal) []EnumValue {
	values := make([]EnumValue, 0, len(literals))
	seen := make(map[string]int)
	for _, l := range literals {
		key := ToIdentifier(l.Value)
		if l.Kind == typemodel.LiteralNumber {
			key = ToIdentifier("_" + l.Value)
		}
		if n := seen[key]; n > 0 {
			seen[key]++
			key = fmt.Sprintf("%s%d", key, n-1)
		} else {
			seen[key] = 1
		}
		values = append(values, EnumValue{
			Key:   key,
			Value: l.Value,
			Quote: l.Kind == typemodel.LiteralString,
		})
	}
	return values
}
