// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"fmt"

	"github.com/gatsbylabs/malt/internal/mschema"
)

const (
	DefaultTypeKey         = "type"
	DefaultIdentifierField = "_id"
	DefaultNamespace       = "mongoose"
	DefaultMaxDepth        = 64
)

// Timestamps names the derived timestamp fields. An empty name means the
// field is not synthesized.
type Timestamps struct {
	CreatedAt string
	UpdatedAt string
}

// DefaultTimestamps is what the boolean shorthand `timestamps: true` means.
var DefaultTimestamps = Timestamps{CreatedAt: "createdAt", UpdatedAt: "updatedAt"}

// Names returns the configured names, createdAt first.
func (t Timestamps) Names() []string {
	var out []string
	if t.CreatedAt != "" {
		out = append(out, t.CreatedAt)
	}
	if t.UpdatedAt != "" {
		out = append(out, t.UpdatedAt)
	}
	return out
}

// Options controls how schemas are resolved. It is passed by value and
// never changes while a schema resolves.
type Options struct {
	TypeKey          string
	OmitIdentifier   bool
	IdentifierField  string
	Timestamps       Timestamps
	Namespace        string
	MaxDepth         int
	StrictReferences bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		TypeKey:         DefaultTypeKey,
		IdentifierField: DefaultIdentifierField,
		Namespace:       DefaultNamespace,
		MaxDepth:        DefaultMaxDepth,
	}
}

// withDefaults fills zero-valued settings with their defaults.
func (o Options) withDefaults() Options {
	if o.TypeKey == "" {
		o.TypeKey = DefaultTypeKey
	}
	if o.IdentifierField == "" {
		o.IdentifierField = DefaultIdentifierField
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

func (o Options) isTimestamp(name string) bool {
	return name != "" && (name == o.Timestamps.CreatedAt || name == o.Timestamps.UpdatedAt)
}

// ParseSchemaOptions reads a per-schema options mapping on top of base:
//
//	typeKey: $type
//	_id: false
//	timestamps: true | false | {createdAt: true | false | name, updatedAt: ...}
//
// A nil node returns base unchanged.
func ParseSchemaOptions(node *mschema.Node, base Options) (Options, error) {
	opts := base.withDefaults()
	if node == nil {
		return opts, nil
	}
	if !node.IsMapping() {
		return opts, fmt.Errorf("%w: expected a mapping, got %s", ErrInvalidOptions, node.Describe())
	}

	for _, e := range node.Entries {
		switch e.Key {
		case "typeKey":
			if !e.Value.IsString() || e.Value.Value == "" {
				return opts, fmt.Errorf("%w: %s: typeKey must be a non-empty string", ErrInvalidOptions, e.KeyPos)
			}
			opts.TypeKey = e.Value.Value
		case "_id":
			keep, ok := e.Value.Bool()
			if !ok {
				return opts, fmt.Errorf("%w: %s: _id must be a bool", ErrInvalidOptions, e.KeyPos)
			}
			opts.OmitIdentifier = !keep
		case "timestamps":
			ts, err := parseTimestamps(e.Value)
			if err != nil {
				return opts, fmt.Errorf("%w: %s: %v", ErrInvalidOptions, e.KeyPos, err)
			}
			opts.Timestamps = ts
		default:
			// Other schema options (collection, strict, versionKey, ...) do
			// not affect the shape of the resolved types.
		}
	}
	return opts, nil
}

func parseTimestamps(n *mschema.Node) (Timestamps, error) {
	if b, ok := n.Bool(); ok {
		if b {
			return DefaultTimestamps, nil
		}
		return Timestamps{}, nil
	}
	if !n.IsMapping() {
		return Timestamps{}, fmt.Errorf("timestamps must be a bool or a mapping, got %s", n.Describe())
	}

	var ts Timestamps
	for _, e := range n.Entries {
		var dst *string
		switch e.Key {
		case "createdAt":
			dst = &ts.CreatedAt
		case "updatedAt":
			dst = &ts.UpdatedAt
		default:
			continue
		}
		switch {
		case e.Value.IsString():
			*dst = e.Value.Value
		default:
			b, ok := e.Value.Bool()
			if !ok {
				return Timestamps{}, fmt.Errorf("timestamps.%s must be a bool or a field name", e.Key)
			}
			if b {
				*dst = e.Key
			}
		}
	}
	return ts, nil
}
