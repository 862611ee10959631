// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxDecodeDepth bounds alias expansion; a self-referencing anchor would
// otherwise expand forever.
const maxDecodeDepth = 256

// maxDecodeNodes bounds the expanded size of a document. Each alias use
// copies its anchor, so nested anchors grow exponentially within a few levels.
const maxDecodeNodes = 1 << 20

// DecodeYAML parses a YAML document into a Node tree, keeping mapping key
// order and source positions. Aliases are expanded in place and merge keys
// (`<<`) splice the merged mappings into the enclosing one.
func DecodeYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, errors.New("empty document")
	}
	d := &yamlDecoder{budget: maxDecodeNodes}
	return d.node(&doc, 0)
}

type yamlDecoder struct {
	budget int
}

func (d *yamlDecoder) node(n *yaml.Node, depth int) (*Node, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("line %d: document nested deeper than %d levels", n.Line, maxDecodeDepth)
	}
	if n.Kind != yaml.DocumentNode && n.Kind != yaml.AliasNode {
		d.budget--
		if d.budget < 0 {
			return nil, fmt.Errorf("line %d: document expands to more than %d nodes", n.Line, maxDecodeNodes)
		}
	}
	pos := Pos{Line: n.Line, Column: n.Column}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errors.New("empty document")
		}
		return d.node(n.Content[0], depth)

	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: unknown alias %q", n.Line, n.Value)
		}
		return d.node(n.Alias, depth+1)

	case yaml.ScalarNode:
		return &Node{Kind: KindScalar, Scalar: yamlScalarKind(n), Value: n.Value, Pos: pos}, nil

	case yaml.SequenceNode:
		out := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(n.Content)), Pos: pos}
		for _, item := range n.Content {
			child, err := d.node(item, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, child)
		}
		return out, nil

	case yaml.MappingNode:
		return d.mapping(n, pos, depth)
	}

	return nil, fmt.Errorf("line %d: unsupported YAML node", n.Line)
}

// mapping decodes a mapping node. Keys written in the mapping itself win
// over merged ones; among merged mappings the first to supply a key wins.
func (d *yamlDecoder) mapping(n *yaml.Node, pos Pos, depth int) (*Node, error) {
	explicit := make(map[string]struct{}, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
		}
		if isMergeKey(k) {
			continue
		}
		if _, dup := explicit[k.Value]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %q", k.Line, k.Value)
		}
		explicit[k.Value] = struct{}{}
	}

	out := &Node{Kind: KindMapping, Entries: make([]Entry, 0, len(n.Content)/2), Pos: pos}
	merged := make(map[string]struct{})
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if isMergeKey(k) {
			sources, err := d.mergeSources(v, depth+1)
			if err != nil {
				return nil, err
			}
			for _, src := range sources {
				for _, e := range src.Entries {
					if _, ok := explicit[e.Key]; ok {
						continue
					}
					if _, ok := merged[e.Key]; ok {
						continue
					}
					merged[e.Key] = struct{}{}
					out.Entries = append(out.Entries, e)
				}
			}
			continue
		}
		child, err := d.node(v, depth+1)
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, Entry{
			Key:    k.Value,
			KeyPos: Pos{Line: k.Line, Column: k.Column},
			Value:  child,
		})
	}
	return out, nil
}

// mergeSources decodes the value of a merge key: a mapping or a sequence
// of mappings.
func (d *yamlDecoder) mergeSources(v *yaml.Node, depth int) ([]*Node, error) {
	val, err := d.node(v, depth)
	if err != nil {
		return nil, err
	}
	switch {
	case val.IsMapping():
		return []*Node{val}, nil
	case val.IsSequence():
		for _, item := range val.Items {
			if !item.IsMapping() {
				return nil, fmt.Errorf("line %d: merge sequence must contain only mappings", item.Pos.Line)
			}
		}
		return val.Items, nil
	}
	return nil, fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", v.Line)
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func yamlScalarKind(n *yaml.Node) ScalarKind {
	switch n.ShortTag() {
	case "!!int", "!!float":
		return ScalarNumber
	case "!!bool":
		return ScalarBool
	case "!!null":
		return ScalarNull
	default:
		return ScalarString
	}
}
