// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
)

// DecodeJSON parses a JSON document into a Node tree. Object keys are read
// token by token so their declaration order survives. JSON carries no
// positions; decoded nodes have a zero Pos.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := decodeJSONValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return node, nil
}

func decodeJSONValue(dec *json.Decoder, depth int) (*Node, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("document nested deeper than %d levels", maxDecodeDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec, depth)
		case '[':
			return decodeJSONArray(dec, depth)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		return Str(t), nil
	case json.Number:
		return &Node{Kind: KindScalar, Scalar: ScalarNumber, Value: t.String()}, nil
	case float64:
		return &Node{Kind: KindScalar, Scalar: ScalarNumber, Value: strconv.FormatFloat(t, 'g', -1, 64)}, nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeJSONObject(dec *json.Decoder, depth int) (*Node, error) {
	out := &Node{Kind: KindMapping}
	seen := make(map[string]struct{})
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = struct{}{}
		value, err := decodeJSONValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		out.Entries = append(out.Entries, Entry{Key: key, Value: value})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONArray(dec *json.Decoder, depth int) (*Node, error) {
	out := &Node{Kind: KindSequence}
	for dec.More() {
		item, err := decodeJSONValue(dec, depth+1)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, item)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return out, nil
}
