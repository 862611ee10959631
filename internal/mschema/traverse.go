// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mschema

import "iter"

// Walk returns an iterator over n and every node below it, depth first,
// mapping values in declaration order. Each node is yielded once even when
// it is shared between several parents.
func Walk(n *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		visited := make(map[*Node]struct{})
		walk(n, yield, visited)
	}
}

func walk(n *Node, yield func(*Node) bool, visited map[*Node]struct{}) bool {
	if n == nil {
		return true
	}
	if _, ok := visited[n]; ok {
		return true
	}
	visited[n] = struct{}{}

	if !yield(n) {
		return false
	}
	for _, item := range n.Items {
		if !walk(item, yield, visited) {
			return false
		}
	}
	for _, e := range n.Entries {
		if !walk(e.Value, yield, visited) {
			return false
		}
	}
	return true
}
