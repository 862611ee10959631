// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package resolve

import (
	"fmt"
	"strconv"
)

const defaultSuffixLimit = 1 << 20

// Allocator hands out unique type names within one compilation unit.
// A taken name gets a numeric suffix: name, name0, name1, ...
type Allocator struct {
	used    map[string]struct{}
	journal []string
	limit   int
}

// NewAllocator returns an empty Allocator.
func NewAllocator() *Allocator {
	return &Allocator{used: make(map[string]struct{}), limit: defaultSuffixLimit}
}

// Allocate reserves and returns the first free form of candidate.
func (a *Allocator) Allocate(candidate string) (string, error) {
	if a.take(candidate) {
		return candidate, nil
	}
	for i := 0; i < a.limit; i++ {
		name := candidate + strconv.Itoa(i)
		if a.take(name) {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no free name for %q after %d attempts", ErrNameExhaustion, candidate, a.limit)
}

func (a *Allocator) reserved(name string) bool {
	_, ok := a.used[name]
	return ok
}

func (a *Allocator) take(name string) bool {
	if a.reserved(name) {
		return false
	}
	a.used[name] = struct{}{}
	a.journal = append(a.journal, name)
	return true
}

// checkpoint returns a mark that rollback can return to.
func (a *Allocator) checkpoint() int { return len(a.journal) }

// rollback releases every name reserved since mark.
func (a *Allocator) rollback(mark int) {
	for _, name := range a.journal[mark:] {
		delete(a.used, name)
	}
	a.journal = a.journal[:mark]
}

// ChildNamespace returns the namespace of types nested under parentName.
func ChildNamespace(parentNS, parentName string) string {
	if parentNS == "" {
		return parentName
	}
	return parentNS + "." + parentName
}
