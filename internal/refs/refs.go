// Package refs maintains the flat ref array and memoized per-id
// lookup described in spec.md §4.2. Grounded on the
// append-then-memoize pattern in
// pkg/commands/container_list_item.go's cached-derived-field style,
// reworked per spec.md §9's "replace raw pointer chains with ownership
// by index": a Ref carries no link pointer, and Lookup returns a
// borrowed slice into a central vector rather than walking a
// marker-terminated chain.
package refs

import (
	"strings"

	"github.com/samber/lo"
)

// Ref is a named pointer to a commit: a branch head or a peeled tag
// (spec.md §3, §9 glossary).
type Ref struct {
	Name   string
	ID     string
	IsTag  bool
	IsLast bool
}

// Index is the ref index component of spec.md §4.2: an append-only
// flat array plus a memoized id -> ordered ref list map, built lazily
// per id and kept for the session.
type Index struct {
	refs   []Ref
	lookup map[string][]int // id -> indices into refs, insertion order
	memo   map[string][]*Ref
}

// New returns an empty, ready-to-use ref index.
func New() *Index {
	return &Index{
		lookup: make(map[string][]int),
		memo:   make(map[string][]*Ref),
	}
}

// peeledTagSuffix is the suffix git ls-remote appends to a peeled
// (dereferenced) annotated tag ref.
const peeledTagSuffix = "^{}"

const (
	tagPrefix  = "refs/tags/"
	headPrefix = "refs/heads/"
)

// ParseName applies the filtering rule of spec.md §4.2 to a raw
// refname as produced by the ref enumerator: accept
// "refs/tags/<t>^{}" as tag t, accept "refs/heads/<b>" as head b, drop
// "HEAD" and everything else. It returns the resolved short name, a
// flag indicating whether it's a tag, and whether the refname should
// be added at all.
func ParseName(name string) (short string, isTag bool, ok bool) {
	if strings.HasPrefix(name, tagPrefix) {
		trimmed := strings.TrimPrefix(name, tagPrefix)
		if strings.HasSuffix(trimmed, peeledTagSuffix) {
			return strings.TrimSuffix(trimmed, peeledTagSuffix), true, true
		}
		return "", false, false
	}
	if strings.HasPrefix(name, headPrefix) {
		return strings.TrimPrefix(name, headPrefix), false, true
	}
	return "", false, false
}

// Add appends a new ref to the flat array and invalidates any memoized
// lookup list for its id (a reload may add refs in a different order,
// so the memo is dropped rather than patched). Names are owned copies
// (Go strings are already immutable, so no explicit copy is needed
// beyond the assignment).
func (idx *Index) Add(id, name string, isTag bool) {
	i := len(idx.refs)
	idx.refs = append(idx.refs, Ref{Name: name, ID: id, IsTag: isTag})
	idx.lookup[id] = append(idx.lookup[id], i)
	delete(idx.memo, id)
}

// Lookup returns the ordered (insertion order) list of refs matching
// id. The first call for a given id builds and memoizes the list,
// setting IsLast on exactly its final element (spec.md invariant,
// §3/§8 P4); later calls return the same memoized slice. A miss
// returns nil.
func (idx *Index) Lookup(id string) []*Ref {
	if cached, ok := idx.memo[id]; ok {
		return cached
	}

	indices := idx.lookup[id]
	if len(indices) == 0 {
		return nil
	}

	out := lo.Map(indices, func(refIdx int, _ int) *Ref {
		r := idx.refs[refIdx]
		return &r
	})
	out[len(out)-1].IsLast = true

	idx.memo[id] = out
	return out
}

// All returns every ref added so far, in insertion order. Used by the
// ref-enumerator's initial load diagnostics and by tests.
func (idx *Index) All() []Ref {
	return append([]Ref(nil), idx.refs...)
}

// Len reports how many refs have been added.
func (idx *Index) Len() int {
	return len(idx.refs)
}
