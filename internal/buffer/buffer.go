// Package buffer implements the line buffer and line entry types of
// spec.md §3/§4.4: an ordered, growable sequence of (kind, payload)
// entries owned by a view, supporting append, insert-at, and bulk
// free. Grounded on the generic container shape of
// pkg/gui/list_panel.go's ListPanel[T], adapted per spec.md §9's
// "tagged variants for line payload" redesign note: payload is a sum
// of a text line or a Commit record rather than an untyped pointer
// reconciled by kind.
package buffer

import (
	"time"

	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/refs"
)

// Commit is a parsed pretty=raw record (spec.md §3). GraphSize bounds
// Graph at 19 glyphs, mirroring the original's fixed-capacity
// ancestry array.
type Commit struct {
	ID     string
	Title  string
	Author string
	Time   time.Time

	Refs []*refs.Ref

	Graph     [19]rune
	GraphSize uint8
}

// Entry is a single line-buffer record. Exactly one of Text or Commit
// is meaningful for a given Kind: pager/tree/blob entries carry Text,
// main-view entries carry Commit (spec.md §3's "Line entry").
type Entry struct {
	Kind   classify.LineKind
	Text   string
	Commit *Commit
}

// Buffer is the ordered, append-mostly sequence of line entries
// backing a View (spec.md glossary). It owns its entries and releases
// them as a batch on Reset.
type Buffer struct {
	entries []Entry
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// Len reports the number of entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Append adds an entry at the end and returns its index.
func (b *Buffer) Append(e Entry) int {
	b.entries = append(b.entries, e)
	return len(b.entries) - 1
}

// InsertAt inserts an entry immediately before index i, shifting
// subsequent entries up by one. i == Len() is equivalent to Append.
func (b *Buffer) InsertAt(i int, e Entry) {
	if i >= len(b.entries) {
		b.Append(e)
		return
	}
	b.entries = append(b.entries, Entry{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = e
}

// At returns the entry at index i and whether i was in range.
func (b *Buffer) At(i int) (Entry, bool) {
	if i < 0 || i >= len(b.entries) {
		return Entry{}, false
	}
	return b.entries[i], true
}

// MutateAt applies fn to the entry at index i in place, if i is in
// range. Used by the main adapter to fill in a Commit's Author/Title
// as subsequent lines of the same pretty=raw record arrive (spec.md
// §4.4/§3's Commit lifecycle: "mutated by subsequent lines for the
// same record").
func (b *Buffer) MutateAt(i int, fn func(*Entry)) bool {
	if i < 0 || i >= len(b.entries) {
		return false
	}
	fn(&b.entries[i])
	return true
}

// Reset frees every entry as a single unit (spec.md §4.4 "bulk
// free"), ready for the next load.
func (b *Buffer) Reset() {
	b.entries = nil
}

// Each calls fn for every entry in order. fn returning false stops
// iteration early.
func (b *Buffer) Each(fn func(i int, e Entry) bool) {
	for i, e := range b.entries {
		if !fn(i, e) {
			return
		}
	}
}

// Digits returns ceil(log10(Len()+1)), the decimal-digit width of the
// buffer's length used by the line-number gutter (spec.md §3 View's
// `digits` field). An empty buffer reports 0 digits.
func (b *Buffer) Digits() int {
	n := len(b.entries)
	d := 0
	for n > 0 {
		n /= 10
		d++
	}
	return d
}
