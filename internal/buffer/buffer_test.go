package buffer

import (
	"testing"

	"github.com/optionalg/tig/internal/classify"
)

func TestAppendAndAt(t *testing.T) {
	b := New()
	b.Append(Entry{Kind: classify.DEFAULT, Text: "a"})
	b.Append(Entry{Kind: classify.DEFAULT, Text: "b"})

	e, ok := b.At(1)
	if !ok || e.Text != "b" {
		t.Fatalf("At(1) = %+v, %v", e, ok)
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestInsertAt(t *testing.T) {
	b := New()
	b.Append(Entry{Text: "a"})
	b.Append(Entry{Text: "c"})
	b.InsertAt(1, Entry{Text: "b"})

	want := []string{"a", "b", "c"}
	b.Each(func(i int, e Entry) bool {
		if e.Text != want[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Text, want[i])
		}
		return true
	})
}

func TestInsertAtEndEquivalentToAppend(t *testing.T) {
	b := New()
	b.Append(Entry{Text: "a"})
	b.InsertAt(b.Len(), Entry{Text: "b"})
	if b.Len() != 2 {
		t.Fatalf("Len() = %d", b.Len())
	}
}

func TestMutateAt(t *testing.T) {
	b := New()
	b.Append(Entry{Commit: &Commit{ID: "x"}})
	ok := b.MutateAt(0, func(e *Entry) { e.Commit.Title = "hi" })
	if !ok {
		t.Fatalf("MutateAt returned false")
	}
	e, _ := b.At(0)
	if e.Commit.Title != "hi" {
		t.Fatalf("mutation did not apply")
	}
}

func TestResetFreesAll(t *testing.T) {
	b := New()
	b.Append(Entry{Text: "a"})
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("Len() after Reset = %d", b.Len())
	}
}

func TestDigits(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0}, {1, 1}, {9, 1}, {10, 2}, {99, 2}, {100, 3},
	}
	for _, c := range cases {
		b := New()
		for i := 0; i < c.n; i++ {
			b.Append(Entry{})
		}
		if got := b.Digits(); got != c.want {
			t.Errorf("Digits() for n=%d = %d, want %d", c.n, got, c.want)
		}
	}
}
