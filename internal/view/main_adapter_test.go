package view

import (
	"regexp"
	"testing"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainAdapterParsesCommitRecord(t *testing.T) {
	idx := refs.New()
	a := NewMainAdapter(idx, NewRenderConfig())
	v := newTestView("main", a)
	ctx := &Context{}

	lines := []string{
		"commit " + "0123456789abcdef0123456789abcdef01234567",
		"tree abc",
		"parent def",
		"author Jane Doe <jane@example.com> 1700000000 +0200",
		"committer Jane Doe <jane@example.com> 1700000000 +0200",
		"",
		"    Fix the thing",
	}
	for _, l := range lines {
		require.NoError(t, a.Read(v, ctx, l))
	}

	require.Equal(t, 1, v.Buf.Len())
	entry, _ := v.Buf.At(0)
	require.NotNil(t, entry.Commit)
	assert.Equal(t, "0123456789abcdef0123456789abcdef01234567", entry.Commit.ID)
	assert.Equal(t, "Jane Doe", entry.Commit.Author)
	assert.Equal(t, "Fix the thing", entry.Commit.Title)
	assert.False(t, entry.Commit.Time.IsZero())
}

func TestMainAdapterTitleNeverOverwritten(t *testing.T) {
	idx := refs.New()
	a := NewMainAdapter(idx, NewRenderConfig())
	v := newTestView("main", a)
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "commit aaaa"))
	require.NoError(t, a.Read(v, ctx, "    first title"))
	require.NoError(t, a.Read(v, ctx, "    second line, ignored"))

	entry, _ := v.Buf.At(0)
	assert.Equal(t, "first title", entry.Commit.Title)
}

func TestMainAdapterBadTimezoneLeavesZeroTime(t *testing.T) {
	idx := refs.New()
	a := NewMainAdapter(idx, NewRenderConfig())
	v := newTestView("main", a)
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "commit aaaa"))
	require.NoError(t, a.Read(v, ctx, "author Jane Doe <jane@example.com> 1700000000 CEST"))

	entry, _ := v.Buf.At(0)
	assert.True(t, entry.Commit.Time.IsZero())
}

func TestMainAdapterEnterOpensDiff(t *testing.T) {
	a := NewMainAdapter(refs.New(), NewRenderConfig())
	v := newTestView("main", a)
	ctx := &Context{}
	req := a.Enter(v, ctx, buildCommitEntry("aaaa"))
	assert.Equal(t, reqtype.VIEW_DIFF, req)
}

func TestMainAdapterGrepOrder(t *testing.T) {
	a := NewMainAdapter(refs.New(), NewRenderConfig())
	entry := buildCommitEntry("aaaa")
	entry.Commit.Title = "fix bug"
	entry.Commit.Author = "Someone"

	re := mustRegexp(t, "fix")
	assert.True(t, a.Grep(entry, re))

	re2 := mustRegexp(t, "Someone")
	assert.True(t, a.Grep(entry, re2))

	re3 := mustRegexp(t, "nomatch")
	assert.False(t, a.Grep(entry, re3))
}

func buildCommitEntry(id string) buffer.Entry {
	return buffer.Entry{Kind: classify.COMMIT, Commit: &buffer.Commit{ID: id}}
}

func mustRegexp(t *testing.T, pat string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pat)
	require.NoError(t, err)
	return re
}
