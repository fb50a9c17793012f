package view

import (
	"regexp"
	"testing"

	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/termtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(name string, adapter Adapter) *View {
	v := New(name, SourceHead, provider.MainTemplate, adapter, reqtype.PAGER, ".")
	v.Port.Height = 10
	return v
}

func TestPagerReadClassifiesAndAppends(t *testing.T) {
	idx := refs.New()
	a := NewPagerAdapter(idx, NewRenderConfig())
	v := newTestView("pager", a)
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "diff --git a/x b/x"))
	entry, ok := v.Buf.At(0)
	require.True(t, ok)
	assert.Equal(t, classify.DIFF_HEADER, entry.Kind)
}

func TestPagerAttachRefsWithRefs(t *testing.T) {
	idx := refs.New()
	idx.Add("abc123", "v1", true)
	idx.Add("abc123", "main", false)

	a := NewPagerAdapter(idx, NewRenderConfig())
	v := newTestView("log", a)
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "commit abc123"))
	require.Equal(t, 2, v.Buf.Len())

	refsEntry, _ := v.Buf.At(1)
	assert.Equal(t, classify.PP_REFS, refsEntry.Kind)
	assert.Equal(t, "Refs: [v1], main", refsEntry.Text)
}

func TestPagerAttachRefsNoneOutsideDiff(t *testing.T) {
	idx := refs.New()
	a := NewPagerAdapter(idx, NewRenderConfig())
	v := newTestView("log", a)
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "commit deadbeef"))
	assert.Equal(t, 1, v.Buf.Len())
}

func TestPagerDrawCursorCapturesCommitID(t *testing.T) {
	idx := refs.New()
	a := NewPagerAdapter(idx, NewRenderConfig())
	v := newTestView("diff", a)
	ctx := &Context{}
	fake := termtest.New(80, 24)
	win, _ := fake.CreateWindow("diff", 0, 0, 80, 22)

	e := mustEntry(classify.COMMIT, "commit feedface")
	a.Draw(v, ctx, win, 0, e, true)

	assert.Equal(t, "feedface", v.Ref)
	assert.Equal(t, "feedface", ctx.Commit)
}

func TestPagerEnterOpensDiffAndScrolls(t *testing.T) {
	idx := refs.New()
	a := NewPagerAdapter(idx, NewRenderConfig())
	v := newTestView("log", a)
	v.Buf.Append(mustEntry(classify.COMMIT, "commit aaaa"))
	v.Buf.Append(mustEntry(classify.COMMIT, "commit bbbb"))
	ctx := &Context{}

	req := a.Enter(v, ctx, mustEntry(classify.COMMIT, "commit aaaa"))
	assert.Equal(t, reqtype.VIEW_DIFF, req)
	assert.Equal(t, 1, v.Port.LineNo)
}

func TestPagerGrep(t *testing.T) {
	a := NewPagerAdapter(refs.New(), NewRenderConfig())
	re := regexp.MustCompile("foo")
	assert.True(t, a.Grep(mustEntry(classify.DEFAULT, "has foo in it"), re))
	assert.False(t, a.Grep(mustEntry(classify.DEFAULT, "nothing"), re))
}
