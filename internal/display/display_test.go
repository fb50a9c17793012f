package display

import (
	"testing"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/termtest"
	"github.com/optionalg/tig/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDisplay(w, h int) (*Display, *termtest.Fake) {
	cfg := view.NewRenderConfig()
	fake := termtest.New(w, h)
	return New(fake, cfg), fake
}

func newPagerViewWithLines(cfg *view.RenderConfig, lines []string) *view.View {
	a := view.NewPagerAdapter(refs.New(), cfg)
	v := view.New("pager", view.SourceHead, provider.MainTemplate, a, reqtype.PAGER, ".")
	for _, l := range lines {
		v.Buf.Append(buffer.Entry{Kind: classify.DEFAULT, Text: l})
	}
	return v
}

func TestLayoutSingleAssignsWindows(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"a", "b", "c"})
	d.Open(v)

	require.NoError(t, d.Layout())
	assert.NotNil(t, v.Win)
	assert.NotNil(t, v.TitleWin)
	assert.Equal(t, 22, v.Port.Height) // h=24: body=h-1=23 (status line reserved), height=body-1 (title row)
}

func TestOpenSplitAndClose(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	main := newPagerViewWithLines(d.Cfg, []string{"a", "b"})
	main.Port.LineNo = 1
	d.Open(main)
	require.NoError(t, d.Layout())

	diff := newPagerViewWithLines(d.Cfg, []string{"commit x"})
	d.OpenSplit(diff)
	require.NoError(t, d.Layout())

	assert.Equal(t, diff, d.CurrentView())
	assert.Equal(t, main, diff.Parent)

	closed := d.Close()
	assert.True(t, closed)
	assert.Equal(t, main, d.CurrentView())
	assert.Equal(t, 1, main.Port.LineNo) // L1: cursor unchanged
	assert.True(t, diff.Closed)
}

func TestCloseOnRootActsLikeQuit(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	main := newPagerViewWithLines(d.Cfg, []string{"a"})
	d.Open(main)

	closed := d.Close()
	assert.False(t, closed)
}

func TestMoveViewScrollsWhenCursorLeavesViewport(t *testing.T) {
	d, _ := newTestDisplay(80, 10)
	lines := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		lines = append(lines, "line")
	}
	v := newPagerViewWithLines(d.Cfg, lines)
	d.Open(v)
	require.NoError(t, d.Layout())

	d.MoveView(v, &view.Context{}, v.Port.Height+5)

	assert.True(t, v.Port.LineNo >= v.Port.Offset)
	assert.True(t, v.Port.LineNo < v.Port.Offset+v.Port.Height)
}

func TestSearchFindsMatchAndRecenters(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"alpha", "beta", "needle here", "gamma"})
	d.Open(v)
	require.NoError(t, d.Layout())

	msg, found := d.Search(v, &view.Context{}, "needle", true)
	assert.True(t, found)
	assert.Contains(t, msg, "Line 3 matches")
	assert.Equal(t, 2, v.Port.LineNo)
}

func TestSearchNoMatch(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"alpha", "beta"})
	d.Open(v)
	require.NoError(t, d.Layout())

	_, found := d.Search(v, &view.Context{}, "zzz", true)
	assert.False(t, found)
}

func TestSearchBadPatternReportsError(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"alpha"})
	d.Open(v)
	require.NoError(t, d.Layout())

	_, found := d.Search(v, &view.Context{}, "(unterminated", true)
	assert.False(t, found)
}

func TestRedrawTruncatesLongTitleToWindowWidth(t *testing.T) {
	d, fake := newTestDisplay(20, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"a", "b", "c"})
	v.Ref = "refs/heads/a-very-long-branch-name-that-will-not-fit"
	d.Open(v)
	require.NoError(t, d.Layout())

	d.Redraw(v, &view.Context{})

	title := fake.Window("pager-title").Row(0)
	assert.LessOrEqual(t, len(title), 20)
}

func TestFindNextWithoutPriorSearch(t *testing.T) {
	d, _ := newTestDisplay(80, 24)
	v := newPagerViewWithLines(d.Cfg, []string{"alpha"})
	d.Open(v)

	msg, found := d.FindNext(v, &view.Context{}, true)
	assert.False(t, found)
	assert.Equal(t, "No previous search pattern", msg)
}
