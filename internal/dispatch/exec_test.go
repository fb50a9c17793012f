package dispatch

import (
	"testing"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/termtest"
	"github.com/optionalg/tig/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildView(name string, n int) *view.View {
	a := view.NewPagerAdapter(refs.New(), view.NewRenderConfig())
	v := view.New(name, view.SourceHead, provider.MainTemplate, a, reqtype.PAGER, ".")
	for i := 0; i < n; i++ {
		v.Buf.Append(buffer.Entry{Kind: classify.DEFAULT, Text: "line"})
	}
	return v
}

func TestRedirectTargetDiffUnderMain(t *testing.T) {
	main := buildView("main", 3)
	diff := buildView("diff", 3)
	diff.Parent = main
	assert.Equal(t, main, RedirectTarget(diff))
}

func TestRedirectTargetNoParentIsSelf(t *testing.T) {
	main := buildView("main", 3)
	assert.Equal(t, main, RedirectTarget(main))
}

func TestApplyNavigationMoveDown(t *testing.T) {
	fake := termtest.New(80, 24)
	d := display.New(fake, view.NewRenderConfig())
	v := buildView("pager", 5)
	d.Open(v)
	require.NoError(t, d.Layout())

	handled := ApplyNavigation(d, &view.Context{}, reqtype.MOVE_DOWN)
	assert.True(t, handled)
	assert.Equal(t, 1, v.Port.LineNo)
}

func TestApplyNavigationViewCloseRestoresParent(t *testing.T) {
	fake := termtest.New(80, 24)
	d := display.New(fake, view.NewRenderConfig())
	main := buildView("main", 3)
	d.Open(main)
	require.NoError(t, d.Layout())
	diff := buildView("diff", 3)
	d.OpenSplit(diff)
	require.NoError(t, d.Layout())

	handled := ApplyNavigation(d, &view.Context{}, reqtype.VIEW_CLOSE)
	assert.True(t, handled)
	assert.Equal(t, main, d.CurrentView())
}

func TestApplyNavigationViewCloseOnRootUnhandled(t *testing.T) {
	fake := termtest.New(80, 24)
	d := display.New(fake, view.NewRenderConfig())
	main := buildView("main", 3)
	d.Open(main)
	require.NoError(t, d.Layout())

	handled := ApplyNavigation(d, &view.Context{}, reqtype.VIEW_CLOSE)
	assert.False(t, handled) // caller must treat this as QUIT
}

func TestApplyNavigationToggleLineNumber(t *testing.T) {
	fake := termtest.New(80, 24)
	cfg := view.NewRenderConfig()
	d := display.New(fake, cfg)
	v := buildView("pager", 3)
	d.Open(v)
	require.NoError(t, d.Layout())

	ApplyNavigation(d, &view.Context{}, reqtype.TOGGLE_LINENO)
	assert.True(t, cfg.ShowLineNumber)
	ApplyNavigation(d, &view.Context{}, reqtype.TOGGLE_LINENO)
	assert.False(t, cfg.ShowLineNumber) // L3: toggling twice is the identity
}

func TestApplyNavigationScrollRightThenLeft(t *testing.T) {
	fake := termtest.New(80, 24)
	d := display.New(fake, view.NewRenderConfig())
	v := buildView("pager", 3)
	d.Open(v)
	require.NoError(t, d.Layout())

	handled := ApplyNavigation(d, &view.Context{}, reqtype.SCROLL_RIGHT)
	assert.True(t, handled)
	assert.Equal(t, hscrollStep, v.Port.HOffset)

	ApplyNavigation(d, &view.Context{}, reqtype.SCROLL_LEFT)
	assert.Equal(t, 0, v.Port.HOffset)
}

func TestApplyNavigationScrollLeftClampsAtZero(t *testing.T) {
	fake := termtest.New(80, 24)
	d := display.New(fake, view.NewRenderConfig())
	v := buildView("pager", 3)
	d.Open(v)
	require.NoError(t, d.Layout())

	ApplyNavigation(d, &view.Context{}, reqtype.SCROLL_LEFT)
	assert.Equal(t, 0, v.Port.HOffset)
}
