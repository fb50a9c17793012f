package prompt

import (
	"testing"

	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/termtest"
	"github.com/optionalg/tig/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSetup(w, h int) (*display.Display, *termtest.Fake) {
	cfg := view.NewRenderConfig()
	fake := termtest.New(w, h)
	d := display.New(fake, cfg)
	return d, fake
}

func newPagerView(name string, cfg *view.RenderConfig) *view.View {
	a := view.NewPagerAdapter(refs.New(), cfg)
	return view.New(name, view.SourceHead, provider.MainTemplate, a, reqtype.PAGER, ".")
}

func TestReadAccumulatesPrintableKeysAndAcceptsOnEnter(t *testing.T) {
	d, fake := newTestSetup(80, 24)
	v := newPagerView("main", d.Cfg)
	d.Open(v)
	require.NoError(t, d.Layout())

	for _, r := range "log" {
		fake.PushKey(term.Key{Rune: r})
	}
	fake.PushKey(term.Key{Special: "Enter"})

	input, ok := Read(d, &view.Context{}, &view.LoadingTracker{}, nil, ":")
	assert.True(t, ok)
	assert.Equal(t, "log", input)
}

func TestReadCancelsOnEscape(t *testing.T) {
	d, fake := newTestSetup(80, 24)
	v := newPagerView("main", d.Cfg)
	d.Open(v)
	require.NoError(t, d.Layout())

	fake.PushKey(term.Key{Rune: 'x'})
	fake.PushKey(term.Key{Special: "Escape"})

	input, ok := Read(d, &view.Context{}, &view.LoadingTracker{}, nil, ":")
	assert.False(t, ok)
	assert.Equal(t, "", input)
}

func TestReadCancelsOnEmptyBufferBackspace(t *testing.T) {
	d, fake := newTestSetup(80, 24)
	v := newPagerView("main", d.Cfg)
	d.Open(v)
	require.NoError(t, d.Layout())

	fake.PushKey(term.Key{Special: "Backspace"})

	_, ok := Read(d, &view.Context{}, &view.LoadingTracker{}, nil, ":")
	assert.False(t, ok)
}

func TestReadBackspacePopsLastRune(t *testing.T) {
	d, fake := newTestSetup(80, 24)
	v := newPagerView("main", d.Cfg)
	d.Open(v)
	require.NoError(t, d.Layout())

	fake.PushKey(term.Key{Rune: 'a'})
	fake.PushKey(term.Key{Rune: 'b'})
	fake.PushKey(term.Key{Special: "Backspace"})
	fake.PushKey(term.Key{Rune: 'c'})
	fake.PushKey(term.Key{Special: "Enter"})

	input, ok := Read(d, &view.Context{}, &view.LoadingTracker{}, nil, ":")
	assert.True(t, ok)
	assert.Equal(t, "ac", input)
}

func TestReadPaintsStatusLine(t *testing.T) {
	d, fake := newTestSetup(80, 24)
	v := newPagerView("main", d.Cfg)
	d.Open(v)
	require.NoError(t, d.Layout())

	fake.PushKey(term.Key{Rune: 'l'})
	fake.PushKey(term.Key{Special: "Enter"})

	_, _ = Read(d, &view.Context{}, &view.LoadingTracker{}, nil, ":")
	assert.Equal(t, ":l", fake.Window("status").Row(0))
}

func TestCommandPrefixesWithGitAndDefaultsToPager(t *testing.T) {
	gitCmd, targetIsDiff := Command("log --all")
	assert.Equal(t, "git log --all", gitCmd)
	assert.False(t, targetIsDiff)
}

func TestCommandTargetsDiffForShow(t *testing.T) {
	gitCmd, targetIsDiff := Command("show abc123")
	assert.Equal(t, "git show abc123", gitCmd)
	assert.True(t, targetIsDiff)
}

func TestCommandDoesNotMistargetShowPrefixedWord(t *testing.T) {
	// "showoff" begins with "show" but not "show " - must not redirect.
	_, targetIsDiff := Command("showoff")
	assert.False(t, targetIsDiff)
}
