// Package display implements spec.md §4.6: the two-slot layout (full
// screen or ⌊2/3⌋ vertical split), title bar rendering, cursor
// movement/scrolling, and regex search. Grounded on
// pkg/gui/layout.go's panel-sizing pass and pkg/gui/view_helpers.go's
// focusPoint (the teacher's equivalent of move_view/do_scroll_view),
// generalized from lazydocker's fixed five-panel sidebar arrangement
// to the spec's two-slot primary/secondary view stack. Title text is
// truncated to the title window's visual width with
// github.com/mattn/go-runewidth, the same CJK/fullwidth-aware library
// internal/textwidth's doc comment names as covering "generic string
// width needs elsewhere" — this is that elsewhere.
package display

import (
	"fmt"
	"regexp"

	"github.com/mattn/go-runewidth"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/i18n"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/view"
)

// Display holds up to two active views: Views[0] is always the
// primary (full-screen or top split), Views[1] is the optional
// secondary (spec.md §3's "fixed two-slot array [primary,
// secondary?]").
type Display struct {
	Views   [2]*view.View
	Current int // index into Views of the view with keyboard focus

	Term      term.Terminal
	StatusWin term.Window
	Cfg       *view.RenderConfig

	// Tr supplies the search/status prose findNext/FindNext surface,
	// instead of scattering the same English literals across this file
	// (spec.md §7/§8's status-line messages).
	Tr *i18n.TranslationSet
}

// New returns an empty display bound to term.
func New(t term.Terminal, cfg *view.RenderConfig) *Display {
	return &Display{Term: t, Cfg: cfg, Tr: i18n.NewTranslationSet()}
}

// CurrentView returns the view with keyboard focus, or nil if none is
// open.
func (d *Display) CurrentView() *view.View {
	return d.Views[d.Current]
}

// Open makes v the primary view, discarding any prior split (used for
// VIEW_MAIN/VIEW_LOG/VIEW_TREE/VIEW_PAGER/VIEW_HELP — the
// root-opening requests of spec.md §4.7).
func (d *Display) Open(v *view.View) {
	d.Views[0] = v
	d.Views[1] = nil
	d.Current = 0
	v.Parent = nil
}

// OpenSplit makes v the secondary view, below the current primary
// (VIEW_DIFF/VIEW_BLOB opened from main/tree, spec.md §4.4's "open ...
// split"). v's parent becomes the current primary so NEXT/PREVIOUS's
// parent-redirection rule (spec.md §4.7) and VIEW_CLOSE (spec.md §4.6
// L1) can find their way back.
func (d *Display) OpenSplit(v *view.View) {
	v.Parent = d.Views[0]
	d.Views[1] = v
	d.Current = 1
}

// Close implements VIEW_CLOSE (spec.md §4.7): restores the parent
// view to full screen, unless the current view has no parent, in
// which case the caller should treat this as QUIT. Returns true if a
// parent was restored.
func (d *Display) Close() bool {
	cur := d.CurrentView()
	if cur == nil || cur.Parent == nil {
		return false
	}
	parent := cur.Parent
	cur.Closed = true
	d.Views[0] = parent
	d.Views[1] = nil
	d.Current = 0
	return true
}

// Layout assigns window rectangles to the active views per spec.md
// §4.6: full screen gives the primary (height-2) rows (one for title,
// one for status); split gives the secondary ⌊2·body/3⌋ rows (minus
// its title) and the remainder to the primary.
func (d *Display) Layout() error {
	w, h := d.Term.Size()
	body := h - 1 // reserve the status line

	statusWin, err := d.Term.CreateWindow("status", 0, h-1, w, h)
	if err != nil {
		return err
	}
	d.StatusWin = statusWin

	if d.Views[1] == nil {
		return d.layoutSingle(d.Views[0], w, body)
	}
	return d.layoutSplit(d.Views[0], d.Views[1], w, body)
}

func (d *Display) layoutSingle(v *view.View, w, body int) error {
	if v == nil {
		return nil
	}
	titleWin, err := d.Term.CreateWindow(v.Name+"-title", 0, 0, w, 1)
	if err != nil {
		return err
	}
	contentWin, err := d.Term.CreateWindow(v.Name, 0, 1, w, body)
	if err != nil {
		return err
	}
	v.TitleWin, v.Win = titleWin, contentWin
	v.Port.Height = body - 1
	v.Port.Width = w
	v.Clamp()
	return nil
}

func (d *Display) layoutSplit(primary, secondary *view.View, w, body int) error {
	secondaryRows := (2 * body) / 3
	primaryRows := body - secondaryRows

	primaryTitle, err := d.Term.CreateWindow(primary.Name+"-title", 0, 0, w, 1)
	if err != nil {
		return err
	}
	primaryWin, err := d.Term.CreateWindow(primary.Name, 0, 1, w, primaryRows)
	if err != nil {
		return err
	}
	primary.TitleWin, primary.Win = primaryTitle, primaryWin
	primary.Port.Height = primaryRows - 1
	primary.Port.Width = w
	primary.Clamp()

	secondaryTitle, err := d.Term.CreateWindow(secondary.Name+"-title", 0, primaryRows, w, primaryRows+1)
	if err != nil {
		return err
	}
	secondaryWin, err := d.Term.CreateWindow(secondary.Name, 0, primaryRows+1, w, body)
	if err != nil {
		return err
	}
	secondary.TitleWin, secondary.Win = secondaryTitle, secondaryWin
	secondary.Port.Height = body - primaryRows - 1
	secondary.Port.Width = w
	secondary.Clamp()

	return nil
}

// TitleText renders a view's title bar: "[name] ref", content type,
// position, and elapsed load seconds (spec.md §4.6).
func TitleText(v *view.View) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprintf("[%s] %s", v.Name, v.Ref)
	if n := v.Buf.Len(); n > 0 {
		percent := (v.Port.Offset + v.Port.Height) * 100 / n
		if percent > 100 {
			percent = 100
		}
		s += fmt.Sprintf(" - %d of %d (%d%%)", v.Port.LineNo+1, n, percent)
	}
	if v.Loading {
		if secs := int(v.ElapsedLoad().Seconds()); secs >= 2 {
			s += fmt.Sprintf(" %ds", secs)
		}
	}
	return s
}

// Redraw repaints every row of v's content window from its buffer,
// honoring the current viewport (spec.md §4.6 redraw discipline:
// since internal/term's Window interface has no partial scroll-region
// primitive, every scroll or content change here is a full redraw of
// the visible rows rather than a true terminal scroll).
func (d *Display) Redraw(v *view.View, ctx *view.Context) {
	if v == nil || v.Win == nil {
		return
	}
	v.Win.Clear()
	for row := 0; row < v.Port.Height; row++ {
		idx := v.Port.Offset + row
		entry, ok := v.Buf.At(idx)
		if !ok {
			break
		}
		v.Adapter.Draw(v, ctx, v.Win, row, entry, idx == v.Port.LineNo)
	}
	if v.TitleWin != nil {
		v.TitleWin.Clear()
		kind := classify.TITLE_BLUR
		if v == d.CurrentView() {
			kind = classify.TITLE_FOCUS
		}
		titleW, _ := v.TitleWin.Size()
		text := TitleText(v)
		if titleW > 0 && runewidth.StringWidth(text) > titleW {
			text = runewidth.Truncate(text, titleW, "")
		}
		v.TitleWin.WriteAt(0, 0, text, d.Cfg.Theme.Attr(kind))
	}
}

// RedrawAll repaints both active views (used after a resize or a
// toggle that affects every row, spec.md §4.5's "schedule a full
// redraw").
func (d *Display) RedrawAll(ctx *view.Context) {
	d.Redraw(d.Views[0], ctx)
	d.Redraw(d.Views[1], ctx)
}

// MoveView clamps the cursor by steps within the buffer and scrolls
// the viewport to keep it visible (spec.md §4.6 move_view).
func (d *Display) MoveView(v *view.View, ctx *view.Context, steps int) {
	if v == nil {
		return
	}
	v.MoveCursor(steps)
	scrollToCursor(v)
	d.Redraw(v, ctx)
}

// scrollToCursor implements do_scroll_view's offset adjustment: keep
// lineno within [offset, offset+height).
func scrollToCursor(v *view.View) {
	if v.Port.LineNo < v.Port.Offset {
		v.Port.Offset = v.Port.LineNo
	}
	if v.Port.Height > 0 && v.Port.LineNo >= v.Port.Offset+v.Port.Height {
		v.Port.Offset = v.Port.LineNo - v.Port.Height + 1
	}
	if v.Port.Offset < 0 {
		v.Port.Offset = 0
	}
}

// Search implements spec.md §4.6's search: compile a POSIX extended
// regex, store it on the view, then scan from lineno itself (the
// current row is included) in direction for a hit via the adapter's
// Grep, recentering on the first match.
// forward=false is SEARCH_BACK ('?'); forward=true is SEARCH ('/').
func (d *Display) Search(v *view.View, ctx *view.Context, pattern string, forward bool) (string, bool) {
	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		return err.Error(), false
	}
	v.Search.Pattern = pattern
	v.Search.Regex = re
	return d.findNext(v, ctx, forward, true)
}

// FindNext repeats the last search pattern in the given direction
// ('n'/'N' — spec.md §8 L2), starting after the current row. The
// original search direction is not stored: the engine passes
// forward=true for 'n' and forward=false for 'N'.
func (d *Display) FindNext(v *view.View, ctx *view.Context, forward bool) (string, bool) {
	if v.Search.Regex == nil {
		return d.Tr.NoPreviousSearch, false
	}
	return d.findNext(v, ctx, forward, false)
}

func (d *Display) findNext(v *view.View, ctx *view.Context, forward, includeCurrent bool) (string, bool) {
	n := v.Buf.Len()
	if n == 0 {
		return d.Tr.NoMatchFound, false
	}

	start := v.Port.LineNo
	if !includeCurrent {
		if forward {
			start++
		} else {
			start--
		}
	}

	for i := 0; i < n; i++ {
		var idx int
		if forward {
			idx = start + i
		} else {
			idx = start - i
		}
		if idx < 0 || idx >= n {
			break
		}
		entry, ok := v.Buf.At(idx)
		if !ok {
			break
		}
		if v.Adapter.Grep(entry, v.Search.Regex) {
			v.Port.LineNo = idx
			scrollToCursor(v)
			d.Redraw(v, ctx)
			return fmt.Sprintf(d.Tr.LineMatchesFmt, idx+1, v.Search.Pattern), true
		}
	}
	return fmt.Sprintf(d.Tr.NoMatchFoundForFmt, v.Search.Pattern), false
}
