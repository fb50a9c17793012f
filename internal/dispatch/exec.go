package dispatch

import (
	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/view"
)

// hscrollStep is the column count one SCROLL_LEFT/SCROLL_RIGHT
// arrow-key press moves a view's left_offset by (SPEC_FULL.md §5).
const hscrollStep = 4

// RedirectTarget implements spec.md §4.7's NEXT/PREVIOUS special
// rule: a diff view whose parent is main, or a blob view whose parent
// is tree, redirects the move to the parent view so the child follows
// the parent's selection; every other view moves itself.
func RedirectTarget(v *view.View) *view.View {
	if v == nil || v.Parent == nil {
		return v
	}
	switch {
	case v.Name == "diff" && v.Parent.Name == "main":
		return v.Parent
	case v.Name == "blob" && v.Parent.Name == "tree":
		return v.Parent
	default:
		return v
	}
}

// ApplyNavigation executes the subset of Requests that are pure
// cursor/view navigation, the option toggles, and SCREEN_REDRAW. The
// rest (VIEW_*, ENTER, QUIT, PROMPT, SEARCH*, FIND_*, STOP_LOADING,
// SHOW_VERSION, SCREEN_RESIZE) is left to internal/engine, since
// those need collaborators dispatch doesn't have — the prompt reader,
// the content providers, a view's own Enter, the named-view registry.
// It reports whether req was handled here.
func ApplyNavigation(d *display.Display, ctx *view.Context, req reqtype.Request) bool {
	cur := d.CurrentView()
	if cur == nil {
		return false
	}

	switch req {
	case reqtype.MOVE_UP:
		d.MoveView(cur, ctx, -1)
	case reqtype.MOVE_DOWN:
		d.MoveView(cur, ctx, 1)
	case reqtype.MOVE_PAGE_UP:
		d.MoveView(cur, ctx, -cur.Port.Height)
	case reqtype.MOVE_PAGE_DOWN:
		d.MoveView(cur, ctx, cur.Port.Height)
	case reqtype.MOVE_HALF_PAGE_UP:
		d.MoveView(cur, ctx, -cur.Port.Height/2)
	case reqtype.MOVE_HALF_PAGE_DOWN:
		d.MoveView(cur, ctx, cur.Port.Height/2)
	case reqtype.MOVE_FIRST_LINE:
		d.MoveView(cur, ctx, -cur.Buf.Len())
	case reqtype.MOVE_LAST_LINE:
		d.MoveView(cur, ctx, cur.Buf.Len())

	case reqtype.NEXT:
		target := RedirectTarget(cur)
		d.MoveView(target, ctx, 1)
	case reqtype.PREVIOUS:
		target := RedirectTarget(cur)
		d.MoveView(target, ctx, -1)

	case reqtype.VIEW_NEXT:
		if d.Views[1] != nil {
			if d.Current == 0 {
				d.Current = 1
			} else {
				d.Current = 0
			}
		}

	case reqtype.VIEW_CLOSE:
		if !d.Close() {
			return false // caller treats an unhandled VIEW_CLOSE as QUIT
		}
		d.RedrawAll(ctx)

	case reqtype.TOGGLE_LINENO:
		d.Cfg.ShowLineNumber = !d.Cfg.ShowLineNumber
		d.RedrawAll(ctx)
	case reqtype.TOGGLE_REV_GRAPH:
		d.Cfg.ShowRevGraph = !d.Cfg.ShowRevGraph
		d.RedrawAll(ctx)

	case reqtype.SCROLL_LEFT:
		cur.HScroll(-hscrollStep)
		d.Redraw(cur, ctx)
	case reqtype.SCROLL_RIGHT:
		cur.HScroll(hscrollStep)
		d.Redraw(cur, ctx)

	case reqtype.SCREEN_REDRAW:
		d.RedrawAll(ctx)

	default:
		return false
	}
	return true
}
