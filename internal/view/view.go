package view

import (
	"bufio"
	"regexp"
	"time"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
)

// Viewport is the window onto a View's buffer (spec.md §3/glossary).
type Viewport struct {
	Offset int
	LineNo int
	Height int
	Width  int

	// HOffset is the horizontal scroll position (SPEC_FULL.md §5's
	// left_offset column counter), independent of Offset/LineNo's
	// vertical scrolling.
	HOffset int
}

// SearchState holds the last compiled search pattern for a view
// (spec.md §3 View's `search` field).
type SearchState struct {
	Pattern string
	Regex   *regexp.Regexp
}

// Adapter is the per-view-kind content handler of spec.md §4.4: each
// of the four operations mutates or queries the owning view's buffer.
// read/draw/enter/grep in spec.md's prose map to Read/Draw/Enter/Grep
// here; Go doesn't need the success/failure booleans spec.md mentions
// since an adapter reports failure via error from Read and a NONE
// Request from Enter.
type Adapter interface {
	// Read appends (or, for the main adapter, mutates) buffer entries
	// for one streamed line.
	Read(v *View, ctx *Context, line string) error
	// Draw renders entry at row within win. isCursor marks the
	// current-line row, which adapters render with CURSOR attributes
	// and use to publish the cross-view Context slots (spec.md §4.4).
	Draw(v *View, ctx *Context, win term.Window, row int, entry buffer.Entry, isCursor bool)
	// Enter handles pressing Enter/click on entry, returning the
	// request it produces (often VIEW_DIFF/VIEW_BLOB to open a split,
	// or NONE).
	Enter(v *View, ctx *Context, entry buffer.Entry) reqtype.Request
	// Grep reports whether entry matches re, in the field order
	// spec.md §4.4 specifies per adapter.
	Grep(entry buffer.Entry, re *regexp.Regexp) bool
}

// View is the reactive container of spec.md §3: a subprocess handle,
// growing buffer, viewport/cursor, search state, parent link, and
// id/ref binding.
type View struct {
	Name            string
	IDSource        IDSource
	Template        provider.Template
	CommandOverride string // TIG_<VIEW>_CMD or forwarded CLI args; a full shell command line
	Adapter         Adapter
	Keymap          reqtype.Keymap

	Buf *buffer.Buffer

	Port   Viewport
	Search SearchState

	// Parent is nil for a root view. Closed replaces the original's
	// self-referential "parent = self" marker (spec.md §9 redesign
	// note).
	Parent *View
	Closed bool

	// Ref is the id last published by this view's own cursor-row draw
	// (spec.md §4.4's "capture ... into view.ref").
	Ref string
	// Path is opt_path, meaningful only for the tree view.
	Path string
	// Vid is the id this view's current content was loaded against;
	// it matches id_source's resolved value iff a reload is not
	// required (spec.md §3 invariant).
	Vid string

	proc      *provider.Process
	bufReader *bufio.Reader
	startTime time.Time
	Loading   bool

	Win      term.Window
	TitleWin term.Window

	// WorkDir is the repository directory content-provider
	// subprocesses run in.
	WorkDir string
}

// New constructs a view once per kind at process start (spec.md §3
// View lifecycle); windows are attached later by the display package
// on first layout.
func New(name string, source IDSource, tmpl provider.Template, adapter Adapter, keymap reqtype.Keymap, workDir string) *View {
	return &View{
		Name:     name,
		IDSource: source,
		Template: tmpl,
		Adapter:  adapter,
		Keymap:   keymap,
		Buf:      buffer.New(),
		WorkDir:  workDir,
	}
}

// NeedsReload reports whether the view's bound id has changed since
// its last load (spec.md §3 invariant: `vid == id_source` iff current
// content matches the current binding).
func (v *View) NeedsReload(ctx *Context) bool {
	return v.Vid != ctx.Resolve(v.IDSource)
}

// Clamp enforces spec.md §8 P1's 0 <= offset <= lineno < buffer.len
// whenever buffer.len > 0; if the buffer is empty both offset and
// lineno collapse to 0. It does not enforce lineno < offset+height;
// internal/display's scrollToCursor does that.
func (v *View) Clamp() {
	n := v.Buf.Len()
	if n == 0 {
		v.Port.Offset, v.Port.LineNo = 0, 0
		return
	}
	if v.Port.LineNo >= n {
		v.Port.LineNo = n - 1
	}
	if v.Port.LineNo < 0 {
		v.Port.LineNo = 0
	}
	if v.Port.Offset > v.Port.LineNo {
		v.Port.Offset = v.Port.LineNo
	}
	if v.Port.Offset < 0 {
		v.Port.Offset = 0
	}
}

// MoveCursor clamps LineNo into [0, buffer.len) by steps and re-runs
// Clamp; it does not itself adjust Offset/scroll the viewport — that
// is internal/display's do_scroll_view's job (spec.md §4.6), since
// scrolling needs the terminal window to decide between a scroll
// region and a full redraw.
func (v *View) MoveCursor(steps int) {
	v.Port.LineNo += steps
	v.Clamp()
}

// HScroll adjusts the horizontal scroll position by delta columns,
// clamped to 0 (SPEC_FULL.md §5's supplemented horizontal-scrolling
// feature). There is no upper clamp: a delta past the longest visible
// line simply renders every row blank, same as the original's
// left_offset.
func (v *View) HScroll(delta int) {
	v.Port.HOffset += delta
	if v.Port.HOffset < 0 {
		v.Port.HOffset = 0
	}
}
