// Package engine implements spec.md §5's single-threaded cooperative
// event loop: one bounded nonblocking read pass per loading view, then
// a single keystroke read (nonblocking iff anything is loading,
// otherwise blocking so the process yields CPU while idle), then
// request dispatch to completion before the next tick. Grounded on
// pkg/gui/gui.go's Run(), generalized from lazydocker's
// goroutine-per-refresh model to the spec's explicitly single-threaded
// one (see DESIGN.md's "Deliberate concurrency-model divergence from
// the teacher").
package engine

import (
	"fmt"

	"github.com/optionalg/tig/internal/apperrors"
	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/dispatch"
	"github.com/optionalg/tig/internal/i18n"
	"github.com/optionalg/tig/internal/prompt"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/view"
)

// Version is reported by SHOW_VERSION ('v') and -v/--version.
const Version = "0.1.0"

// Engine wires every core collaborator spec.md §1 lists as external to
// the view engine proper (term.Terminal, the content providers behind
// each View, internal/display, internal/dispatch, internal/prompt)
// into the single cooperative loop of spec.md §5.
type Engine struct {
	Term     term.Terminal
	Disp     *display.Display
	Dispatch *dispatch.Dispatcher
	Ctx      *view.Context
	Tracker  *view.LoadingTracker
	TC       view.Transcoder

	// Tr supplies the STOP_LOADING status-line prose (spec.md §8
	// scenario 6's "Stopped loading the main view").
	Tr *i18n.TranslationSet

	// Views holds one constructed *view.View per kind, keyed by name
	// ("main", "diff", "log", "tree", "blob", "pager", "help"). All
	// seven are built once at startup (spec.md §3 "constructed once per
	// kind") regardless of which are ever opened.
	Views map[string]*view.View

	quit bool
}

// New returns an Engine ready to Run, once its Disp has at least one
// view Open (the caller picks the initial view per spec.md §6's
// -l/-d/positional-argument rules before calling Run).
func New(t term.Terminal, d *display.Display, disp *dispatch.Dispatcher, ctx *view.Context, tracker *view.LoadingTracker, tc view.Transcoder, views map[string]*view.View) *Engine {
	return &Engine{
		Term:     t,
		Disp:     d,
		Dispatch: disp,
		Ctx:      ctx,
		Tracker:  tracker,
		TC:       tc,
		Tr:       i18n.NewTranslationSet(),
		Views:    views,
	}
}

var viewRequestNames = map[reqtype.Request]string{
	reqtype.VIEW_MAIN:  "main",
	reqtype.VIEW_DIFF:  "diff",
	reqtype.VIEW_LOG:   "log",
	reqtype.VIEW_TREE:  "tree",
	reqtype.VIEW_BLOB:  "blob",
	reqtype.VIEW_PAGER: "pager",
	reqtype.VIEW_HELP:  "help",
}

// Run executes ticks until a QUIT request or an unhandled VIEW_CLOSE
// at the root view (spec.md §4.7's "caller must treat this as QUIT").
// It returns the first fatal error from a suspension point (spec.md
// §5's keystroke read, pipe read, or subprocess spawn/close).
func (e *Engine) Run() error {
	if err := e.Disp.Layout(); err != nil {
		return err
	}
	e.Disp.RedrawAll(e.Ctx)

	for !e.quit {
		if err := e.tick(); err != nil {
			return err
		}
	}
	return nil
}

// tick runs exactly one iteration of spec.md §5's loop: a resize
// check, one bounded read pass over every view's pipe, then a single
// keystroke read and its full dispatch.
func (e *Engine) tick() error {
	if _, _, changed := e.Term.Resized(); changed {
		if err := e.Disp.Layout(); err != nil {
			return err
		}
		e.Disp.RedrawAll(e.Ctx)
	}

	e.advanceLoads()

	nonblock := e.Tracker.Any()
	key, ok, err := e.Term.ReadKey(nonblock)
	if err != nil {
		return err
	}
	if !ok {
		if !nonblock {
			// a blocking read that returned nothing means the key source
			// is gone (terminal closed); there is nothing left to wait on.
			e.quit = true
		}
		return nil
	}

	cur := e.Disp.CurrentView()
	if cur == nil {
		return nil
	}

	req := e.Dispatch.Resolve(cur.Keymap, key)
	if dispatch.ApplyNavigation(e.Disp, e.Ctx, req) {
		return nil
	}
	return e.handle(cur, req)
}

// advanceLoads gives every loading view one bounded read pass
// (spec.md §4.5/§5): the two on-screen views first, in display slot
// order, then every other constructed view in Go map iteration order
// (which is not fixed), so a background load (e.g. a still-streaming
// log view sitting behind the current diff split) keeps progressing.
func (e *Engine) advanceLoads() {
	grew := false
	advance := func(v *view.View) {
		if v == nil || !v.Loading {
			return
		}
		digitsChanged, err := view.UpdateView(v, e.Ctx, e.Tracker, e.TC)
		if err != nil {
			// a pipe/spawn/malformed-record failure (spec.md §7
			// "Recoverable load"): the view already ended its own load,
			// so just report it rather than treating it as fatal.
			wrapped := apperrors.Recoverable("loading the "+v.Name+" view", err)
			prompt.PaintStatus(e.Disp, wrapped.Error())
			return
		}
		if digitsChanged {
			grew = true
		}
	}
	advance(e.Disp.Views[0])
	advance(e.Disp.Views[1])
	for _, v := range e.Views {
		if v != e.Disp.Views[0] && v != e.Disp.Views[1] {
			advance(v)
		}
	}
	if grew {
		e.Disp.RedrawAll(e.Ctx)
	}
}

// handle runs every Request dispatch.ApplyNavigation doesn't, because
// it needs a collaborator ApplyNavigation has no access to: the
// prompt reader, a view's own Enter, or the named-view registry.
func (e *Engine) handle(cur *view.View, req reqtype.Request) error {
	switch req {
	case reqtype.QUIT:
		e.quit = true

	case reqtype.VIEW_CLOSE:
		// ApplyNavigation already tried and reported false: cur has no
		// parent, so closing it means leaving the program.
		e.quit = true

	case reqtype.ENTER:
		return e.handleEnter(cur)

	case reqtype.VIEW_MAIN, reqtype.VIEW_DIFF, reqtype.VIEW_LOG, reqtype.VIEW_TREE, reqtype.VIEW_BLOB, reqtype.VIEW_PAGER:
		return e.openFullScreen(viewRequestNames[req])

	case reqtype.VIEW_HELP:
		e.openHelp()

	case reqtype.PROMPT:
		_, err := prompt.Execute(e.Disp, e.Ctx, e.Tracker, e.TC, e.Views["diff"], e.Views["pager"])
		return err

	case reqtype.SEARCH, reqtype.SEARCH_BACK:
		return e.runSearch(cur, req == reqtype.SEARCH)

	case reqtype.FIND_NEXT:
		msg, _ := e.Disp.FindNext(cur, e.Ctx, true)
		prompt.PaintStatus(e.Disp, msg)

	case reqtype.FIND_PREV:
		msg, _ := e.Disp.FindNext(cur, e.Ctx, false)
		prompt.PaintStatus(e.Disp, msg)

	case reqtype.STOP_LOADING:
		e.stopLoading()

	case reqtype.SHOW_VERSION:
		prompt.PaintStatus(e.Disp, "tig "+Version)
	}
	return nil
}

func (e *Engine) runSearch(cur *view.View, forward bool) error {
	prefix := "/"
	if !forward {
		prefix = "?"
	}
	input, ok := prompt.Read(e.Disp, e.Ctx, e.Tracker, e.TC, prefix)
	if !ok {
		return nil
	}
	msg, _ := e.Disp.Search(cur, e.Ctx, input, forward)
	prompt.PaintStatus(e.Disp, msg)
	return nil
}

// handleEnter runs the current view's cursor row through its
// adapter's Enter (spec.md §4.4) and opens whatever it asks for as a
// split under the current view, except the tree view's own
// "directory navigated" case, which reloads tree in place rather than
// opening anything.
func (e *Engine) handleEnter(cur *view.View) error {
	entry, ok := cur.Buf.At(cur.Port.LineNo)
	if !ok {
		return nil
	}
	req := cur.Adapter.Enter(cur, e.Ctx, entry)

	switch req {
	case reqtype.NONE:
		e.Disp.Redraw(cur, e.Ctx)
		return nil

	case reqtype.VIEW_TREE:
		if cur.Name == "tree" {
			if err := view.BeginUpdate(cur, e.Ctx, e.Tracker, "", nil); err != nil {
				return err
			}
			return e.Disp.Layout()
		}
		return e.openSplit("tree")

	case reqtype.VIEW_DIFF:
		return e.openSplit("diff")

	case reqtype.VIEW_BLOB:
		return e.openSplit("blob")

	default:
		return nil
	}
}

// openSplit opens the named view as the secondary, below cur (spec.md
// §4.4's "open ... split"), and begins its load.
func (e *Engine) openSplit(name string) error {
	v := e.Views[name]
	if v == nil {
		return nil
	}
	e.Disp.OpenSplit(v)
	if err := view.BeginUpdate(v, e.Ctx, e.Tracker, "", nil); err != nil {
		return err
	}
	if err := e.Disp.Layout(); err != nil {
		return err
	}
	e.Disp.RedrawAll(e.Ctx)
	return nil
}

// openFullScreen opens the named view as the sole (primary) view,
// discarding any split (the direct view-opening keybindings: 'm', 'D',
// 'L', 't').
func (e *Engine) openFullScreen(name string) error {
	v := e.Views[name]
	if v == nil {
		return nil
	}
	if name == "tree" {
		v.Path = ""
	}
	e.Disp.Open(v)
	if err := view.BeginUpdate(v, e.Ctx, e.Tracker, "", nil); err != nil {
		return err
	}
	if err := e.Disp.Layout(); err != nil {
		return err
	}
	e.Disp.RedrawAll(e.Ctx)
	return nil
}

// openHelp populates the help view directly from the live binding
// table (spec.md glossary's help screen) instead of spawning a
// subprocess — there is no git content behind it.
func (e *Engine) openHelp() {
	v := e.Views["help"]
	if v == nil {
		return
	}
	v.Buf.Reset()
	for _, line := range e.Dispatch.Cheatsheet() {
		v.Buf.Append(buffer.Entry{Kind: classify.DEFAULT, Text: line})
	}
	v.Vid = "help"
	e.Disp.Open(v)
	_ = e.Disp.Layout()
	e.Disp.RedrawAll(e.Ctx)
}

// stopLoading implements STOP_LOADING ('z', spec.md §5): end every
// currently-loading view's pipe, keeping whatever was already
// buffered, and reports each one on the status line (spec.md §8
// scenario 6's "Stopped loading the main view").
func (e *Engine) stopLoading() {
	var stopped []*view.View
	for _, v := range e.Views {
		if v != nil && v.Loading {
			view.EndUpdate(v, e.Tracker)
			stopped = append(stopped, v)
		}
	}
	e.Disp.RedrawAll(e.Ctx)
	for _, v := range stopped {
		prompt.PaintStatus(e.Disp, fmt.Sprintf(e.Tr.StoppedLoadingFmt, v.Name))
	}
}
