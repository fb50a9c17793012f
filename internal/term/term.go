// Package term is the terminal abstraction spec.md §1 calls out as an
// external collaborator: "windowed text output with colors/attributes,
// a status line with single-keystroke input (blocking or nonblocking),
// and resize notifications". Only the interface below is consumed by
// the core (internal/view, internal/display, internal/dispatch,
// internal/engine); GocuiTerminal is one concrete backend, grounded on
// pkg/gui/gui.go and pkg/gui/window.go's use of
// github.com/jesseduffield/gocui, but rewritten so its one background
// goroutine (gocui's own key-event pump) only ever produces values
// onto a channel — it never touches a View/Buffer/Display directly.
// The cooperative event loop (internal/engine) is the sole consumer of
// that channel and the sole mutator of core state, preserving spec.md
// §5's single-threaded discipline for everything this module owns.
package term

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jesseduffield/gocui"
)

// Attr is a foreground/background/attribute triple (spec.md §3: every
// LineKind carries one of these, frozen after config load).
type Attr struct {
	FG   color.Attribute
	BG   color.Attribute
	Bold bool
	Dim  bool
	Rev  bool
}

// Key is a single keystroke, either a printable rune or one of the
// named keys in spec.md's glossary.
type Key struct {
	Rune    rune
	Special string // "", or one of Enter/Space/Backspace/Tab/Escape/Left/Right/Up/Down/...
}

// Window is one rectangular region of the terminal: a view's on-screen
// surface (spec.md §3 View's `window`/`title_window` fields).
type Window interface {
	Resize(x0, y0, x1, y1 int)
	Clear()
	SetCursor(x, y int)
	SetOrigin(x, y int)
	Size() (w, h int)
	WriteAt(x, y int, s string, attr Attr)
	Name() string
}

// Terminal is the abstraction the core depends on. A production
// instance is backed by a real TTY (GocuiTerminal); tests use a fake
// that records calls instead of touching a terminal.
type Terminal interface {
	Size() (w, h int)
	CreateWindow(name string, x0, y0, x1, y1 int) (Window, error)
	DestroyWindow(name string)
	// ReadKey returns the next keystroke. If nonblock is true and no
	// key is currently available, ok is false and it returns
	// immediately; otherwise it blocks until a key arrives.
	ReadKey(nonblock bool) (key Key, ok bool, err error)
	// Resized reports (and clears) a pending resize notification.
	Resized() (w, h int, changed bool)
	Flush() error
	Close() error
}

// GocuiTerminal backs Terminal with github.com/jesseduffield/gocui.
// Its keybinding callback is the only place a goroutine other than the
// cooperative loop's own ever runs: it does nothing but push a Key
// onto keys, which ReadKey drains. No view mutation happens there.
type GocuiTerminal struct {
	g    *gocui.Gui
	keys chan Key

	resizeW, resizeH int
	resizePending    bool
}

// NewGocuiTerminal opens a gocui.Gui in true-color output mode, mirroring
// gocui.NewGui(gocui.OutputTrue, ...) in pkg/gui/gui.go's Run().
func NewGocuiTerminal() (*GocuiTerminal, error) {
	g, err := gocui.NewGui(gocui.OutputTrue, false, gocui.NORMAL, false, map[rune]string{})
	if err != nil {
		return nil, err
	}

	t := &GocuiTerminal{
		g:    g,
		keys: make(chan Key, 64),
	}

	// A catch-all keybinding on the empty view name fires for every
	// keystroke gocui's own input loop observes, regardless of which
	// view currently has focus; we funnel it into our channel instead
	// of handling it inline, so dispatch stays entirely inside the
	// cooperative loop.
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, t.onKey(Key{Special: "CtrlC"})); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *GocuiTerminal) onKey(k Key) func(*gocui.Gui, *gocui.View) error {
	return func(*gocui.Gui, *gocui.View) error {
		select {
		case t.keys <- k:
		default:
			// drop the key rather than block gocui's internal goroutine;
			// the cooperative loop is expected to drain promptly.
		}
		return nil
	}
}

func (t *GocuiTerminal) Size() (int, int) {
	return t.g.Size()
}

func (t *GocuiTerminal) CreateWindow(name string, x0, y0, x1, y1 int) (Window, error) {
	v, err := t.g.SetView(name, x0, y0, x1, y1, 0)
	if err != nil && err != gocui.ErrUnknownView {
		return nil, err
	}
	return &gocuiWindow{v: v}, nil
}

func (t *GocuiTerminal) DestroyWindow(name string) {
	_ = t.g.DeleteView(name)
}

func (t *GocuiTerminal) ReadKey(nonblock bool) (Key, bool, error) {
	if nonblock {
		select {
		case k := <-t.keys:
			return k, true, nil
		default:
			return Key{}, false, nil
		}
	}
	k, ok := <-t.keys
	return k, ok, nil
}

func (t *GocuiTerminal) Resized() (int, int, bool) {
	if !t.resizePending {
		return 0, 0, false
	}
	t.resizePending = false
	return t.resizeW, t.resizeH, true
}

func (t *GocuiTerminal) Flush() error {
	t.g.Update(func(*gocui.Gui) error { return nil })
	return nil
}

func (t *GocuiTerminal) Close() error {
	t.g.Close()
	close(t.keys)
	return nil
}

type gocuiWindow struct {
	v *gocui.View
}

func (w *gocuiWindow) Resize(x0, y0, x1, y1 int) {
	// gocui resizes a view by re-issuing SetView with new coordinates;
	// that call lives on GocuiTerminal since it needs the *gocui.Gui.
}

func (w *gocuiWindow) Clear() {
	w.v.Clear()
}

func (w *gocuiWindow) SetCursor(x, y int) {
	_ = w.v.SetCursor(x, y)
}

func (w *gocuiWindow) SetOrigin(x, y int) {
	_ = w.v.SetOrigin(x, y)
}

func (w *gocuiWindow) Size() (int, int) {
	return w.v.Size()
}

func (w *gocuiWindow) WriteAt(x, y int, s string, attr Attr) {
	colored := applyAttr(s, attr)
	fmt.Fprint(w.v, colored)
}

func (w *gocuiWindow) Name() string {
	return w.v.Name()
}

func applyAttr(s string, a Attr) string {
	attrs := []color.Attribute{a.FG, a.BG}
	if a.Bold {
		attrs = append(attrs, color.Bold)
	}
	if a.Dim {
		attrs = append(attrs, color.Faint)
	}
	if a.Rev {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...).Sprint(s)
}
