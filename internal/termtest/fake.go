// Package termtest provides a fake internal/term.Terminal for
// exercising internal/view, internal/display, internal/dispatch, and
// internal/engine without a real TTY.
package termtest

import "github.com/optionalg/tig/internal/term"

// Fake is a minimal in-memory Terminal. Windows record the last
// written content per row for assertions.
type Fake struct {
	W, H    int
	windows map[string]*FakeWindow
	keys    []term.Key
	resized bool
	rw, rh  int
}

// New returns a Fake sized w x h.
func New(w, h int) *Fake {
	return &Fake{W: w, H: h, windows: map[string]*FakeWindow{}}
}

func (f *Fake) Size() (int, int) { return f.W, f.H }

func (f *Fake) CreateWindow(name string, x0, y0, x1, y1 int) (term.Window, error) {
	win := &FakeWindow{name: name, x0: x0, y0: y0, x1: x1, y1: y1}
	f.windows[name] = win
	return win, nil
}

func (f *Fake) DestroyWindow(name string) {
	delete(f.windows, name)
}

// PushKey queues a keystroke for the next ReadKey call.
func (f *Fake) PushKey(k term.Key) {
	f.keys = append(f.keys, k)
}

func (f *Fake) ReadKey(nonblock bool) (term.Key, bool, error) {
	if len(f.keys) == 0 {
		return term.Key{}, false, nil
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, true, nil
}

// TriggerResize arranges for the next Resized() call to report a
// change.
func (f *Fake) TriggerResize(w, h int) {
	f.W, f.H = w, h
	f.rw, f.rh = w, h
	f.resized = true
}

func (f *Fake) Resized() (int, int, bool) {
	if !f.resized {
		return 0, 0, false
	}
	f.resized = false
	return f.rw, f.rh, true
}

func (f *Fake) Flush() error { return nil }
func (f *Fake) Close() error { return nil }

// Window returns the fake window registered under name, if any.
func (f *Fake) Window(name string) *FakeWindow {
	return f.windows[name]
}

// FakeWindow records writes by row for test assertions.
type FakeWindow struct {
	name           string
	x0, y0, x1, y1 int
	rows           map[int]string
	cx, cy         int
	ox, oy         int
}

func (w *FakeWindow) Resize(x0, y0, x1, y1 int) {
	w.x0, w.y0, w.x1, w.y1 = x0, y0, x1, y1
}

func (w *FakeWindow) Clear() { w.rows = nil }

func (w *FakeWindow) SetCursor(x, y int) { w.cx, w.cy = x, y }
func (w *FakeWindow) SetOrigin(x, y int) { w.ox, w.oy = x, y }

func (w *FakeWindow) Size() (int, int) {
	return w.x1 - w.x0, w.y1 - w.y0
}

func (w *FakeWindow) WriteAt(x, y int, s string, attr term.Attr) {
	if w.rows == nil {
		w.rows = map[int]string{}
	}
	w.rows[y] = s
}

func (w *FakeWindow) Name() string { return w.name }

// Row returns what was last written at row y, for assertions.
func (w *FakeWindow) Row(y int) string { return w.rows[y] }

// Cursor returns the last SetCursor position.
func (w *FakeWindow) Cursor() (int, int) { return w.cx, w.cy }

// Origin returns the last SetOrigin position.
func (w *FakeWindow) Origin() (int, int) { return w.ox, w.oy }
