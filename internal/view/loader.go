package view

import (
	"bufio"
	"io"
	"time"

	"github.com/optionalg/tig/internal/provider"
)

// LoadingTracker is the session-wide "is anything loading" refcount
// spec.md §4.5 step 3 and §5 describe: nonblocking terminal input is
// enabled iff this is nonzero. It is owned by internal/engine and
// threaded through BeginUpdate/EndUpdate rather than kept as a package
// global, per spec.md §9's preference for explicit state over hidden
// globals.
type LoadingTracker struct {
	count int
}

func (t *LoadingTracker) inc() { t.count++ }
func (t *LoadingTracker) dec() {
	if t.count > 0 {
		t.count--
	}
}

// Any reports whether at least one view is currently loading.
func (t *LoadingTracker) Any() bool { return t.count > 0 }

// Transcoder is the optional byte-stream translator spec.md §1
// mentions; nil means no transcoding.
type Transcoder interface {
	Transcode([]byte) string
}

// BeginUpdate starts (or restarts) a view's load (spec.md §4.5):
//   - promptCmd, if non-empty, is used verbatim as a raw shell command
//     (the ':' prompt's opt_cmd) and clears v.Ref.
//   - adoptedStdin, if non-nil, is adopted instead of spawning a new
//     subprocess (the pager-from-stdin case, spec.md §6).
//   - otherwise the view's Template (or its CommandOverride, e.g. a
//     TIG_<VIEW>_CMD env var) is spawned against ctx's resolved id.
func BeginUpdate(v *View, ctx *Context, tracker *LoadingTracker, promptCmd string, adoptedStdin io.ReadCloser) error {
	var proc *provider.Process
	var err error

	switch {
	case promptCmd != "":
		v.Ref = ""
		proc, err = provider.RunShell(promptCmd, v.WorkDir)
	case adoptedStdin != nil:
		proc = provider.AdoptStdin(adoptedStdin)
	case v.CommandOverride != "":
		proc, err = provider.RunShell(v.CommandOverride, v.WorkDir)
	default:
		id := ctx.Resolve(v.IDSource)
		args := v.Template(id, v.Path)
		proc, err = provider.Spawn("git", args, v.WorkDir)
	}
	if err != nil {
		return err
	}

	if v.Loading {
		// a reload while already loading: end the previous load first
		// so the refcount and pipe stay consistent.
		EndUpdate(v, tracker)
	}

	v.proc = proc
	v.Loading = true
	v.startTime = time.Now()
	tracker.inc()

	v.Port = Viewport{Height: v.Port.Height, Width: v.Port.Width}
	v.Buf.Reset()
	v.Vid = ctx.Resolve(v.IDSource)

	return nil
}

// ElapsedLoad reports how long the view has been loading, for the
// title bar's "elapsed load seconds (only after 2s)" display
// (spec.md §4.6).
func (v *View) ElapsedLoad() time.Duration {
	if !v.Loading {
		return 0
	}
	return time.Since(v.startTime)
}

// UpdateView reads up to v.Port.Height lines from the view's pipe per
// tick (spec.md §4.5's "bounded to balance latency vs throughput"),
// feeding each through an optional Transcoder and then the adapter's
// Read. It reports whether the buffer's digit width changed (callers
// schedule a full redraw when it has) and ends the load on EOF or
// read error.
func UpdateView(v *View, ctx *Context, tracker *LoadingTracker, tc Transcoder) (digitsChanged bool, err error) {
	if !v.Loading || v.proc == nil {
		return false, nil
	}

	before := v.Buf.Digits()

	reader := v.lineReader()
	budget := v.Port.Height
	if budget <= 0 {
		budget = 1
	}

	for i := 0; i < budget; i++ {
		line, readErr := reader.ReadString('\n')
		if len(line) > 0 {
			trimmed := trimNewline(line)
			text := trimmed
			if tc != nil {
				text = tc.Transcode([]byte(trimmed))
			}
			if adaptErr := v.Adapter.Read(v, ctx, text); adaptErr != nil {
				EndUpdate(v, tracker)
				return false, adaptErr
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				EndUpdate(v, tracker)
			} else {
				EndUpdate(v, tracker)
				return false, readErr
			}
			break
		}
	}

	after := v.Buf.Digits()
	return before != after, nil
}

// v.lineReader lazily wraps the process's stdout in a *bufio.Reader,
// kept across ticks so a partial line at a read boundary survives to
// the next UpdateView call.
func (v *View) lineReader() *bufio.Reader {
	if v.bufReader == nil {
		v.bufReader = bufio.NewReaderSize(v.proc.Stdout, 64*1024)
	}
	return v.bufReader
}

func trimNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
	}
	if n > 0 && s[n-1] == '\r' {
		n--
	}
	return s[:n]
}

// EndUpdate closes the view's pipe (killing the process tree if it
// was spawned by us rather than adopted, spec.md §5 resource
// discipline) and decrements the loading refcount.
func EndUpdate(v *View, tracker *LoadingTracker) {
	if !v.Loading {
		return
	}
	if v.proc != nil {
		_ = v.proc.Kill()
		v.proc = nil
	}
	v.bufReader = nil
	v.Loading = false
	tracker.dec()
}
