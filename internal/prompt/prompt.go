// Package prompt implements spec.md §4.8's read_prompt: a cooperative
// status-line input sub-loop, plus the ':' command prompt's
// git-prefixing and target-view rule. Grounded on
// pkg/gui/confirmation_panel.go's prompt-panel pattern, generalized
// from gocui's per-keystroke callback into this module's single
// ReadKey loop (spec.md §5's single-threaded discipline applies here
// too: the sub-loop is just another call frame of the same loop, not
// a second goroutine).
package prompt

import (
	"strings"
	"time"
	"unicode"

	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/display"
	"github.com/optionalg/tig/internal/view"
)

// pollInterval paces the nonblocking read when no key is queued,
// giving background loads a chance to advance (spec.md §4.8 "calls
// update_view on every view" each iteration) without busy-spinning.
const pollInterval = 20 * time.Millisecond

// Read accumulates keystrokes into a buffer, repainting prefix+buffer
// to the status line and advancing every active view's load on each
// iteration, until Enter (returns the buffer, true) or Escape / an
// empty-buffer backspace (returns "", false).
func Read(d *display.Display, ctx *view.Context, tracker *view.LoadingTracker, tc view.Transcoder, prefix string) (string, bool) {
	var buf strings.Builder

	for {
		advance(d, ctx, tracker, tc)
		paintStatus(d, prefix+buf.String())

		key, ok, err := d.Term.ReadKey(true)
		if err != nil {
			return "", false
		}
		if !ok {
			time.Sleep(pollInterval)
			continue
		}

		switch key.Special {
		case "Enter":
			return buf.String(), true
		case "Escape":
			return "", false
		case "Backspace":
			s := buf.String()
			if s == "" {
				return "", false
			}
			r := []rune(s)
			buf.Reset()
			buf.WriteString(string(r[:len(r)-1]))
		case "":
			if unicode.IsPrint(key.Rune) {
				buf.WriteRune(key.Rune)
			}
		}
	}
}

// advance runs one load tick for each loading view in the display's
// two on-screen slots and redraws it, so a long `git log` isn't frozen
// while the user types at the ':' prompt. Views that are loading but
// not on screen are not advanced while the prompt is open.
func advance(d *display.Display, ctx *view.Context, tracker *view.LoadingTracker, tc view.Transcoder) {
	for _, v := range d.Views {
		if v == nil || !v.Loading {
			continue
		}
		if _, err := view.UpdateView(v, ctx, tracker, tc); err == nil {
			d.Redraw(v, ctx)
		}
	}
}

func paintStatus(d *display.Display, text string) {
	PaintStatus(d, text)
}

// PaintStatus writes text to the status window with the STATUS theme
// attribute (spec.md §7's "surfaced only on the status line" error
// classes, and §4.6's search-result messages, share this one
// presentation path).
func PaintStatus(d *display.Display, text string) {
	if d.StatusWin == nil {
		return
	}
	d.StatusWin.Clear()
	d.StatusWin.WriteAt(0, 0, text, d.Cfg.Theme.Attr(classify.STATUS))
}

// showPrefix is the literal prefix spec.md §4.8 tests for: an input
// that "begins with `show` + space" targets the diff view.
const showPrefix = "show "

// Command implements the ':' prompt's input -> (shell command, target
// is diff) rule (spec.md §4.8): the raw input is prefixed with "git "
// to form opt_cmd; an input beginning with "show " targets the diff
// view, everything else targets the pager view.
func Command(input string) (gitCmd string, targetIsDiff bool) {
	return "git " + input, strings.HasPrefix(input, showPrefix)
}

// Execute runs the ':' prompt end to end: reads input, builds the git
// command, begins an update against whichever of diff/pager it
// targets with that command as opt_cmd (clearing the target's Ref,
// per spec.md §4.5 step 1), opens the target full-screen, and
// redraws. Returns false if the user cancelled (Escape or
// empty-buffer backspace) or the subprocess failed to start.
func Execute(d *display.Display, ctx *view.Context, tracker *view.LoadingTracker, tc view.Transcoder, diffView, pagerView *view.View) (bool, error) {
	input, ok := Read(d, ctx, tracker, tc, ":")
	if !ok {
		return false, nil
	}

	gitCmd, targetIsDiff := Command(input)
	target := pagerView
	if targetIsDiff {
		target = diffView
	}

	if err := view.BeginUpdate(target, ctx, tracker, gitCmd, nil); err != nil {
		return false, err
	}

	d.Open(target)
	if err := d.Layout(); err != nil {
		return false, err
	}
	d.RedrawAll(ctx)
	return true, nil
}
