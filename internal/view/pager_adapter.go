package view

import (
	"regexp"
	"strings"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
)

// PagerAdapter implements the free-form pager/diff/log adapter of
// spec.md §4.4. Grounded on pkg/gui/container_logs.go's line-by-line
// append-and-classify loop, generalized with the attach-refs rule and
// the commit/tree id capture spec.md adds on top of plain log
// tailing.
type PagerAdapter struct {
	Refs *refs.Index
	Cfg  *RenderConfig
}

func NewPagerAdapter(idx *refs.Index, cfg *RenderConfig) *PagerAdapter {
	return &PagerAdapter{Refs: idx, Cfg: cfg}
}

const commitLinePrefix = "commit "

// Read duplicates the line, classifies it, and appends it. A COMMIT
// line owned by a diff or log view triggers attach_refs.
func (a *PagerAdapter) Read(v *View, ctx *Context, line string) error {
	kind := classify.Classify(line)
	v.Buf.Append(buffer.Entry{Kind: kind, Text: line})

	if kind == classify.COMMIT && (v.Name == "diff" || v.Name == "log") {
		a.attachRefs(v, line)
	}
	return nil
}

// attachRefs implements spec.md §4.4's "Attach-refs rule". Failures at
// any step abort silently; the commit line itself is already valid
// and stays in the buffer either way.
func (a *PagerAdapter) attachRefs(v *View, commitLine string) {
	id, ok := idAfterPrefix(commitLine, commitLinePrefix)
	if !ok || a.Refs == nil {
		return
	}

	list := a.Refs.Lookup(id)
	if len(list) > 0 {
		formatted := make([]string, 0, len(list))
		for _, r := range list {
			if r.IsTag {
				formatted = append(formatted, "["+r.Name+"]")
			} else {
				formatted = append(formatted, r.Name)
			}
		}
		v.Buf.Append(buffer.Entry{Kind: classify.PP_REFS, Text: "Refs: " + strings.Join(formatted, ", ")})
		return
	}

	if v.Name != "diff" {
		return
	}
	desc := provider.Describe(id, v.WorkDir)
	if desc == "" {
		return
	}
	v.Buf.Append(buffer.Entry{Kind: classify.PP_REFS, Text: "Refs: " + desc})
}

// idAfterPrefix returns the token following prefix up to the next
// whitespace or tab, or ok=false if line doesn't start with prefix.
func idAfterPrefix(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	rest := line[len(prefix):]
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == ' ' || rest[i] == '\t' {
			end = i
			break
		}
	}
	if end == 0 {
		return "", false
	}
	return rest[:end], true
}

const treeBlobRowPrefix = "100644 blob "

// Draw renders entry at row. On the cursor row it additionally
// captures the commit/blob id the line carries into view.Ref and the
// matching Context slot, per spec.md §4.4.
func (a *PagerAdapter) Draw(v *View, ctx *Context, win term.Window, row int, entry buffer.Entry, isCursor bool) {
	kind := entry.Kind
	attr := a.Cfg.Theme.Attr(kind)

	if isCursor {
		if id, ok := idAfterPrefix(entry.Text, commitLinePrefix); ok {
			v.Ref = id
			ctx.SetCommit(id)
		} else if id, ok := idAfterPrefix(entry.Text, treeBlobRowPrefix); ok {
			end := strings.IndexByte(id, '\t')
			if end >= 0 {
				id = id[:end]
			}
			v.Ref = id
			ctx.SetBlob(id)
		}
		attr = a.Cfg.Theme.Attr(classify.CURSOR)
	}

	text := expandTabs(entry.Text, a.Cfg.TabSize)
	prefix := lineNumberPrefix(a.Cfg, v.Port.Offset+row+1, v.Buf.Digits())
	win.WriteAt(0, row, hscrollText(prefix+text, v.Port.HOffset), attr)
}

// Enter opens the diff view as a split when entry is a COMMIT line in
// a log or pager view, then always scrolls one line down so repeated
// Enter presses walk the log.
func (a *PagerAdapter) Enter(v *View, ctx *Context, entry buffer.Entry) reqtype.Request {
	if entry.Kind == classify.COMMIT && (v.Name == "log" || v.Name == "pager") {
		v.MoveCursor(1)
		return reqtype.VIEW_DIFF
	}
	v.MoveCursor(1)
	return reqtype.NONE
}

// Grep matches re against the line's raw payload.
func (a *PagerAdapter) Grep(entry buffer.Entry, re *regexp.Regexp) bool {
	return re.MatchString(entry.Text)
}
