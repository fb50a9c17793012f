package view

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/refs"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/textwidth"
)

const (
	dateFormat = "2006-01-02 15:04"
	dateCols   = 16
	authorCols = 19
)

// MainAdapter implements the commit/main-view state machine of
// spec.md §4.4, parsing `git log --pretty=raw` output into Commit
// records. Grounded on pkg/gui/container_images.go's row-cache
// approach (mutate the most recent entry rather than re-scanning),
// adapted from a fixed-column image table to a streaming raw-commit
// parser.
type MainAdapter struct {
	Refs *refs.Index
	Cfg  *RenderConfig

	current *buffer.Commit
}

func NewMainAdapter(idx *refs.Index, cfg *RenderConfig) *MainAdapter {
	return &MainAdapter{Refs: idx, Cfg: cfg}
}

// Read feeds one pretty=raw line into the state machine (spec.md
// §4.4's Main adapter bullets).
func (a *MainAdapter) Read(v *View, ctx *Context, line string) error {
	switch {
	case strings.HasPrefix(line, "commit "):
		id, _ := idAfterPrefix(line, "commit ")
		c := &buffer.Commit{ID: id}
		c.GraphSize = 1
		c.Graph[0] = '├' // ACS_LTEE: left tee, the graph's root glyph
		if a.Refs != nil {
			c.Refs = a.Refs.Lookup(id)
		}
		a.current = c
		v.Buf.Append(buffer.Entry{Kind: classify.COMMIT, Commit: c})

	case strings.HasPrefix(line, "author "):
		if a.current != nil {
			parseAuthorLine(a.current, line)
		}

	case len(line) >= 5 && line[0] == ' ' && line[1] == ' ' && line[2] == ' ' && line[3] == ' ' && line[4] != ' ' && line[4] != '\t':
		if a.current != nil && a.current.Title == "" {
			a.current.Title = strings.TrimPrefix(line, "    ")
		}

	default:
		// parent/tree/committer/blank lines are ignored by the main view.
	}
	return nil
}

// parseAuthorLine parses `author <ident> <epoch> <±HHMM>`, where
// ident is everything up to the trailing " <epoch> <tz>" pair. The
// name is the trimmed text before the `<...>` email bracket if one is
// present, else the whole ident, falling back to "Unknown" if empty.
func parseAuthorLine(c *buffer.Commit, line string) {
	rest := strings.TrimPrefix(line, "author ")

	tzSpace := strings.LastIndexByte(rest, ' ')
	if tzSpace < 0 {
		return
	}
	tz := rest[tzSpace+1:]
	rest = rest[:tzSpace]

	epochSpace := strings.LastIndexByte(rest, ' ')
	if epochSpace < 0 {
		return
	}
	epochStr := rest[epochSpace+1:]
	ident := rest[:epochSpace]

	name := ident
	if lb := strings.IndexByte(ident, '<'); lb >= 0 {
		name = strings.TrimSpace(ident[:lb])
	}
	if name == "" {
		name = "Unknown"
	}
	c.Author = name

	epoch, err := strconv.ParseInt(epochStr, 10, 64)
	if err != nil {
		return
	}
	c.Time = parseTimezone(epoch, tz)
}

// parseTimezone implements the Open Question decision: exactly
// `±HHMM` (5 bytes) is accepted; anything else leaves Time at its
// zero value (spec.md §9 "preserve the literal behavior").
func parseTimezone(epoch int64, tz string) time.Time {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return time.Time{}
	}
	hh, err1 := strconv.Atoi(tz[1:3])
	mm, err2 := strconv.Atoi(tz[3:5])
	if err1 != nil || err2 != nil {
		return time.Time{}
	}
	offset := hh*3600 + mm*60
	if tz[0] == '-' {
		offset = -offset
	}
	loc := time.FixedZone(tz, offset)
	return time.Unix(epoch, 0).In(loc).UTC()
}

// Draw renders a fixed date column, a truncated author column, the
// ancestry graph (if enabled), bracketed refs, then the title,
// exactly as spec.md §4.4 lays the main-view row out.
func (a *MainAdapter) Draw(v *View, ctx *Context, win term.Window, row int, entry buffer.Entry, isCursor bool) {
	c := entry.Commit
	if c == nil {
		return
	}
	if isCursor {
		v.Ref = c.ID
		ctx.SetCommit(c.ID)
	}

	var b strings.Builder
	if !c.Time.IsZero() {
		b.WriteString(pad(c.Time.Format(dateFormat), dateCols))
	} else {
		b.WriteString(pad("", dateCols))
	}
	b.WriteByte(' ')

	author, trimmedAuthor := fitColumn(c.Author, authorCols-2)
	b.WriteString(pad(author, authorCols-2))
	if trimmedAuthor {
		b.WriteString("~")
	} else {
		b.WriteString(" ")
	}
	b.WriteByte(' ')

	if a.Cfg.ShowRevGraph {
		b.WriteString(string(c.Graph[:c.GraphSize]))
		b.WriteByte(' ')
	}

	for _, r := range c.Refs {
		if r.IsTag {
			b.WriteString("[" + r.Name + "] ")
		} else {
			b.WriteString("<" + r.Name + "> ")
		}
	}

	b.WriteString(c.Title)

	attr := a.Cfg.Theme.Attr(classify.MAIN_COMMIT)
	if isCursor {
		attr = a.Cfg.Theme.Attr(classify.CURSOR)
	}
	win.WriteAt(0, row, hscrollText(b.String(), v.Port.HOffset), attr)
}

// fitColumn trims s to width display columns using the UTF-8
// column-fitting algorithm (spec.md §4.3), reporting whether it had to
// trim.
func fitColumn(s string, width int) (string, bool) {
	if width <= 0 {
		return "", len(s) > 0
	}
	n, _, trimmed := textwidth.Fit([]byte(s), width)
	return s[:n], trimmed
}

// Enter opens the diff view, splitting iff main is currently the
// primary (full-screen) view.
func (a *MainAdapter) Enter(v *View, ctx *Context, entry buffer.Entry) reqtype.Request {
	return reqtype.VIEW_DIFF
}

// Grep matches against title, then author, then the formatted date,
// in that order (spec.md §4.4).
func (a *MainAdapter) Grep(entry buffer.Entry, re *regexp.Regexp) bool {
	c := entry.Commit
	if c == nil {
		return false
	}
	if re.MatchString(c.Title) {
		return true
	}
	if re.MatchString(c.Author) {
		return true
	}
	if c.Time.IsZero() {
		return false
	}
	return re.MatchString(c.Time.Format(dateFormat))
}
