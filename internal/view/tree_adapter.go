package view

import (
	"regexp"
	"strings"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
)

// TreeAdapter implements the sorted directory-listing adapter of
// spec.md §4.4. Grounded on pkg/gui/container_images.go's sorted
// insert-by-name loop, generalized from a flat image list to the
// directories-before-files tree ordering and the synthetic header/
// up-link rows.
type TreeAdapter struct {
	Cfg *RenderConfig
}

func NewTreeAdapter(cfg *RenderConfig) *TreeAdapter {
	return &TreeAdapter{Cfg: cfg}
}

// Read parses one "<mode> <type> <sha>\t<name>" line, synthesizing
// the header (and, if opt_path is set, the up-link) on the first
// line, then inserting the record into sorted position.
func (a *TreeAdapter) Read(v *View, ctx *Context, line string) error {
	firstLine := v.Buf.Len() == 0
	if firstLine {
		v.Buf.Append(buffer.Entry{Kind: classify.DEFAULT, Text: "Directory path /" + v.Path})
		if v.Path != "" {
			v.Buf.Append(buffer.Entry{Kind: classify.TREE_DIR, Text: "040000 tree " + v.Vid + "\t.."})
		}
		v.Port.LineNo = v.Buf.Len()
	}

	mode, typ, sha, name, ok := parseTreeLine(line)
	if !ok {
		return nil
	}
	name = strings.TrimPrefix(name, v.Path)

	kind := classify.TREE_FILE
	if typ == "tree" {
		kind = classify.TREE_DIR
	}
	entry := buffer.Entry{Kind: kind, Text: mode + " " + typ + " " + sha + "\t" + name}

	insertSorted(v.Buf, entry, headerCount(v))
	return nil
}

func headerCount(v *View) int {
	if v.Path != "" {
		return 2
	}
	return 1
}

// parseTreeLine splits "<mode> <type> <sha>\t<name>" into its fields.
func parseTreeLine(line string) (mode, typ, sha, name string, ok bool) {
	tab := strings.IndexByte(line, '\t')
	if tab < 0 {
		return "", "", "", "", false
	}
	name = line[tab+1:]
	fields := strings.Fields(line[:tab])
	if len(fields) < 3 {
		return "", "", "", "", false
	}
	return fields[0], fields[1], fields[2], name, true
}

// insertSorted places entry at the first position (at or after
// headerCount) whose existing name sorts strictly after entry's name
// under "dir < file, ties by lexicographic name" (spec.md §4.4/P3);
// otherwise appends.
func insertSorted(buf *buffer.Buffer, entry buffer.Entry, start int) {
	n := buf.Len()
	for i := start; i < n; i++ {
		existing, _ := buf.At(i)
		if treeLess(entry, existing) {
			buf.InsertAt(i, entry)
			return
		}
	}
	buf.Append(entry)
}

func treeLess(a, b buffer.Entry) bool {
	aDir := a.Kind == classify.TREE_DIR
	bDir := b.Kind == classify.TREE_DIR
	if aDir != bDir {
		return aDir
	}
	return treeName(a.Text) < treeName(b.Text)
}

func treeName(text string) string {
	if i := strings.IndexByte(text, '\t'); i >= 0 {
		return text[i+1:]
	}
	return text
}

// Draw renders a tree row, capturing the blob/tree id of the cursor
// row the same way the pager adapter does.
func (a *TreeAdapter) Draw(v *View, ctx *Context, win term.Window, row int, entry buffer.Entry, isCursor bool) {
	attr := a.Cfg.Theme.Attr(entry.Kind)
	if isCursor {
		if id, ok := idAfterPrefix(entry.Text, "100644 blob "); ok {
			if end := strings.IndexByte(id, '\t'); end >= 0 {
				id = id[:end]
			}
			v.Ref = id
			ctx.SetBlob(id)
		}
		attr = a.Cfg.Theme.Attr(classify.CURSOR)
	}
	text := expandTabs(treeName(entry.Text), a.Cfg.TabSize)
	win.WriteAt(0, row, hscrollText(text, v.Port.HOffset), attr)
}

// Enter on a directory row pushes/pops a path segment and reloads;
// on a file row it captures the blob id and opens the blob split.
func (a *TreeAdapter) Enter(v *View, ctx *Context, entry buffer.Entry) reqtype.Request {
	name := treeName(entry.Text)

	if entry.Kind == classify.TREE_DIR {
		if name == ".." && v.Path != "" {
			v.Path = popPathSegment(v.Path)
		} else {
			v.Path = v.Path + name + "/"
		}
		return reqtype.VIEW_TREE
	}

	if id, ok := idAfterPrefix(entry.Text, "100644 blob "); ok {
		if end := strings.IndexByte(id, '\t'); end >= 0 {
			id = id[:end]
		}
		ctx.SetBlob(id)
	}
	return reqtype.VIEW_BLOB
}

func popPathSegment(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	i := strings.LastIndexByte(trimmed, '/')
	if i < 0 {
		return ""
	}
	return trimmed[:i+1]
}

// Grep matches against the entry's display name.
func (a *TreeAdapter) Grep(entry buffer.Entry, re *regexp.Regexp) bool {
	return re.MatchString(treeName(entry.Text))
}
