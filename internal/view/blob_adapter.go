package view

import (
	"regexp"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
)

// BlobAdapter implements spec.md §4.4's blob view: "read is the pager
// read, but every line's kind is forced to DEFAULT; draw/enter/grep
// delegate to the pager adapter." Grounded on the same
// container_logs.go streaming shape as PagerAdapter, composed rather
// than duplicated.
type BlobAdapter struct {
	Pager *PagerAdapter
}

func NewBlobAdapter(cfg *RenderConfig) *BlobAdapter {
	return &BlobAdapter{Pager: NewPagerAdapter(nil, cfg)}
}

func (a *BlobAdapter) Read(v *View, ctx *Context, line string) error {
	v.Buf.Append(buffer.Entry{Kind: classify.DEFAULT, Text: line})
	return nil
}

func (a *BlobAdapter) Draw(v *View, ctx *Context, win term.Window, row int, entry buffer.Entry, isCursor bool) {
	a.Pager.Draw(v, ctx, win, row, entry, isCursor)
}

func (a *BlobAdapter) Enter(v *View, ctx *Context, entry buffer.Entry) reqtype.Request {
	return a.Pager.Enter(v, ctx, entry)
}

func (a *BlobAdapter) Grep(entry buffer.Entry, re *regexp.Regexp) bool {
	return a.Pager.Grep(entry, re)
}
