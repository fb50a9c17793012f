package view

import (
	"github.com/fatih/color"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/term"
)

// Theme maps each LineKind to its fg/bg/attribute triple (spec.md §3:
// "mutable at configuration load time and frozen thereafter").
// Grounded on pkg/gui/theme.go's colour-by-purpose table, generalized
// from a fixed panel palette to the full LineKind enumeration.
type Theme struct {
	attrs map[classify.LineKind]term.Attr
}

// DefaultTheme returns tig's traditional default palette.
func DefaultTheme() *Theme {
	t := &Theme{attrs: map[classify.LineKind]term.Attr{
		classify.DEFAULT:     {FG: color.FgWhite},
		classify.DIFF_HEADER: {FG: color.FgYellow, Bold: true},
		classify.DIFF_CHUNK:  {FG: color.FgCyan},
		classify.DIFF_ADD:    {FG: color.FgGreen},
		classify.DIFF_DEL:    {FG: color.FgRed},
		classify.DIFF_STAT:   {FG: color.FgBlue},

		classify.PP_AUTHOR: {FG: color.FgGreen},
		classify.PP_COMMIT:  {FG: color.FgYellow},
		classify.PP_MERGE:   {FG: color.FgMagenta},
		classify.PP_DATE:    {FG: color.FgYellow},
		classify.PP_REFS:    {FG: color.FgCyan},

		classify.COMMIT:    {FG: color.FgYellow},
		classify.PARENT:    {FG: color.FgWhite, Dim: true},
		classify.TREE:      {FG: color.FgWhite, Dim: true},
		classify.AUTHOR:    {FG: color.FgGreen},
		classify.COMMITTER: {FG: color.FgGreen, Dim: true},

		classify.CURSOR:      {FG: color.FgBlack, BG: color.BgWhite, Rev: true},
		classify.STATUS:      {FG: color.FgWhite, BG: color.BgBlue},
		classify.TITLE_BLUR:  {FG: color.FgBlack, BG: color.BgWhite},
		classify.TITLE_FOCUS: {FG: color.FgWhite, BG: color.BgBlue, Bold: true},

		classify.MAIN_DATE:   {FG: color.FgBlue},
		classify.MAIN_AUTHOR: {FG: color.FgGreen},
		classify.MAIN_COMMIT: {FG: color.FgWhite},
		classify.MAIN_DELIM:  {FG: color.FgWhite, Dim: true},
		classify.MAIN_TAG:    {FG: color.FgMagenta, Bold: true},
		classify.MAIN_REF:    {FG: color.FgCyan, Bold: true},

		classify.TREE_DIR:  {FG: color.FgBlue, Bold: true},
		classify.TREE_FILE: {FG: color.FgWhite},
	}}
	return t
}

// Attr returns kind's attribute triple, or the DEFAULT entry if kind
// has no explicit mapping.
func (t *Theme) Attr(kind classify.LineKind) term.Attr {
	if a, ok := t.attrs[kind]; ok {
		return a
	}
	return t.attrs[classify.DEFAULT]
}

// Set overrides kind's triple; used by internal/config's `color`
// command while loading .tigrc. Must not be called after the config
// load completes (spec.md §3: "frozen thereafter").
func (t *Theme) Set(kind classify.LineKind, a term.Attr) {
	t.attrs[kind] = a
}
