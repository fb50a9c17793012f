package view

import "github.com/optionalg/tig/internal/textwidth"

// RenderConfig holds the subset of Settings (internal/config) that
// adapters consult while drawing: it is shared (one pointer) across
// every view so that TOGGLE_LINENO/TOGGLE_REV_GRAPH and a `.tigrc`
// `set` command take effect on already-open views immediately,
// matching spec.md §4.7's toggle requests and §4.4's "honoring
// line-number prefix ... tab expansion" draw rule.
type RenderConfig struct {
	Theme *Theme

	TabSize            int
	LineNumberInterval int
	ShowLineNumber     bool
	ShowRevGraph       bool
}

// NewRenderConfig returns tig's traditional defaults: tab size 8, line
// number interval 1, line numbers and the rev-graph off.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		Theme:              DefaultTheme(),
		TabSize:            8,
		LineNumberInterval: 1,
	}
}

// expandTabs replaces each tab with enough spaces to reach the next
// stop of width cfg.TabSize (falling back to the hardware default of
// 8 when cfg or TabSize is unset, spec.md §4.4).
func expandTabs(s string, tabSize int) string {
	if tabSize <= 0 {
		tabSize = 8
	}
	if !containsTab(s) {
		return s
	}
	var b []byte
	col := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			n := tabSize - (col % tabSize)
			for j := 0; j < n; j++ {
				b = append(b, ' ')
			}
			col += n
		} else {
			b = append(b, s[i])
			col++
		}
	}
	return string(b)
}

func containsTab(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			return true
		}
	}
	return false
}

// lineNumberPrefix formats the line-number gutter text for row lineno
// (1-based) against a buffer of the given digit width, or "" if line
// numbers are disabled or this row isn't on the configured interval
// (spec.md §4.4: "every num_interval lines or on line 1").
func lineNumberPrefix(cfg *RenderConfig, lineno, digits int) string {
	if cfg == nil || !cfg.ShowLineNumber {
		return ""
	}
	interval := cfg.LineNumberInterval
	if interval <= 0 {
		interval = 1
	}
	if lineno != 1 && lineno%interval != 0 {
		return pad("", digits+1)
	}
	return padNum(lineno, digits) + " "
}

// hscrollText drops the leading offset terminal columns from s, using
// the same UTF-8 column-fitting table internal/textwidth's Fit uses
// for the inverse (fit-to-width) operation, so a horizontally
// scrolled row's bytes stay aligned to code point boundaries (SPEC_FULL.md
// §5's left_offset feature).
func hscrollText(s string, offset int) string {
	if offset <= 0 {
		return s
	}
	skip, _, _ := textwidth.Fit([]byte(s), offset)
	if skip >= len(s) {
		return ""
	}
	return s[skip:]
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func padNum(n, width int) string {
	s := itoa(n)
	for len(s) < width {
		s = " " + s
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
