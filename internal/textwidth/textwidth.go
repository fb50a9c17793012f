// Package textwidth implements the UTF-8 column-fitting algorithm of
// spec.md §4.3 and §9. This is a core, normative algorithm of the
// specification (exact byte-length table, exact Unicode width ranges,
// exact correction semantics) and is therefore hand-written rather
// than delegated to a library: no third-party "fit N columns, tell me
// how many trailing bytes are invisible" function exists with this
// shape in the pack. github.com/mattn/go-runewidth (wired in
// internal/display) covers generic string-width needs elsewhere, but
// its API doesn't expose the byte-length / col-offset-delta / trimmed
// triple this function's callers (internal/view) depend on.
package textwidth

// firstByteLen maps a UTF-8 first byte to its encoded length (1..6).
// Illegal first bytes (continuation bytes, or bytes that can't start a
// valid sequence) decode as length 1, per spec.md §4.3.
var firstByteLen = func() [256]int8 {
	var t [256]int8
	for i := range t {
		switch {
		case i&0x80 == 0x00: // 0xxxxxxx
			t[i] = 1
		case i&0xE0 == 0xC0: // 110xxxxx
			t[i] = 2
		case i&0xF0 == 0xE0: // 1110xxxx
			t[i] = 3
		case i&0xF8 == 0xF0: // 11110xxx
			t[i] = 4
		case i&0xFC == 0xF8: // 111110xx
			t[i] = 5
		case i&0xFE == 0xFC: // 1111110x
			t[i] = 6
		default: // continuation byte or invalid leader
			t[i] = 1
		}
	}
	return t
}()

// wideRanges are the CJK/fullwidth ranges from spec.md §9 whose code
// points occupy 2 terminal columns.
var wideRanges = [][2]rune{
	{0x1100, 0x115F},
	{0x2329, 0x2329},
	{0x232A, 0x232A},
	{0x2E80, 0xA4CF}, // excl. 0x303F, handled specially below
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE30, 0xFE6F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x20000, 0x2FFFD},
	{0x30000, 0x3FFFD},
}

func runeWidth(r rune) int {
	if r == 0x303F {
		return 1
	}
	for _, rg := range wideRanges {
		if r >= rg[0] && r <= rg[1] {
			return 2
		}
	}
	if r > 0xFFFF {
		// outside the explicit high-plane wide ranges: collapses to 0
		// and terminates fitting, per spec.md §4.3.
		return 0
	}
	return 1
}

// decode reads one code point starting at bytes[0] using the
// first-byte length table. It returns the decoded rune (best-effort —
// malformed continuation bytes still consume the declared length so
// fitting can keep making forward progress) and the number of bytes
// consumed.
func decode(b []byte) (rune, int) {
	n := int(firstByteLen[b[0]])
	if n > len(b) {
		n = len(b)
	}
	if n == 1 {
		return rune(b[0]), 1
	}
	r := rune(b[0] & (0xFF >> uint(n+1)))
	for i := 1; i < n; i++ {
		if i >= len(b) {
			return r, i
		}
		r = r<<6 | rune(b[i]&0x3F)
	}
	return r, n
}

// Fit computes the prefix of bytes that fits within maxCols terminal
// columns, per spec.md §4.3:
//   - byteLen: the number of bytes in the accepted prefix (always a
//     valid code point boundary — P7).
//   - colOffsetDelta: the number of "invisible" bytes callers must
//     skip when aligning — the running sum of (bytesPerCP - width)
//     over accepted code points.
//   - trimmed: true iff at least one code point was rejected for
//     exceeding the column budget.
//
// Code points above U+FFFF that do not fall in the explicit wide
// ranges collapse to width 0 and terminate fitting immediately (not
// accepted, not counted) — this mirrors the "collapse to 0 and
// terminate" rule in spec.md §4.3.
func Fit(b []byte, maxCols int) (byteLen int, colOffsetDelta int, trimmed bool) {
	cols := 0
	pos := 0

	for pos < len(b) {
		r, n := decode(b[pos:])
		w := runeWidth(r)

		// a code point that collapses to width 0 (an unhandled high
		// plane code point, spec.md §4.3) is rejected and fitting
		// terminates, same as one that would overflow the budget.
		if w == 0 || cols+w > maxCols {
			trimmed = true
			return pos, colOffsetDelta, trimmed
		}

		cols += w
		colOffsetDelta += n - w
		pos += n
	}

	return pos, colOffsetDelta, false
}
