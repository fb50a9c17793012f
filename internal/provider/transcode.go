// Transcoding support for spec.md §1's optional "byte-stream
// translator between a declared source encoding and the terminal
// encoding", driven by the i18n.commitencoding value spec.md §6 says
// the repo config loader extracts. golang.org/x/text is the
// ecosystem's iconv equivalent; github.com/spkg/bom strips a leading
// BOM the same way pkg/gui/view_helpers.go's cleanString does, since a
// transcoded (or UTF-8-declared-but-BOM-prefixed) blob commonly
// carries one.
package provider

import (
	"github.com/spkg/bom"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Transcoder converts bytes from a declared source encoding into the
// terminal's encoding (always UTF-8 in this module — spec.md doesn't
// ask the core to support a non-UTF-8 terminal, only a non-UTF-8
// content source).
type Transcoder struct {
	decoder *encoding.Decoder
}

// NewTranscoder resolves sourceEncoding (e.g. "ISO-8859-1",
// "Shift_JIS", as extracted from i18n.commitencoding) via
// golang.org/x/text's htmlindex (WHATWG encoding names and labels). A nil Transcoder (ok == false) means
// no transcoding is needed or the named encoding isn't recognized —
// callers should fall back to passing bytes through unchanged, per
// spec.md §1's "optional" framing.
func NewTranscoder(sourceEncoding, terminalEncoding string) (*Transcoder, bool) {
	if sourceEncoding == "" || sourceEncoding == terminalEncoding {
		return nil, false
	}
	enc, err := htmlindex.Get(sourceEncoding)
	if err != nil {
		return nil, false
	}
	return &Transcoder{decoder: enc.NewDecoder()}, true
}

// Transcode converts one line's bytes and strips a leading BOM, as
// pkg/gui/view_helpers.go's cleanString does for every line before it
// reaches a content adapter's read (spec.md §4.5's "optionally
// transcode each line").
func (t *Transcoder) Transcode(line []byte) string {
	out, err := t.decoder.Bytes(line)
	if err != nil {
		// malformed byte for the declared encoding: pass the raw bytes
		// through rather than failing the whole load (spec.md §7's
		// "malformed record" is recoverable, not fatal).
		out = line
	}
	return string(bom.Clean(out))
}
