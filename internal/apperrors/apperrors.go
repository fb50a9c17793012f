// Package apperrors implements spec.md §7's error taxonomy: fatal
// initialization failures get a captured stack trace so the debug log
// can show where they originated, while recoverable/user errors get
// lightweight message chaining since they are expected and only ever
// reach the status line or a config-load summary. Grounded on
// pkg/app/app.go's KnownError mapping table and the teacher's
// go-errors/errors use throughout pkg/gui and pkg/commands for the
// fatal side.
package apperrors

import (
	"strings"

	goerrors "github.com/go-errors/errors"
	"golang.org/x/xerrors"

	"github.com/optionalg/tig/internal/i18n"
)

// Fatal wraps a terminal-init, ref-load, not-a-repo, or OOM error
// (spec.md §7 "Fatal init") with a captured stack trace, so the debug
// log can show the call path before the process exits 1.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return goerrors.Wrap(err, 1)
}

// Recoverable wraps a pipe/spawn/malformed-record/OOM-while-streaming
// error (spec.md §7 "Recoverable load") with plain message chaining —
// no stack, since the caller surfaces it on a status line rather than
// a debug log and a trace would only add noise.
func Recoverable(context string, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("%s: %w", context, err)
}

// UserConfig wraps a malformed .tigrc line (spec.md §7 "User/config")
// with its line number, the same chaining style as Recoverable.
func UserConfig(line int, err error) error {
	if err == nil {
		return nil
	}
	return xerrors.Errorf("line %d: %w", line, err)
}

// mapping pairs a substring of an underlying error's message with the
// friendlier text KnownError returns instead of a raw stack trace.
type mapping struct {
	substr  string
	message string
}

var knownMappings = func() []mapping {
	tr := i18n.NewTranslationSet()
	return []mapping{
		{"not a git repository", tr.NotARepository},
		{"permission denied", tr.PermissionDenied},
		{"no such file or directory", tr.RepoPathMissing},
	}
}()

// Known reports whether err matches one of the known fatal-error
// substrings (spec.md §7's "printing a one-line message to stderr"
// rule), returning the friendlier message in place of a raw stack
// dump. Mirrors the teacher's App.KnownError.
func Known(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range knownMappings {
		if strings.Contains(msg, m.substr) {
			return m.message, true
		}
	}
	return "", false
}
