// Package shellquote implements the argv-forwarding shell quoting of
// spec.md §6: each argv element is enclosed in single quotes, with
// embedded ' and ! escaped so a POSIX shell reconstructs the original
// token (spec.md §8 P6). No ecosystem shell-quoting library in the
// pack matches this exact escaping rule (most quote only ' and leave
// ! alone, which is wrong under a history-expanding shell), so this is
// hand-rolled stdlib string building.
package shellquote

import "strings"

// Quote wraps arg in single quotes, replacing every embedded ' with
// '\'' and every embedded ! with '\!' (spec.md §6).
func Quote(arg string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '\'':
			b.WriteString(`'\''`)
		case '!':
			b.WriteString(`'\!'`)
		default:
			b.WriteByte(arg[i])
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// QuoteArgs quotes every element of args and joins them with spaces,
// ready to append to a command template.
func QuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}
