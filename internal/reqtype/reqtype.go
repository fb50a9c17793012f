// Package reqtype defines the Request enum spec.md §4.7 describes —
// the user-intent values the dispatcher maps a key to and that a
// content adapter's Enter can itself produce (e.g. opening a diff
// split). It is a standalone package so internal/view (whose adapters
// return a Request from Enter) and internal/dispatch (whose keymaps
// produce one from a keystroke) can both depend on it without a cycle
// between view and dispatch.
package reqtype

// Request is a closed enumeration of user intents (spec.md §4.7).
type Request int

const (
	NONE Request = iota

	// view opening — one per view kind (spec.md §4.7 "each view has a code")
	VIEW_MAIN
	VIEW_DIFF
	VIEW_LOG
	VIEW_TREE
	VIEW_BLOB
	VIEW_PAGER
	VIEW_HELP

	// view navigation
	NEXT
	PREVIOUS
	ENTER
	VIEW_NEXT
	VIEW_CLOSE
	QUIT

	// cursor moves
	MOVE_UP
	MOVE_DOWN
	MOVE_PAGE_UP
	MOVE_PAGE_DOWN
	MOVE_HALF_PAGE_UP
	MOVE_HALF_PAGE_DOWN
	MOVE_FIRST_LINE
	MOVE_LAST_LINE

	// horizontal scroll (SPEC_FULL.md §5 supplemented feature)
	SCROLL_LEFT
	SCROLL_RIGHT

	// search
	SEARCH
	SEARCH_BACK
	FIND_NEXT
	FIND_PREV

	// toggles
	TOGGLE_LINENO
	TOGGLE_REV_GRAPH

	PROMPT
	STOP_LOADING
	SCREEN_REDRAW
	SCREEN_RESIZE
	SHOW_VERSION
)

// String names a Request for cheatsheet generation and diagnostics.
func (r Request) String() string {
	names := map[Request]string{
		NONE: "NONE", VIEW_MAIN: "VIEW_MAIN", VIEW_DIFF: "VIEW_DIFF",
		VIEW_LOG: "VIEW_LOG", VIEW_TREE: "VIEW_TREE", VIEW_BLOB: "VIEW_BLOB",
		VIEW_PAGER: "VIEW_PAGER", VIEW_HELP: "VIEW_HELP",
		NEXT: "NEXT", PREVIOUS: "PREVIOUS", ENTER: "ENTER",
		VIEW_NEXT: "VIEW_NEXT", VIEW_CLOSE: "VIEW_CLOSE", QUIT: "QUIT",
		MOVE_UP: "MOVE_UP", MOVE_DOWN: "MOVE_DOWN",
		MOVE_PAGE_UP: "MOVE_PAGE_UP", MOVE_PAGE_DOWN: "MOVE_PAGE_DOWN",
		MOVE_HALF_PAGE_UP: "MOVE_HALF_PAGE_UP", MOVE_HALF_PAGE_DOWN: "MOVE_HALF_PAGE_DOWN",
		MOVE_FIRST_LINE: "MOVE_FIRST_LINE", MOVE_LAST_LINE: "MOVE_LAST_LINE",
		SCROLL_LEFT: "SCROLL_LEFT", SCROLL_RIGHT: "SCROLL_RIGHT",
		SEARCH: "SEARCH", SEARCH_BACK: "SEARCH_BACK",
		FIND_NEXT: "FIND_NEXT", FIND_PREV: "FIND_PREV",
		TOGGLE_LINENO: "TOGGLE_LINENO", TOGGLE_REV_GRAPH: "TOGGLE_REV_GRAPH",
		PROMPT: "PROMPT", STOP_LOADING: "STOP_LOADING",
		SCREEN_REDRAW: "SCREEN_REDRAW", SCREEN_RESIZE: "SCREEN_RESIZE",
		SHOW_VERSION: "SHOW_VERSION",
	}
	if n, ok := names[r]; ok {
		return n
	}
	return "UNKNOWN"
}

// AllRequests enumerates every declared Request, used by
// internal/config to build the reverse name->Request lookup a .tigrc
// `bind` line needs (spec.md §6).
func AllRequests() []Request {
	return []Request{
		VIEW_MAIN, VIEW_DIFF, VIEW_LOG, VIEW_TREE, VIEW_BLOB, VIEW_PAGER, VIEW_HELP,
		NEXT, PREVIOUS, ENTER, VIEW_NEXT, VIEW_CLOSE, QUIT,
		MOVE_UP, MOVE_DOWN, MOVE_PAGE_UP, MOVE_PAGE_DOWN,
		MOVE_HALF_PAGE_UP, MOVE_HALF_PAGE_DOWN, MOVE_FIRST_LINE, MOVE_LAST_LINE,
		SCROLL_LEFT, SCROLL_RIGHT,
		SEARCH, SEARCH_BACK, FIND_NEXT, FIND_PREV,
		TOGGLE_LINENO, TOGGLE_REV_GRAPH,
		PROMPT, STOP_LOADING, SCREEN_REDRAW, SCREEN_RESIZE, SHOW_VERSION,
	}
}

// AllKeymaps enumerates every view-scoped keymap plus GENERIC, for the
// same reverse-lookup purpose as AllRequests.
func AllKeymaps() []Keymap {
	return []Keymap{GENERIC, MAIN, DIFF, LOG, TREE, BLOB, PAGER, HELP}
}

// Keymap names the seven view-scoped keymaps plus GENERIC
// (spec.md glossary).
type Keymap int

const (
	GENERIC Keymap = iota
	MAIN
	DIFF
	LOG
	TREE
	BLOB
	PAGER
	HELP
)

func (k Keymap) String() string {
	switch k {
	case MAIN:
		return "MAIN"
	case DIFF:
		return "DIFF"
	case LOG:
		return "LOG"
	case TREE:
		return "TREE"
	case BLOB:
		return "BLOB"
	case PAGER:
		return "PAGER"
	case HELP:
		return "HELP"
	default:
		return "GENERIC"
	}
}
