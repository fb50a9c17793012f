// Package dispatch implements spec.md §4.7's request dispatcher: a
// key -> request table scoped per keymap with a GENERIC fallback, plus
// the navigation special-cases (NEXT/PREVIOUS parent redirection,
// VIEW_CLOSE). Grounded on pkg/gui/keybindings.go's Binding struct and
// GetInitialKeybindings' view-scoped-then-global lookup order.
package dispatch

import (
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
	"github.com/samber/lo"
)

// Binding maps one key, scoped to a keymap, to a request (spec.md
// glossary "Keymap").
type Binding struct {
	Keymap  reqtype.Keymap
	Key     term.Key
	Request reqtype.Request
}

// Dispatcher resolves a (keymap, key) pair to a Request: first
// checking user-configured bindings (view-scoped, then GENERIC),
// then the compiled-in default table (spec.md §4.7).
type Dispatcher struct {
	user    map[reqtype.Keymap]map[term.Key]reqtype.Request
	// defaults is scanned in declaration order rather than looked up by
	// map, because spec.md §9's Open Question preserves the original's
	// duplicate 'b' binding (REQ_VIEW_BLOB before REQ_MOVE_PAGE_UP) and
	// its "first match in scan order" resolution — a map could not
	// represent two entries for the same key.
	defaults []Binding
}

// New returns a dispatcher pre-loaded with the compiled-in defaults.
func New() *Dispatcher {
	return &Dispatcher{
		user:     make(map[reqtype.Keymap]map[term.Key]reqtype.Request),
		defaults: defaultBindings(),
	}
}

// Bind installs (or overrides) a user binding, e.g. from a `.tigrc`
// `bind` line (spec.md §6). Later calls for the same (keymap, key)
// replace earlier ones — an explicit `bind` command always means what
// it most recently said, unlike the compiled-in table's deliberate
// duplicate.
func (d *Dispatcher) Bind(keymap reqtype.Keymap, key term.Key, req reqtype.Request) {
	if d.user[keymap] == nil {
		d.user[keymap] = make(map[term.Key]reqtype.Request)
	}
	d.user[keymap][key] = req
}

// Resolve maps key (scoped to keymap) to a Request: user bindings for
// keymap, then user bindings for GENERIC, then the compiled-in
// default table (one scan for the first entry, in declaration order,
// whose keymap is either keymap or GENERIC), else NONE.
func (d *Dispatcher) Resolve(keymap reqtype.Keymap, key term.Key) reqtype.Request {
	if m, ok := d.user[keymap]; ok {
		if r, ok := m[key]; ok {
			return r
		}
	}
	if keymap != reqtype.GENERIC {
		if m, ok := d.user[reqtype.GENERIC]; ok {
			if r, ok := m[key]; ok {
				return r
			}
		}
	}
	// lo.Find preserves d.defaults' declaration order (it scans
	// the slice linearly, unlike a map), which is exactly what spec.md
	// §9's duplicate 'b' binding requires: the first entry matching key
	// wins, the second is never reached.
	match, found := lo.Find(d.defaults, func(b Binding) bool {
		return b.Key == key && (b.Keymap == keymap || b.Keymap == reqtype.GENERIC)
	})
	if !found {
		return reqtype.NONE
	}
	return match.Request
}

func k(r rune) term.Key            { return term.Key{Rune: r} }
func special(name string) term.Key { return term.Key{Special: name} }

func keyLabel(key term.Key) string {
	if key.Special != "" {
		return key.Special
	}
	return string(key.Rune)
}

// Cheatsheet renders the compiled-in default table as "key  request"
// lines, help-view content generated from the live binding table
// rather than a static string, the way the teacher's
// pkg/cheatsheet/generate.go derives its keybindings doc from
// pkg/gui's actual binding structs instead of hand-maintaining one.
func (d *Dispatcher) Cheatsheet() []string {
	lines := make([]string, 0, len(d.defaults))
	for _, b := range d.defaults {
		lines = append(lines, keyLabel(b.Key)+"\t"+b.Request.String()+"\t"+b.Keymap.String())
	}
	return lines
}

// defaultBindings is tig's traditional compiled-in table, scoped per
// keymap with a GENERIC fallback section. The two 'b' entries are
// intentional (spec.md §9 Open Question): both are GENERIC, and the
// earlier 'b' entry (open the blob view) shadows the later "page up"
// binding for 'b' — scan order, not map semantics, decides the
// winner.
func defaultBindings() []Binding {
	return []Binding{
		// generic navigation
		{reqtype.GENERIC, k('j'), reqtype.MOVE_DOWN},
		{reqtype.GENERIC, special("Down"), reqtype.MOVE_DOWN},
		{reqtype.GENERIC, k('k'), reqtype.MOVE_UP},
		{reqtype.GENERIC, special("Up"), reqtype.MOVE_UP},
		{reqtype.GENERIC, special("PageDown"), reqtype.MOVE_PAGE_DOWN},
		{reqtype.GENERIC, special("PageUp"), reqtype.MOVE_PAGE_UP},
		{reqtype.GENERIC, k('d'), reqtype.MOVE_HALF_PAGE_DOWN},
		{reqtype.GENERIC, k('u'), reqtype.MOVE_HALF_PAGE_UP},
		{reqtype.GENERIC, special("Home"), reqtype.MOVE_FIRST_LINE},
		{reqtype.GENERIC, k('g'), reqtype.MOVE_FIRST_LINE},
		{reqtype.GENERIC, special("End"), reqtype.MOVE_LAST_LINE},
		{reqtype.GENERIC, k('G'), reqtype.MOVE_LAST_LINE},
		{reqtype.GENERIC, special("Left"), reqtype.SCROLL_LEFT},
		{reqtype.GENERIC, special("Right"), reqtype.SCROLL_RIGHT},

		{reqtype.GENERIC, special("Tab"), reqtype.VIEW_NEXT},
		{reqtype.GENERIC, special("Enter"), reqtype.ENTER},
		// NEXT/PREVIOUS are the parent-redirecting commit-navigation
		// requests of spec.md §4.7 ("when the current view is diff
		// whose parent is main ... redirect the move to the parent
		// view"), distinct from plain MOVE_UP/MOVE_DOWN.
		{reqtype.GENERIC, k('>'), reqtype.NEXT},
		{reqtype.GENERIC, k('<'), reqtype.PREVIOUS},
		{reqtype.GENERIC, special("Escape"), reqtype.VIEW_CLOSE},
		{reqtype.GENERIC, k('q'), reqtype.VIEW_CLOSE},
		{reqtype.GENERIC, k('Q'), reqtype.QUIT},

		{reqtype.GENERIC, k('/'), reqtype.SEARCH},
		{reqtype.GENERIC, k('?'), reqtype.SEARCH_BACK},
		{reqtype.GENERIC, k('n'), reqtype.FIND_NEXT},
		{reqtype.GENERIC, k('N'), reqtype.FIND_PREV},

		{reqtype.GENERIC, special("Hash"), reqtype.TOGGLE_LINENO},
		{reqtype.GENERIC, k('|'), reqtype.TOGGLE_REV_GRAPH},

		{reqtype.GENERIC, k(':'), reqtype.PROMPT},
		{reqtype.GENERIC, k('z'), reqtype.STOP_LOADING},
		{reqtype.GENERIC, special("Ctrl+L"), reqtype.SCREEN_REDRAW},
		{reqtype.GENERIC, k('v'), reqtype.SHOW_VERSION},

		// view-opening
		{reqtype.GENERIC, k('m'), reqtype.VIEW_MAIN},
		{reqtype.GENERIC, k('D'), reqtype.VIEW_DIFF},
		{reqtype.GENERIC, k('L'), reqtype.VIEW_LOG},
		{reqtype.GENERIC, k('t'), reqtype.VIEW_TREE},
		{reqtype.GENERIC, k('H'), reqtype.VIEW_HELP},

		// The deliberate duplicate (spec.md §9 Open Question): the
		// original default table binds 'b' to both REQ_VIEW_BLOB and
		// REQ_MOVE_PAGE_UP in the same (generic) scope. Declaration
		// order, not map semantics, decides the winner, so VIEW_BLOB
		// always fires and the MOVE_PAGE_UP entry below is effectively
		// dead — preserved verbatim rather than removed, per spec.md's
		// "preserve this but document" instruction.
		{reqtype.GENERIC, k('b'), reqtype.VIEW_BLOB},
		{reqtype.GENERIC, k('b'), reqtype.MOVE_PAGE_UP},
	}
}
