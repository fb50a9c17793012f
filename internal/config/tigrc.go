// `.tigrc` line-oriented config parsing (spec.md §6): `color`,
// `set`, and `bind` commands. Field/enum names are matched
// case-insensitively with `-`, `_`, `.` treated as equivalent
// separators, and a `set <name> = <value>` line's dotted name is
// resolved against Settings by reflection via
// github.com/mcuadros/go-lookup, the same dynamic-field-lookup role
// it plays elsewhere in the pack, rather than a hand-maintained
// switch per field.
package config

import (
	"bufio"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/imdario/mergo"
	lookup "github.com/mcuadros/go-lookup"
	"github.com/optionalg/tig/internal/apperrors"
	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/dispatch"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/term"
	"github.com/optionalg/tig/internal/view"
)

// normalize lowercases s and strips -, _, . so "diff-header",
// "diff_header", "diff.header" and "DIFF_HEADER" all compare equal
// (spec.md §6).
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", "", "_", "", ".", "").Replace(s)
	return s
}

// settingsFieldNames maps a normalized `set` name to its Settings
// struct field name, the dotted path go-lookup resolves by
// reflection.
var settingsFieldNames = map[string]string{
	normalize("show-rev-graph"):        "ShowRevGraph",
	normalize("line-number-interval"):  "LineNumberInterval",
	normalize("tab-size"):              "TabSize",
	normalize("commit-encoding"):       "CommitEncoding",
}

var colorByName = map[string]color.Attribute{
	normalize("DEFAULT"): 0,
	normalize("BLACK"):   color.FgBlack,
	normalize("RED"):     color.FgRed,
	normalize("GREEN"):   color.FgGreen,
	normalize("YELLOW"):  color.FgYellow,
	normalize("BLUE"):    color.FgBlue,
	normalize("MAGENTA"): color.FgMagenta,
	normalize("CYAN"):    color.FgCyan,
	normalize("WHITE"):   color.FgWhite,
}

var bgColorByName = map[string]color.Attribute{
	normalize("DEFAULT"): 0,
	normalize("BLACK"):   color.BgBlack,
	normalize("RED"):     color.BgRed,
	normalize("GREEN"):   color.BgGreen,
	normalize("YELLOW"):  color.BgYellow,
	normalize("BLUE"):    color.BgBlue,
	normalize("MAGENTA"): color.BgMagenta,
	normalize("CYAN"):    color.BgCyan,
	normalize("WHITE"):   color.BgWhite,
}

// namedKeys maps a .tigrc bind line's named key token to a term.Key;
// anything not listed here must be a single printable rune instead.
var namedKeys = map[string]term.Key{
	normalize("Enter"):     {Special: "Enter"},
	normalize("Space"):     {Special: "Space"},
	normalize("Backspace"): {Special: "Backspace"},
	normalize("Tab"):       {Special: "Tab"},
	normalize("Escape"):    {Special: "Escape"},
	normalize("Left"):      {Special: "Left"},
	normalize("Right"):     {Special: "Right"},
	normalize("Up"):        {Special: "Up"},
	normalize("Down"):      {Special: "Down"},
	normalize("Home"):      {Special: "Home"},
	normalize("End"):       {Special: "End"},
	normalize("PageUp"):    {Special: "PageUp"},
	normalize("PageDown"):  {Special: "PageDown"},
	normalize("Hash"):      {Special: "Hash"},
}

// LoadTigrc reads path (typically TigrcPath()), applying `color` and
// `bind` lines directly to theme/dispatcher and collecting `set`
// lines into a Settings the caller merges over its defaults. A
// missing file is not an error (spec.md treats an absent `.tigrc` as
// "nothing to load"); per-line errors are returned rather than
// aborting the load, so later valid lines still take effect (spec.md
// §7: "loading continues past the error").
func LoadTigrc(path string, d *dispatch.Dispatcher, theme *view.Theme) (*Settings, []error) {
	overrides := &Settings{}
	if path == "" {
		return overrides, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return overrides, nil
		}
		return overrides, []error{err}
	}
	defer f.Close()

	var errs []error
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := applyLine(line, overrides, d, theme); err != nil {
			errs = append(errs, apperrors.UserConfig(lineNo, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return overrides, errs
}

func applyLine(line string, overrides *Settings, d *dispatch.Dispatcher, theme *view.Theme) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "color":
		return applyColor(fields, theme)
	case "set":
		return applySet(fields, overrides)
	case "bind":
		return applyBind(fields, d)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func applyColor(fields []string, theme *view.Theme) error {
	if len(fields) < 4 {
		return fmt.Errorf("color: expected \"color <kind> <fg> <bg> [attr]\"")
	}
	kind, ok := lookupKind(fields[1])
	if !ok {
		return fmt.Errorf("color: unknown line kind %q", fields[1])
	}
	fg, ok := colorByName[normalize(fields[2])]
	if !ok {
		return fmt.Errorf("color: unknown fg color %q", fields[2])
	}
	bg, ok := bgColorByName[normalize(fields[3])]
	if !ok {
		return fmt.Errorf("color: unknown bg color %q", fields[3])
	}
	attr := term.Attr{FG: fg, BG: bg}
	if len(fields) >= 5 {
		switch normalize(fields[4]) {
		case normalize("NORMAL"), normalize("BLINK"), normalize("STANDOUT"), normalize("UNDERLINE"):
			// accepted but not representable in term.Attr's Bold/Dim/Rev
			// triple; recognized so a valid attr name never reports an
			// unknown-command error.
		case normalize("BOLD"):
			attr.Bold = true
		case normalize("DIM"):
			attr.Dim = true
		case normalize("REVERSE"):
			attr.Rev = true
		default:
			return fmt.Errorf("color: unknown attribute %q", fields[4])
		}
	}
	theme.Set(kind, attr)
	return nil
}

func lookupKind(name string) (classify.LineKind, bool) {
	n := normalize(name)
	for _, k := range classify.AllKinds() {
		if normalize(k.String()) == n {
			return k, true
		}
	}
	return 0, false
}

func applySet(fields []string, overrides *Settings) error {
	if len(fields) < 4 || fields[2] != "=" {
		return fmt.Errorf("set: expected \"set <name> = <value>\"")
	}
	name, value := fields[1], unquote(fields[3])

	fieldName, ok := settingsFieldNames[normalize(name)]
	if !ok {
		return fmt.Errorf("set: unknown setting %q", name)
	}
	target, err := lookup.LookupString(overrides, fieldName)
	if err != nil {
		return fmt.Errorf("set: %q: %w", name, err)
	}
	switch target.Kind() {
	case reflect.Bool:
		target.SetBool(parseBool(value))
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("set: %q: not an integer: %q", name, value)
		}
		target.SetInt(int64(n))
	case reflect.String:
		target.SetString(value)
	default:
		return fmt.Errorf("set: %q: unsupported field type", name)
	}
	return nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// unquote strips a single matching pair of surrounding ' or " quotes
// (spec.md §6: commit-encoding's value "may be single- or
// double-quoted").
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func applyBind(fields []string, d *dispatch.Dispatcher) error {
	if len(fields) != 4 {
		return fmt.Errorf("bind: expected \"bind <keymap> <key> <request>\"")
	}
	keymap, ok := lookupKeymap(fields[1])
	if !ok {
		return fmt.Errorf("bind: unknown keymap %q", fields[1])
	}
	key, ok := lookupKeyName(fields[2])
	if !ok {
		return fmt.Errorf("bind: unknown key %q", fields[2])
	}
	req, ok := lookupRequest(fields[3])
	if !ok {
		return fmt.Errorf("bind: unknown request %q", fields[3])
	}
	d.Bind(keymap, key, req)
	return nil
}

func lookupKeymap(name string) (reqtype.Keymap, bool) {
	n := normalize(name)
	for _, km := range reqtype.AllKeymaps() {
		if normalize(km.String()) == n {
			return km, true
		}
	}
	return reqtype.GENERIC, false
}

func lookupRequest(name string) (reqtype.Request, bool) {
	n := normalize(name)
	for _, r := range reqtype.AllRequests() {
		if normalize(r.String()) == n {
			return r, true
		}
	}
	return reqtype.NONE, false
}

func lookupKeyName(tok string) (term.Key, bool) {
	if k, ok := namedKeys[normalize(tok)]; ok {
		return k, true
	}
	runes := []rune(tok)
	if len(runes) == 1 {
		return term.Key{Rune: runes[0]}, true
	}
	return term.Key{}, false
}

// MergeTigrc folds tigrc-derived overrides onto defaults with
// imdario/mergo, the same merge-user-config-over-defaults role it
// plays in pkg/config/app_config.go — WithOverride since an explicit
// `.tigrc` `set` line always wins over the compiled-in default it's
// overriding.
func MergeTigrc(defaults, overrides *Settings) error {
	return mergo.Merge(defaults, overrides, mergo.WithOverride)
}
