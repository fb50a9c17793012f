// Package config produces the Settings value spec.md §6 describes:
// CLI flags, `$HOME/.tigrc` overrides, and per-view environment
// variables, merged in that precedence order. Grounded on
// pkg/config/app_config.go's NewAppConfig (defaults struct, merged
// with a user file, XDG config dir) and pkg/config/user_config.go's
// field-by-dotted-name `set` handling, generalized from lazydocker's
// YAML document to tig's line-oriented `.tigrc`.
package config

import (
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// Settings is the complete set of tunables spec.md §6 names: render
// options a `.tigrc` `set` command can change, plus the CLI's initial
// view selection and forwarded upstream args.
type Settings struct {
	StartView string `yaml:"startView,omitempty"` // "", "log", "diff", or "show"

	ShowLineNumber     bool   `yaml:"showLineNumber,omitempty"`
	LineNumberInterval int    `yaml:"lineNumberInterval,omitempty"`
	TabSize            int    `yaml:"tabSize,omitempty"`
	ShowRevGraph       bool   `yaml:"showRevGraph,omitempty"`
	CommitEncoding     string `yaml:"commitEncoding,omitempty"`

	Debug bool `yaml:"debug,omitempty"`

	// Args are the upstream-command arguments forwarded verbatim after
	// "--", or after a leading log/diff/show positional (spec.md §6).
	Args []string `yaml:"args,omitempty"`

	ShowVersion bool `yaml:"-"`
	ShowHelp    bool `yaml:"-"`
	DumpConfig  bool `yaml:"-"`
}

// Default returns tig's traditional defaults: tab size 8, line-number
// interval 1, line numbers and the rev-graph off.
func Default() *Settings {
	return &Settings{
		TabSize:            8,
		LineNumberInterval: 1,
	}
}

// ConfigDir locates this program's XDG config directory (only used
// for the debug log in this module; the config file itself is the
// literal $HOME/.tigrc path spec.md §6 names, not an XDG path).
func ConfigDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	dirs := xdg.New("", "tig")
	return dirs.ConfigHome()
}

// TigrcPath returns $HOME/.tigrc, or "" if HOME isn't set.
func TigrcPath() string {
	home := os.Getenv("HOME")
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".tigrc")
}

// Dump renders s as YAML for the --dump-config diagnostic flag
// (SPEC_FULL.md §3), the same role the teacher's -c/--config flag
// plays for its default UserConfig.
func Dump(s *Settings) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
