// Per-view environment overrides (spec.md §6: "Per-view env overrides
// (named TIG_<VIEW>_CMD) replace the default command template").
// TIG_LS_REMOTE is handled directly in internal/provider.LoadRefs,
// since it overrides the ref enumerator rather than a View.
package config

import (
	"os"
	"strings"

	"github.com/optionalg/tig/internal/view"
)

// ApplyViewEnvOverrides sets View.CommandOverride from
// TIG_<NAME>_CMD for every view in views whose env var is set, where
// NAME is the view's Name upper-cased (e.g. TIG_MAIN_CMD,
// TIG_DIFF_CMD, TIG_LOG_CMD, TIG_TREE_CMD, TIG_BLOB_CMD).
func ApplyViewEnvOverrides(views map[string]*view.View) {
	for name, v := range views {
		envName := "TIG_" + strings.ToUpper(name) + "_CMD"
		if override := os.Getenv(envName); override != "" {
			v.CommandOverride = override
		}
	}
}
