package config

import (
	"os"
	"testing"

	"github.com/optionalg/tig/internal/provider"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/optionalg/tig/internal/view"
	"github.com/stretchr/testify/assert"
)

func TestApplyViewEnvOverridesSetsCommandOverride(t *testing.T) {
	os.Setenv("TIG_MAIN_CMD", "log --oneline")
	defer os.Unsetenv("TIG_MAIN_CMD")

	main := view.New("main", view.SourceHead, provider.MainTemplate, nil, reqtype.MAIN, ".")
	views := map[string]*view.View{"main": main}

	ApplyViewEnvOverrides(views)

	assert.Equal(t, "log --oneline", main.CommandOverride)
}

func TestApplyViewEnvOverridesLeavesUnsetViewsAlone(t *testing.T) {
	diff := view.New("diff", view.SourceCommit, provider.DiffTemplate, nil, reqtype.DIFF, ".")
	views := map[string]*view.View{"diff": diff}

	ApplyViewEnvOverrides(views)

	assert.Empty(t, diff.CommandOverride)
}
