package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFatalWrapsWithStack(t *testing.T) {
	err := Fatal(errors.New("boom"))
	require := assert.New(t)
	require.Error(err)
	require.Contains(err.Error(), "boom")
}

func TestFatalNilPassesThrough(t *testing.T) {
	assert.Nil(t, Fatal(nil))
}

func TestRecoverableChainsMessage(t *testing.T) {
	err := Recoverable("loading main view", errors.New("broken pipe"))
	assert.Contains(t, err.Error(), "loading main view")
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestUserConfigIncludesLineNumber(t *testing.T) {
	err := UserConfig(12, errors.New("bad color name"))
	assert.Contains(t, err.Error(), "line 12")
}

func TestKnownMapsNotARepository(t *testing.T) {
	msg, ok := Known(errors.New("fatal: not a git repository (or any of the parent directories)"))
	assert.True(t, ok)
	assert.Contains(t, msg, "not a git repository")
}

func TestKnownReturnsFalseForUnmappedError(t *testing.T) {
	_, ok := Known(errors.New("something unrelated went wrong"))
	assert.False(t, ok)
}
