package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsAttachedDigitSetsInterval(t *testing.T) {
	s, err := ParseArgs([]string{"-n5"})
	require.NoError(t, err)
	assert.True(t, s.ShowLineNumber)
	assert.Equal(t, 5, s.LineNumberInterval)
}

func TestParseArgsSeparateDigitLeftUntouched(t *testing.T) {
	s, err := ParseArgs([]string{"-n", "5"})
	require.NoError(t, err)
	assert.True(t, s.ShowLineNumber)
	assert.Equal(t, 1, s.LineNumberInterval) // default, NOT 5
	assert.Equal(t, []string{"5"}, s.Args)   // "5" forwarded untouched
}

func TestParseArgsBareDashN(t *testing.T) {
	s, err := ParseArgs([]string{"-n"})
	require.NoError(t, err)
	assert.True(t, s.ShowLineNumber)
	assert.Equal(t, 1, s.LineNumberInterval)
}

func TestParseArgsTabSizeCapped(t *testing.T) {
	s, err := ParseArgs([]string{"-b20"})
	require.NoError(t, err)
	assert.Equal(t, 8, s.TabSize)
}

func TestParseArgsStartViewFlags(t *testing.T) {
	s, err := ParseArgs([]string{"-l"})
	require.NoError(t, err)
	assert.Equal(t, "log", s.StartView)

	s, err = ParseArgs([]string{"-d"})
	require.NoError(t, err)
	assert.Equal(t, "diff", s.StartView)
}

func TestParseArgsPositionalForwardsRemainder(t *testing.T) {
	s, err := ParseArgs([]string{"show", "HEAD~3", "--stat"})
	require.NoError(t, err)
	assert.Equal(t, "show", s.StartView)
	assert.Equal(t, []string{"HEAD~3", "--stat"}, s.Args)
}

func TestParseArgsDoubleDashForwardsRemainder(t *testing.T) {
	s, err := ParseArgs([]string{"-l", "--", "-x", "--weird"})
	require.NoError(t, err)
	assert.Equal(t, "log", s.StartView)
	assert.Equal(t, []string{"-x", "--weird"}, s.Args)
}

func TestParseArgsVersionShortCircuits(t *testing.T) {
	s, err := ParseArgs([]string{"-v", "log"})
	require.NoError(t, err)
	assert.True(t, s.ShowVersion)
}

func TestParseArgsUnknownOptionErrors(t *testing.T) {
	_, err := ParseArgs([]string{"--not-a-real-flag"})
	assert.Error(t, err)
}

func TestParseArgsLongLineNumberWithValue(t *testing.T) {
	s, err := ParseArgs([]string{"--line-number=3"})
	require.NoError(t, err)
	assert.True(t, s.ShowLineNumber)
	assert.Equal(t, 3, s.LineNumberInterval)
}
