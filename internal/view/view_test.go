package view

import (
	"testing"

	"github.com/optionalg/tig/internal/buffer"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/stretchr/testify/assert"
)

func TestNewBuildsAnEmptyView(t *testing.T) {
	v := New("main", SourceHead, nil, nil, reqtype.MAIN, "/repo")
	assert.Equal(t, "main", v.Name)
	assert.Equal(t, SourceHead, v.IDSource)
	assert.Equal(t, reqtype.MAIN, v.Keymap)
	assert.Equal(t, "/repo", v.WorkDir)
	assert.Equal(t, 0, v.Buf.Len())
}

func TestNeedsReloadComparesVidAgainstResolvedSource(t *testing.T) {
	v := New("main", SourceHead, nil, nil, reqtype.MAIN, ".")
	ctx := &Context{Head: "abc"}

	assert.True(t, v.NeedsReload(ctx))

	v.Vid = "abc"
	assert.False(t, v.NeedsReload(ctx))

	ctx.Head = "def"
	assert.True(t, v.NeedsReload(ctx))
}

func TestClampCollapsesToZeroOnEmptyBuffer(t *testing.T) {
	v := New("log", SourceCommit, nil, nil, reqtype.LOG, ".")
	v.Port.Offset, v.Port.LineNo = 5, 5

	v.Clamp()

	assert.Equal(t, 0, v.Port.Offset)
	assert.Equal(t, 0, v.Port.LineNo)
}

func TestClampKeepsLineNoWithinBufferBounds(t *testing.T) {
	v := New("log", SourceCommit, nil, nil, reqtype.LOG, ".")
	for i := 0; i < 3; i++ {
		v.Buf.Append(buffer.Entry{})
	}
	v.Port.LineNo = 10

	v.Clamp()

	assert.Equal(t, 2, v.Port.LineNo)
}

func TestClampPullsOffsetDownToLineNo(t *testing.T) {
	v := New("log", SourceCommit, nil, nil, reqtype.LOG, ".")
	for i := 0; i < 5; i++ {
		v.Buf.Append(buffer.Entry{})
	}
	v.Port.LineNo = 1
	v.Port.Offset = 4

	v.Clamp()

	assert.Equal(t, 1, v.Port.Offset)
}

func TestHScrollAdvancesAndClampsAtZero(t *testing.T) {
	v := New("log", SourceCommit, nil, nil, reqtype.LOG, ".")

	v.HScroll(4)
	assert.Equal(t, 4, v.Port.HOffset)

	v.HScroll(-10)
	assert.Equal(t, 0, v.Port.HOffset)
}

func TestHscrollTextDropsLeadingColumns(t *testing.T) {
	assert.Equal(t, "cdef", hscrollText("abcdef", 2))
	assert.Equal(t, "abcdef", hscrollText("abcdef", 0))
	assert.Equal(t, "", hscrollText("ab", 10))
}

func TestMoveCursorStepsAndClamps(t *testing.T) {
	v := New("log", SourceCommit, nil, nil, reqtype.LOG, ".")
	for i := 0; i < 5; i++ {
		v.Buf.Append(buffer.Entry{})
	}

	v.MoveCursor(3)
	assert.Equal(t, 3, v.Port.LineNo)

	v.MoveCursor(100)
	assert.Equal(t, 4, v.Port.LineNo)

	v.MoveCursor(-100)
	assert.Equal(t, 0, v.Port.LineNo)
}
