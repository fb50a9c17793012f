package view

import (
	"testing"

	"github.com/optionalg/tig/internal/classify"
	"github.com/optionalg/tig/internal/reqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeAdapterHeaderAndSort(t *testing.T) {
	a := NewTreeAdapter(NewRenderConfig())
	v := newTestView("tree", a)
	v.Vid = "deadbeef"
	ctx := &Context{}

	lines := []string{
		"100644 blob aaaa1111111111111111111111111111111111\tzeta.txt",
		"040000 tree bbbb2222222222222222222222222222222222\talpha",
		"100644 blob cccc3333333333333333333333333333333333\tbeta.txt",
	}
	for _, l := range lines {
		require.NoError(t, a.Read(v, ctx, l))
	}

	header, _ := v.Buf.At(0)
	assert.Equal(t, "Directory path /", header.Text)

	// Cursor lands past the header (P3: dirs first, then files lexicographically).
	assert.Equal(t, 1, v.Port.LineNo)

	names := []string{}
	for i := 1; i < v.Buf.Len(); i++ {
		e, _ := v.Buf.At(i)
		names = append(names, treeName(e.Text))
	}
	assert.Equal(t, []string{"alpha", "beta.txt", "zeta.txt"}, names)
}

func TestTreeAdapterUpLinkWhenPathSet(t *testing.T) {
	a := NewTreeAdapter(NewRenderConfig())
	v := newTestView("tree", a)
	v.Path = "src/"
	v.Vid = "deadbeef"
	ctx := &Context{}

	require.NoError(t, a.Read(v, ctx, "100644 blob aaaa\tsrc/main.go"))

	header, _ := v.Buf.At(0)
	assert.Equal(t, "Directory path /src/", header.Text)
	upLink, _ := v.Buf.At(1)
	assert.Equal(t, classify.TREE_DIR, upLink.Kind)
	assert.Equal(t, "..", treeName(upLink.Text))

	file, _ := v.Buf.At(2)
	assert.Equal(t, "main.go", treeName(file.Text))
}

func TestTreeAdapterEnterDirPushesPath(t *testing.T) {
	a := NewTreeAdapter(NewRenderConfig())
	v := newTestView("tree", a)
	ctx := &Context{}

	entry := mustEntry(classify.TREE_DIR, "040000 tree bbbb\tsrc")
	req := a.Enter(v, ctx, entry)
	assert.Equal(t, reqtype.VIEW_TREE, req)
	assert.Equal(t, "src/", v.Path)
}

func TestTreeAdapterEnterUpLinkPopsPath(t *testing.T) {
	a := NewTreeAdapter(NewRenderConfig())
	v := newTestView("tree", a)
	v.Path = "src/nested/"
	ctx := &Context{}

	entry := mustEntry(classify.TREE_DIR, "040000 tree bbbb\t..")
	a.Enter(v, ctx, entry)
	assert.Equal(t, "src/", v.Path)
}

func TestTreeAdapterEnterFileOpensBlob(t *testing.T) {
	a := NewTreeAdapter(NewRenderConfig())
	v := newTestView("tree", a)
	ctx := &Context{}

	entry := mustEntry(classify.TREE_FILE, "100644 blob abc123deadbeef\tmain.go")
	req := a.Enter(v, ctx, entry)
	assert.Equal(t, reqtype.VIEW_BLOB, req)
	assert.Equal(t, "abc123deadbeef", ctx.Blob)
}
