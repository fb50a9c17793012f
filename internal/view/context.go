// Package view implements the View data model, its loader, and the
// four content adapters of spec.md §3/§4.4/§4.5. Grounded on
// pkg/gui/gui.go's overall shape (a struct wrapping the terminal plus
// per-panel state) and pkg/gui/container_logs.go's streaming-into-a-
// view pattern, but restructured around spec.md §9's redesign notes:
// no raw pointer chains, a Context value replaces the three bare
// global string slots, and a closed view carries an explicit flag
// instead of a self-referential parent pointer.
package view

// Context wraps the three cross-view "latest seen" slots spec.md §5
// calls ref_head/ref_commit/ref_blob, per spec.md §9's redesign note:
// "Wrap them in an explicit Context value threaded through view
// constructors and draw routines; writes are confined to the
// main/pager/tree draw paths." There is no lock around it: per spec.md
// §5 every read and write happens on the single cooperative event
// loop goroutine.
type Context struct {
	Head   string
	Commit string
	Blob   string
}

// SetCommit records the most recently drawn cursor-row commit id,
// written only by the main and pager adapters' Draw (spec.md §4.4).
func (c *Context) SetCommit(id string) { c.Commit = id }

// SetBlob records the most recently selected blob id, written by the
// tree adapter's Draw and Enter and by the pager adapter's Draw on a
// "100644 blob " row (spec.md §4.4).
func (c *Context) SetBlob(id string) { c.Blob = id }

// Resolve returns the id a view bound to source should reload against
// (spec.md §4.5 step 1's command-template substitution).
func (c *Context) Resolve(source IDSource) string {
	switch source {
	case SourceCommit:
		return c.Commit
	case SourceBlob:
		return c.Blob
	default:
		return c.Head
	}
}

// IDSource names which Context slot a view's command template
// resolves its id argument from (spec.md §3 View's `id_source`).
type IDSource int

const (
	SourceHead IDSource = iota
	SourceCommit
	SourceBlob
)
