// Package provider implements the content-provider and ref-enumerator
// collaborators spec.md §1 and §6 describe: external commands whose
// stdout the core consumes as a line stream, and whose exit the core
// treats as end-of-data. Grounded on pkg/commands/docker.go's
// subprocess-wrapping shape (build argv, run it, hand back a stream),
// generalized from a long-lived Docker API client to the spec's
// one-shot-per-view git subcommand model.
package provider

import (
	"io"
	"os/exec"

	"github.com/jesseduffield/kill"
)

// Template builds the argv (excluding the "git" binary name itself)
// for a view's default content command, given the resolved id and,
// for the tree view, the current path (spec.md §4.5 step 1).
type Template func(id, path string) []string

// The seven default subprocess commands (spec.md §6 protocols plus
// the describe helper).
var (
	RefsTemplate Template = func(string, string) []string {
		return []string{"ls-remote", "."}
	}
	MainTemplate Template = func(string, string) []string {
		return []string{"log", "--topo-order", "--pretty=raw"}
	}
	DiffTemplate Template = func(id, _ string) []string {
		return []string{"show", "--root", "--patch-with-stat", "--find-copies-harder", "-B", "-C", id}
	}
	LogTemplate Template = func(id, _ string) []string {
		return []string{"log", "--cc", "--stat", "-n100", id}
	}
	TreeTemplate Template = func(id, path string) []string {
		args := []string{"ls-tree", id}
		if path != "" {
			args = append(args, path)
		}
		return args
	}
	BlobTemplate Template = func(id, _ string) []string {
		return []string{"cat-file", "blob", id}
	}
	DescribeTemplate Template = func(id, _ string) []string {
		return []string{"describe", "--tags", id}
	}
)

// Process is a running content provider: its stdout pipe plus enough
// handle to end it on demand (spec.md §4.5 end_update, §5 STOP_LOADING).
type Process struct {
	cmd    *exec.Cmd
	Stdout io.ReadCloser

	// adopted is true when Stdout was injected (pager-from-stdin,
	// spec.md §4.5 step 2) rather than spawned by us; for an adopted
	// stream Kill only closes it and Wait is a no-op, matching
	// end_update's distinction between a popened command and an
	// adopted stdin.
	adopted bool
}

// Spawn runs name with args (git by convention; raw shell commands —
// the ':' prompt's opt_cmd, spec.md §4.8 — go through RunShell
// instead) and returns its stdout pipe.
func Spawn(name string, args []string, dir string) (*Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd, Stdout: stdout}, nil
}

// RunShell runs a raw shell command line (the result of prefixing a
// ':' prompt's input with "git ", spec.md §4.8) via sh -c, since the
// user's typed command may contain arbitrary shell syntax that a
// plain argv split would mangle.
func RunShell(line, dir string) (*Process, error) {
	cmd := exec.Command("sh", "-c", line)
	cmd.Dir = dir
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Process{cmd: cmd, Stdout: stdout}, nil
}

// AdoptStdin wraps an already-open reader (os.Stdin when spec.md §6's
// "stdin is not a terminal" rule fires) as a Process whose Kill only
// closes the stream and whose Wait is a no-op, matching spec.md §4.5
// end_update's distinction.
func AdoptStdin(r io.ReadCloser) *Process {
	return &Process{Stdout: r, adopted: true}
}

// Kill ends the process tree (spec.md §5: "there is no explicit
// SIGTERM" for graceful EOF-driven completion, but STOP_LOADING must
// still reliably end a still-running content provider, including any
// children it spawned via a shell wrapper). For an adopted stream it
// only closes the stream.
func (p *Process) Kill() error {
	if p.adopted || p.cmd == nil || p.cmd.Process == nil {
		return p.Stdout.Close()
	}
	if err := kill.Kill(p.cmd.Process.Pid); err != nil {
		_ = p.Stdout.Close()
		return err
	}
	return p.Stdout.Close()
}

// Wait reaps the process after its stdout has hit EOF naturally. A
// no-op for an adopted stream.
func (p *Process) Wait() error {
	if p.adopted || p.cmd == nil {
		return nil
	}
	return p.cmd.Wait()
}
