package provider

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/optionalg/tig/internal/refs"
)

// LoadRefs runs the ref-enumeration command (spec.md §6: the default,
// or TIG_LS_REMOTE's override if set) and populates idx per the
// filtering rule of spec.md §4.2. A failure here is a fatal init
// error (spec.md §7): without refs, the main/pager views cannot
// attach ref annotations and the whole session would silently look
// wrong rather than fail loudly.
func LoadRefs(idx *refs.Index, dir string) error {
	args := RefsTemplate("", "")
	if override := os.Getenv("TIG_LS_REMOTE"); override != "" {
		proc, err := RunShell(override, dir)
		if err != nil {
			return err
		}
		defer proc.Wait()
		return scanRefLines(idx, proc.Stdout)
	}

	proc, err := Spawn("git", args, dir)
	if err != nil {
		return err
	}
	defer proc.Wait()
	return scanRefLines(idx, proc.Stdout)
}

func scanRefLines(idx *refs.Index, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		id, name := line[:tab], line[tab+1:]
		short, isTag, ok := refs.ParseName(name)
		if !ok {
			continue
		}
		idx.Add(id, short, isTag)
	}
	return scanner.Err()
}
