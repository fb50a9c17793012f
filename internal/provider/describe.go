package provider

import "os/exec"

// Describe runs a one-shot "describe --tags <id>" to resolve a
// nearest-tag description, used by the pager adapter's attach-refs
// rule (spec.md §4.4) when a diff-view commit has no ref pointing at
// it directly. On any failure it returns an empty string rather than
// an error: spec.md says to "abort silently" here, since the commit
// line is still valid without a description.
func Describe(id, dir string) string {
	args := DescribeTemplate(id, "")
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	// trim a single trailing newline without pulling in strings.TrimSpace's
	// broader trimming, since a description could theoretically want
	// interior whitespace preserved.
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out)
}

// RepoCommitEncoding runs the repo's config-listing command and
// extracts i18n.commitencoding (spec.md §6's "Repo config" rule),
// returning "" if unset or the command fails — an absent setting
// means the repo's commits are already in the terminal's encoding, so
// no transcoding is needed.
func RepoCommitEncoding(dir string) string {
	cmd := exec.Command("git", "config", "i18n.commitencoding")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return ""
	}
	if n := len(out); n > 0 && out[n-1] == '\n' {
		out = out[:n-1]
	}
	return string(out)
}
