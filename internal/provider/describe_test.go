package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeReturnsEmptyOnFailure(t *testing.T) {
	// A bogus id against whatever directory the test runs in: git
	// either isn't a repo here or rejects the id, but Describe must
	// never propagate that as an error (spec.md §4.4 "abort silently").
	assert.Equal(t, "", Describe("not-a-real-commit-id", "/nonexistent-dir-xyz"))
}

func TestRepoCommitEncodingReturnsEmptyWhenUnset(t *testing.T) {
	assert.Equal(t, "", RepoCommitEncoding("/nonexistent-dir-xyz"))
}
