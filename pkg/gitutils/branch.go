// Package gitutils reads just enough of a git repository to label a
// directory with its branch.
package gitutils

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

var gitPlainOpen = git.PlainOpen

// Branch returns the checked out branch of the repository containing dir,
// the short hash for a detached HEAD, or "" outside of a repository.
// An unborn branch is reported by name.
func Branch(dir string) (string, error) {
	root := GetRepositoryRoot(dir)
	if root == "" {
		return "", nil
	}
	repo, err := gitPlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("failed to open git repository at %s: %w", root, err)
	}
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD of %s: %w", root, err)
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return head.Hash().String()[:7], nil
}
