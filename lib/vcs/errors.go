package vcs

import "errors"

// Simulated repository errors.
var (
	// ErrBranchNotFound indicates the branch name is absent from the repository.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists indicates a branch with the same name already exists.
	ErrBranchExists = errors.New("branch already exists")
)
