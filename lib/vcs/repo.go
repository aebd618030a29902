package vcs

import (
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"

	"github.com/gitlearn/cli/constants"
	"github.com/gitlearn/cli/models"
)

// Simulated in-memory repository. A single instance is created per run and
// mutated in place by lesson steps; nothing is ever persisted.
type Repository struct {
	Name          string
	CurrentBranch string
	StagedFiles   []string
	WorkingFiles  []string
	RemoteURL     string
	Initialized   bool

	branches map[string]*models.Branch
	// Branch names in creation order, so listings are stable.
	order []string
}

// Create a new, uninitialized simulated repository.
//
// The current-branch pointer starts at "main" even though no branch exists
// yet; any operation that reads the current branch before it has been created
// fails with ErrBranchNotFound.
func NewRepository(name string) *Repository {
	return &Repository{
		Name:          name,
		CurrentBranch: "main",
		RemoteURL:     fmt.Sprintf("https://github.com/user/%s.git", name),
		branches:      map[string]*models.Branch{},
	}
}

// Create a new empty branch. Does not switch the current branch.
func (r *Repository) AddBranch(name string) *models.Branch {
	if b, ok := r.branches[name]; ok {
		return b
	}

	b := &models.Branch{Name: name}
	r.branches[name] = b
	r.order = append(r.order, name)
	return b
}

// Create a new branch seeded with a snapshot of the source branch's commits,
// simulating a fork point. The new branch diverges independently afterwards.
// Does not switch the current branch.
func (r *Repository) CreateBranch(name string, from string) error {
	if _, ok := r.branches[name]; ok {
		return fmt.Errorf("%w: %s", ErrBranchExists, name)
	}

	src, ok := r.branches[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, from)
	}

	b := &models.Branch{
		Name:    name,
		Commits: append([]models.Commit{}, src.Commits...),
	}
	r.branches[name] = b
	r.order = append(r.order, name)
	return nil
}

// Switch the current branch. Fails if the branch does not exist.
func (r *Repository) Checkout(name string) error {
	if _, ok := r.branches[name]; !ok {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}

	r.CurrentBranch = name
	return nil
}

// Get a branch by name.
func (r *Repository) Branch(name string) (*models.Branch, error) {
	b, ok := r.branches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}

	return b, nil
}

// Get the branch the current-branch pointer refers to.
func (r *Repository) Current() (*models.Branch, error) {
	return r.Branch(r.CurrentBranch)
}

// List all branches in creation order.
func (r *Repository) Branches() []*models.Branch {
	return lo.Map(r.order, func(name string, _ int) *models.Branch {
		return r.branches[name]
	})
}

// Append a commit to the named branch.
func (r *Repository) AddCommit(branch string, commit models.Commit) error {
	b, ok := r.branches[branch]
	if !ok {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, branch)
	}

	b.Commits = append(b.Commits, commit)
	return nil
}

// Generate a realistic-looking 7-character commit hash.
// Hashes are independent; collisions are possible and ignored.
func GenerateCommitHash() string {
	var seed [16]byte
	binary.LittleEndian.PutUint64(seed[:8], rand.Uint64())
	binary.LittleEndian.PutUint64(seed[8:], rand.Uint64())

	return fmt.Sprintf("%016x", xxhash.Sum64(seed[:]))[:7]
}

// Get the current timestamp in the simulated commit format.
func CurrentTimestamp() string {
	return time.Now().Format(constants.TimeFormat)
}
