package models

// A named, independently growing commit sequence, oldest first.
//
// Whether a branch is the current one is tracked solely by the repository's
// current-branch pointer, not on the branch itself.
type Branch struct {
	Name    string
	Commits []Commit
}
