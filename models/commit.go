package models

// A single saved snapshot in the simulated repository. Immutable once created.
type Commit struct {
	// 7-character lowercase hex identifier.
	Hash      string
	Message   string
	Author    string
	Timestamp string
}
