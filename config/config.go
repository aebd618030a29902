package config

import (
	"github.com/gitlearn/cli/constants"
)

// CLI configuration. The tool has no config file or environment surface, so
// all values start from Defaults and are only adjusted by command-line flags.
type Config struct {
	// Animation speed multiplier. All delays are divided by this value.
	Speed float64
	// Author recorded on simulated commits.
	Author string
	// Name of the simulated repository.
	RepoName string
	// Name of the simulated remote.
	Remote string
}

// Returns the default CLI config.
func Defaults() Config {
	return Config{
		Speed:    constants.DefaultSpeed,
		Author:   constants.DefaultAuthor,
		RepoName: constants.DefaultRepoName,
		Remote:   constants.DefaultRemote,
	}
}
