package cmd

import (
	"flag"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/gitlearn/cli/constants"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// TestCourse_UsageOnStrayArguments verifies unexpected positional arguments
// print the usage line and exit cleanly without starting the course.
func TestCourse_UsageOnStrayArguments(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	require.NoError(t, set.Parse([]string{"bogus"}))
	c := cli.NewContext(nil, set, nil)

	out := captureStdout(t, func() {
		assert.NoError(t, Course(c))
	})

	assert.Contains(t, out, constants.UsageMessage)
	assert.NotContains(t, out, "Welcome to Git Learning Automation")
}

// TestCourseConfig verifies --fast maps to the 3x speed multiplier.
func TestCourseConfig(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool("fast", false, "")
	c := cli.NewContext(nil, set, nil)

	cfg := courseConfig(c)
	assert.Equal(t, constants.DefaultSpeed, cfg.Speed)
	assert.Equal(t, constants.DefaultRepoName, cfg.RepoName)

	set = flag.NewFlagSet("test", flag.ContinueOnError)
	set.Bool("fast", false, "")
	assert.NoError(t, set.Parse([]string{"-fast"}))
	c = cli.NewContext(nil, set, nil)

	cfg = courseConfig(c)
	assert.Equal(t, constants.FastSpeed, cfg.Speed)
}
