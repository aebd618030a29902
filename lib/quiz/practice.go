package quiz

import (
	"fmt"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/samber/lo"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gitlearn/cli/lib/vcs"
	"github.com/gitlearn/cli/models"
)

// Identifies which canned output a practice command renders.
type CommandKind int

const (
	KindStatus CommandKind = iota
	KindLog
	KindBranch
	KindDiff
)

// A practice exercise: a git command shown to the student with a description,
// and the kind of simulated output rendered after they acknowledge it.
type Command struct {
	Text        string
	Description string
	Kind        CommandKind
}

// The fixed practice exercises.
func DefaultCommands() []Command {
	return []Command{
		{Text: "git status", Description: "Check the status of your repository", Kind: KindStatus},
		{Text: "git log --oneline", Description: "View commit history in compact format", Kind: KindLog},
		{Text: "git branch -a", Description: "List all branches", Kind: KindBranch},
		{Text: "git diff", Description: "Show changes in working directory", Kind: KindDiff},
	}
}

// Fixed file versions backing the simulated diff output.
const (
	diffOldSource = "func main() {\n\tfmt.Println(\"Hello, World!\")\n}\n"
	diffNewSource = "func main() {\n\tfmt.Println(\"Hello, World!\")\n\tfmt.Println(\"Welcome to Git!\")\n}\n"
)

// Run practice mode: present each command, wait for acknowledgement, then
// render its simulated output against the current repository state.
func (r *Runner) Practice(repo *vcs.Repository, commands []Command) error {
	fmt.Fprintf(r.out, "\n%s\n", color.InBold("=== Practice Mode ==="))
	r.anim.Typewriter("Try executing Git commands yourself!", color.White)

	for _, cmd := range commands {
		fmt.Fprintf(r.out, "\n%s\n", color.InCyan("Practice: "+cmd.Text))
		fmt.Fprintf(r.out, "Description: %s\n", cmd.Description)

		if err := r.asker.Ack("Press Enter to simulate this command..."); err != nil {
			return err
		}

		if err := r.Render(repo, cmd.Kind); err != nil {
			return err
		}
	}

	return nil
}

// Render the simulated output for one command kind.
func (r *Runner) Render(repo *vcs.Repository, kind CommandKind) error {
	switch kind {
	case KindStatus:
		return r.renderStatus(repo)
	case KindLog:
		return r.renderLog(repo)
	case KindBranch:
		return r.renderBranchList(repo)
	case KindDiff:
		return r.renderDiff()
	default:
		return fmt.Errorf("unknown practice command kind: %d", kind)
	}
}

func (r *Runner) renderStatus(repo *vcs.Repository) error {
	fmt.Fprintln(r.out, color.InGreen("On branch "+repo.CurrentBranch))
	fmt.Fprintln(r.out, "Your branch is up to date with 'origin/main'.")
	fmt.Fprintln(r.out, "\nnothing to commit, working tree clean")
	return nil
}

// Print the last up-to-5 commits of the current branch, most recent first.
func (r *Runner) renderLog(repo *vcs.Repository) error {
	branch, err := repo.Current()
	if err != nil {
		return err
	}

	recent := branch.Commits
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	for _, commit := range lo.Reverse(append([]models.Commit{}, recent...)) {
		fmt.Fprintf(r.out, "%s %s\n", color.InYellow(commit.Hash), commit.Message)
	}

	return nil
}

func (r *Runner) renderBranchList(repo *vcs.Repository) error {
	for _, branch := range repo.Branches() {
		marker, branchColor := "  ", color.White
		if branch.Name == repo.CurrentBranch {
			marker, branchColor = "* ", color.Green
		}
		fmt.Fprintln(r.out, color.Ize(branchColor, marker+branch.Name))
	}

	return nil
}

// Print a git-style diff of the two fixed source versions.
func (r *Runner) renderDiff() error {
	fmt.Fprintln(r.out, "diff --git a/main.go b/main.go")
	fmt.Fprintln(r.out, "index 1234567..abcdefg 100644")
	fmt.Fprintln(r.out, "--- a/main.go")
	fmt.Fprintln(r.out, "+++ b/main.go")
	fmt.Fprintln(r.out, color.InCyan("@@ -1,3 +1,4 @@"))

	dmp := diffmatchpatch.New()
	oldChars, newChars, lines := dmp.DiffLinesToChars(diffOldSource, diffNewSource)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lines)

	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				fmt.Fprintln(r.out, color.InGreen("+"+line))
			case diffmatchpatch.DiffDelete:
				fmt.Fprintln(r.out, color.InRed("-"+line))
			default:
				fmt.Fprintln(r.out, " "+line)
			}
		}
	}

	return nil
}
