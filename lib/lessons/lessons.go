package lessons

import (
	"fmt"
	"time"

	"github.com/TwiN/go-color"

	"github.com/gitlearn/cli/lib/vcs"
	"github.com/gitlearn/cli/models"
)

// Lesson 1: initialize the repository and create the main branch.
func (c *Course) LessonInit() error {
	fmt.Fprintf(c.out, "\n%s\n", color.InBold("=== Lesson 1: Repository Initialization ==="))
	c.anim.Typewriter("Let's create your first Git repository!", color.White)

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("$ git init"))
	c.anim.ProgressBar(5, "Initializing repository")

	c.repo.Initialized = true
	c.repo.AddBranch("main")
	if err := c.repo.Checkout("main"); err != nil {
		return err
	}

	fmt.Fprintln(c.out, color.InGreen(fmt.Sprintf("✓ Initialized empty Git repository in ./%s/.git/", c.repo.Name)))
	c.progress.Completed++
	return nil
}

// Lesson 2: stage files and create the first commit on main.
func (c *Course) LessonAddCommit() error {
	fmt.Fprintf(c.out, "\n%s\n", color.InBold("=== Lesson 2: Adding and Committing Files ==="))

	files := []string{"README.md", "main.go", "go.mod"}
	c.repo.WorkingFiles = append(c.repo.WorkingFiles, files...)

	c.anim.Typewriter("Files created in working directory:", color.White)
	for _, file := range files {
		fmt.Fprintf(c.out, "  %s\n", color.InCyan("📄 "+file))
	}

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("$ git add ."))
	c.anim.ProgressBar(3, "Staging files")
	c.repo.StagedFiles = append([]string{}, files...)

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow(`$ git commit -m "Initial commit"`))

	commit := models.Commit{
		Hash:      vcs.GenerateCommitHash(),
		Message:   "Initial commit",
		Author:    c.cfg.Author,
		Timestamp: vcs.CurrentTimestamp(),
	}

	c.anim.CommitFlow(commit)
	if err := c.repo.AddCommit("main", commit); err != nil {
		return err
	}

	c.progress.Completed++
	return nil
}

// Lesson 3: fork a feature branch off main, commit to it, and show the tree.
func (c *Course) LessonBranching() error {
	fmt.Fprintf(c.out, "\n%s\n", color.InBold("=== Lesson 3: Branching and Merging ==="))

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("$ git branch feature-auth"))
	c.anim.Typewriter("Creating new branch 'feature-auth'...", color.White)
	if err := c.repo.CreateBranch("feature-auth", "main"); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("$ git checkout feature-auth"))
	c.anim.Typewriter("Switching to branch 'feature-auth'...", color.White)
	if err := c.repo.Checkout("feature-auth"); err != nil {
		return err
	}

	for _, message := range []string{"Add login functionality", "Add password validation"} {
		c.anim.Pause(time.Second)

		commit := models.Commit{
			Hash:      vcs.GenerateCommitHash(),
			Message:   message,
			Author:    c.cfg.Author,
			Timestamp: vcs.CurrentTimestamp(),
		}
		c.anim.CommitFlow(commit)
		if err := c.repo.AddCommit("feature-auth", commit); err != nil {
			return err
		}
	}

	c.anim.BranchVisualization(c.repo)
	c.progress.Completed++
	return nil
}

// Lesson 4: push the current branch to the simulated remote.
func (c *Course) LessonPush() error {
	fmt.Fprintf(c.out, "\n%s\n", color.InBold("=== Lesson 4: Pushing to Remote ==="))

	c.anim.Typewriter("Remote repository: "+c.repo.RemoteURL, color.White)

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("$ git push "+c.cfg.Remote+" "+c.repo.CurrentBranch))

	branch, err := c.repo.Current()
	if err != nil {
		return err
	}

	c.anim.PushAnimation(len(branch.Commits), c.cfg.Remote, c.repo.CurrentBranch)
	c.progress.Completed++
	return nil
}
