package animate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TwiN/go-color"
	"github.com/samber/lo"

	"github.com/gitlearn/cli/lib/vcs"
	"github.com/gitlearn/cli/models"
)

// Width of the animated progress bar in characters.
const barLength = 30

// Renders timed animation sequences to a writer. All operations block the
// calling goroutine; there is no background work. Every wait ends early once
// the animator's context is canceled, so an interrupt aborts the current
// sleep instead of running it out.
type Animator struct {
	ctx   context.Context
	out   io.Writer
	speed float64
}

// Create a new animator. All delays are divided by the speed multiplier;
// fast mode passes 3.0. Canceling ctx cuts all remaining waits short.
func New(ctx context.Context, out io.Writer, speed float64) *Animator {
	if ctx == nil {
		ctx = context.Background()
	}
	if speed <= 0 {
		speed = 1.0
	}

	return &Animator{ctx: ctx, out: out, speed: speed}
}

// Block for the given duration, scaled by the speed multiplier.
func (a *Animator) Pause(d time.Duration) {
	a.sleep(a.scale(d))
}

// Block for d, ending early if the context is canceled.
func (a *Animator) sleep(d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-a.ctx.Done():
	case <-timer.C:
	}
}

func (a *Animator) scale(d time.Duration) time.Duration {
	return time.Duration(float64(d) / a.speed)
}

// Base delay between animation frames.
func (a *Animator) delay() time.Duration {
	return a.scale(500 * time.Millisecond)
}

// Emit text one character at a time, ending with a line break.
func (a *Animator) Typewriter(text string, colorCode string) {
	for _, r := range text {
		fmt.Fprint(a.out, color.Ize(colorCode, string(r)))
		a.sleep(a.scale(30 * time.Millisecond))
	}

	fmt.Fprintln(a.out)
}

// Render an animated progress bar with steps+1 frames, the last one at 100%.
// A bar with zero steps renders only the final frame.
func (a *Animator) ProgressBar(steps int, label string) {
	if steps <= 0 {
		a.renderBarFrame(label, 1)
		fmt.Fprintln(a.out)
		return
	}

	for i := 0; i <= steps; i++ {
		a.renderBarFrame(label, float64(i)/float64(steps))
		a.sleep(a.delay())
	}

	fmt.Fprintln(a.out)
}

func (a *Animator) renderBarFrame(label string, progress float64) {
	filled := int(barLength * progress)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
	percent := int(progress * 100)

	fmt.Fprintf(a.out, "\r%s %s",
		color.InCyan(label+":"),
		color.InGreen(fmt.Sprintf("[%s] %d%%", bar, percent)))
}

// Animate the creation of a commit: metadata lines, then the three-stage
// working directory -> staging area -> local repository flow.
func (a *Animator) CommitFlow(commit models.Commit) {
	fmt.Fprintf(a.out, "\n%s\n", color.InYellow("Creating commit..."))
	a.sleep(a.delay())

	fmt.Fprintf(a.out, "%s Commit %s\n", color.InGreen("✓"), color.InBold(commit.Hash))
	fmt.Fprintf(a.out, "  Author: %s\n", color.InCyan(commit.Author))
	fmt.Fprintf(a.out, "  Date: %s\n", commit.Timestamp)
	fmt.Fprintf(a.out, "  Message: %s\n", color.InWhite(commit.Message))

	for i, stage := range []string{"Working Directory", "Staging Area", "Local Repository"} {
		if i > 0 {
			fmt.Fprintln(a.out, color.InGreen("    ↓"))
		}
		fmt.Fprintf(a.out, "  %s\n", color.InBold(stage))
		a.sleep(a.delay())
	}
}

// Animate pushing commits to a remote: connection bar, one upload indicator
// per commit, then a success line. Zero commits still prints the success line.
func (a *Animator) PushAnimation(commits int, remote string, branch string) {
	fmt.Fprintf(a.out, "\n%s\n", color.InPurple(fmt.Sprintf("Pushing %d commit(s) to %s/%s...", commits, remote, branch)))

	a.ProgressBar(3, "Establishing connection")

	for i := 0; i < commits; i++ {
		fmt.Fprint(a.out, "\r"+color.InCyan(fmt.Sprintf("Uploading commit %d/%d ", i+1, commits)))
		for j := 0; j < 3; j++ {
			fmt.Fprint(a.out, color.InGreen("→"))
			a.sleep(a.delay() / 3)
		}
	}

	fmt.Fprintf(a.out, "\n%s\n", color.InGreen("✓ Push completed successfully!"))
	fmt.Fprintf(a.out, "  → %s\n", color.InBlue(remote+"/"+branch))
}

// Print the repository's branch structure: every branch in creation order
// with a marker for the current one, and up to its last 3 commits,
// most recent first.
func (a *Animator) BranchVisualization(repo *vcs.Repository) {
	fmt.Fprintf(a.out, "\n%s\n", color.InBold("Repository: "+repo.Name))
	fmt.Fprintln(a.out, "Branch structure:")

	for _, branch := range repo.Branches() {
		marker, branchColor := "  ", color.White
		if branch.Name == repo.CurrentBranch {
			marker, branchColor = "* ", color.Green
		}
		fmt.Fprintln(a.out, color.Ize(branchColor, marker+branch.Name))

		recent := branch.Commits
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		for _, commit := range lo.Reverse(append([]models.Commit{}, recent...)) {
			fmt.Fprintf(a.out, "    %s %s\n", color.InYellow(commit.Hash), commit.Message)
		}
	}
}

// Print text followed by animated trailing dots, ending with a line break.
func (a *Animator) LoadingLine(text string, dots int, colorCode string, per time.Duration) {
	fmt.Fprint(a.out, color.Ize(colorCode, text))

	for i := 0; i < dots; i++ {
		a.sleep(a.scale(per))
		fmt.Fprint(a.out, color.Ize(colorCode, "."))
	}

	fmt.Fprintln(a.out)
}
