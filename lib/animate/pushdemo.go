package animate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/TwiN/go-color"
)

// Options for the standalone push demo. All fields are cosmetic; nothing is
// read from or written to any real repository.
type PushDemoOptions struct {
	Commits int
	Remote  string
	Branch  string
	Files   []string
	Message string
	Speed   float64
}

// A scripted push narration: greeting, change summary, commit, push.
// Exposed as its own CLI entry point separate from the course.
type PushDemo struct {
	opts PushDemoOptions
	anim *Animator
	out  io.Writer
}

// Create a new push demo, filling in defaults for unset options. Canceling
// ctx stops the script at the next section boundary.
func NewPushDemo(ctx context.Context, out io.Writer, opts PushDemoOptions) *PushDemo {
	if opts.Commits < 0 {
		opts.Commits = 0
	}
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	if opts.Branch == "" {
		opts.Branch = "main"
	}
	if len(opts.Files) == 0 {
		opts.Files = []string{"main.go", "README.md"}
	}
	if opts.Message == "" {
		opts.Message = "Update project files"
	}
	if opts.Speed <= 0 {
		opts.Speed = 1.0
	}

	return &PushDemo{opts: opts, anim: New(ctx, out, opts.Speed), out: out}
}

func (p *PushDemo) interrupted() bool {
	return p.anim.ctx.Err() != nil
}

// The options in effect after defaulting.
func (p *PushDemo) Options() PushDemoOptions {
	return p.opts
}

// Run the full narrated push script.
func (p *PushDemo) Animate() {
	a := p.anim

	// Greeting and change summary
	a.LoadingLine("Hello Developer", 3, color.Cyan, 500*time.Millisecond)
	a.Pause(700 * time.Millisecond)
	a.LoadingLine("You finished your work", 3, color.White, 400*time.Millisecond)
	a.Pause(700 * time.Millisecond)
	a.LoadingLine("Changed files detected", 3, color.Yellow, 400*time.Millisecond)
	for _, file := range p.opts.Files {
		a.LoadingLine("  • "+file, 2, color.Cyan, 300*time.Millisecond)
	}
	a.Pause(700 * time.Millisecond)
	a.LoadingLine("Commit message added", 3, color.Yellow, 400*time.Millisecond)
	a.LoadingLine("  "+p.opts.Message, 2, color.White, 300*time.Millisecond)
	a.Pause(time.Second)

	if p.interrupted() {
		return
	}

	// Commit staged
	a.LoadingLine("Commit created and staged locally", 4, color.Green, 300*time.Millisecond)
	a.Pause(800 * time.Millisecond)
	a.LoadingLine("Ready to push to remote repository", 4, color.Purple, 300*time.Millisecond)
	a.Pause(time.Second)

	if p.interrupted() {
		return
	}

	// Push
	a.LoadingLine("Preparing to push", 5, color.Cyan, 250*time.Millisecond)
	a.ProgressBar(2, "Preparing to push")
	a.Pause(500 * time.Millisecond)
	a.LoadingLine("Establishing connection", 5, color.Yellow, 250*time.Millisecond)
	a.ProgressBar(3, "Establishing connection")
	a.Pause(700 * time.Millisecond)

	// Upload phase
	for i := 0; i < p.opts.Commits; i++ {
		a.LoadingLine(fmt.Sprintf("Uploading commit %d/%d", i+1, p.opts.Commits), 3, color.Cyan, 300*time.Millisecond)
		fmt.Fprint(p.out, "  ")
		for j := 0; j < 3; j++ {
			fmt.Fprint(p.out, color.InGreen("→"))
			a.sleep(a.delay() / 2)
		}
		fmt.Fprintln(p.out)
	}
	a.Pause(700 * time.Millisecond)

	a.LoadingLine("Push completed successfully", 4, color.Green, 300*time.Millisecond)
	fmt.Fprintf(p.out, "  → %s\n", color.InBlue(p.opts.Remote+"/"+p.opts.Branch))
}
