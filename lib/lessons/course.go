package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/TwiN/go-color"

	"github.com/gitlearn/cli/config"
	"github.com/gitlearn/cli/constants"
	"github.com/gitlearn/cli/lib/animate"
	"github.com/gitlearn/cli/lib/quiz"
	"github.com/gitlearn/cli/lib/vcs"
	"github.com/gitlearn/cli/models"
)

// ErrLessonNotFound indicates a lesson number outside the available range.
var ErrLessonNotFound = errors.New("lesson not found")

// A single scripted teaching unit.
type Lesson struct {
	Number int
	Title  string
	Run    func() error
}

// Holds all state for one course run: the simulated repository, the
// animator, the quiz runner, and lesson progress. Nothing is global and
// nothing survives the process.
type Course struct {
	cfg      config.Config
	repo     *vcs.Repository
	anim     *animate.Animator
	quiz     *quiz.Runner
	progress models.LessonProgress
	out      io.Writer
}

// Create a new course writing to out, with a fresh simulated repository.
// Canceling ctx cuts animation waits short so an interrupt is honored
// mid-animation rather than after the current sleep runs out.
func NewCourse(ctx context.Context, out io.Writer, cfg config.Config, asker quiz.Asker) *Course {
	anim := animate.New(ctx, out, cfg.Speed)

	return &Course{
		cfg:      cfg,
		repo:     vcs.NewRepository(cfg.RepoName),
		anim:     anim,
		quiz:     quiz.NewRunner(out, anim, asker),
		progress: models.LessonProgress{Total: constants.TotalLessons},
		out:      out,
	}
}

// The simulated repository backing this course run.
func (c *Course) Repository() *vcs.Repository {
	return c.repo
}

// Current lesson progress.
func (c *Course) Progress() models.LessonProgress {
	return c.progress
}

// The four core lessons in order.
func (c *Course) Lessons() []Lesson {
	return []Lesson{
		{Number: 1, Title: "Repository Initialization", Run: c.LessonInit},
		{Number: 2, Title: "Adding and Committing Files", Run: c.LessonAddCommit},
		{Number: 3, Title: "Branching and Merging", Run: c.LessonBranching},
		{Number: 4, Title: "Pushing to Remote", Run: c.LessonPush},
	}
}

// Run a single lesson by 1-indexed number.
func (c *Course) RunLesson(n int) error {
	all := c.Lessons()
	if n < 1 || n > len(all) {
		return fmt.Errorf("%w: %d (available: 1-%d)", ErrLessonNotFound, n, len(all))
	}

	return all[n-1].Run()
}

// Print the welcome banner and course introduction.
func (c *Course) Welcome() {
	fmt.Fprintf(c.out, "\n%s\n", color.InBold(color.InCyan("🎓 Welcome to Git Learning Automation! 🎓")))
	fmt.Fprintln(c.out, `
This interactive system will teach you Git through:
• Animated command demonstrations
• Hands-on practice exercises
• Real-time feedback and tips
• Progressive skill building

Let's start your Git journey!`)
	c.anim.Pause(2 * time.Second)
}

// Print the lesson progress summary with a static bar.
func (c *Course) ShowProgress() {
	percent := float64(c.progress.Completed) / float64(c.progress.Total) * 100

	fmt.Fprintf(c.out, "\n%s\n", color.InBold("=== Your Progress ==="))
	fmt.Fprintf(c.out, "Lessons completed: %d/%d\n", c.progress.Completed, c.progress.Total)
	fmt.Fprintf(c.out, "Progress: %.1f%%\n", percent)

	const barLength = 20
	filled := barLength * c.progress.Completed / c.progress.Total
	bar := ""
	for i := 0; i < barLength; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	fmt.Fprintln(c.out, color.InGreen("["+bar+"]"))
}

// Run the complete course: welcome, the four core lessons, quiz, practice,
// and the closing summary. The context is checked between phases so a
// process interrupt ends the run cleanly; the caller presents the message.
func (c *Course) RunFull(ctx context.Context) error {
	c.Welcome()

	for _, lesson := range c.Lessons() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := lesson.Run(); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	score, err := c.quiz.Run(quiz.DefaultQuestions())
	if err != nil {
		return err
	}
	if err := c.quiz.Practice(c.repo, quiz.DefaultCommands()); err != nil {
		return err
	}

	c.ShowProgress()

	fmt.Fprintf(c.out, "\n%s\n", color.InBold(color.InGreen("🎉 Congratulations! 🎉")))
	fmt.Fprintln(c.out, color.InCyan("You've completed the Git Learning Automation course!"))
	if score >= 2 {
		fmt.Fprintln(c.out, color.InGreen("Excellent quiz performance!"))
	}

	fmt.Fprintf(c.out, "\n%s\n", color.InYellow("Next steps:"))
	for _, step := range []string{
		"Practice with real repositories",
		"Learn advanced Git features",
		"Explore Git workflows (GitFlow, GitHub Flow)",
		"Study collaborative development practices",
	} {
		fmt.Fprintln(c.out, "• "+step)
	}

	return nil
}
