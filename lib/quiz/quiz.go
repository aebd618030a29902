package quiz

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/TwiN/go-color"

	"github.com/gitlearn/cli/lib/animate"
)

// Reads answers from the student. The interactive implementation lives in
// lib/prompt; tests use a scripted one.
type Asker interface {
	// Ask for a one-line answer to the prompt.
	Ask(prompt string) (string, error)
	// Block until the student acknowledges the prompt.
	Ack(prompt string) error
}

// A single multiple-choice question.
type Question struct {
	Prompt string
	// Options as printed, e.g. "a) git start".
	Options []string
	// Correct option key, e.g. "b".
	Correct     string
	Explanation string
}

// The fixed course quiz.
func DefaultQuestions() []Question {
	return []Question{
		{
			Prompt:      "What command initializes a new Git repository?",
			Options:     []string{"a) git start", "b) git init", "c) git create", "d) git new"},
			Correct:     "b",
			Explanation: "git init creates a new Git repository in the current directory.",
		},
		{
			Prompt:      "What's the correct order for adding and committing files?",
			Options:     []string{"a) commit, then add", "b) add, then commit", "c) push, then add", "d) merge, then commit"},
			Correct:     "b",
			Explanation: "Files must be staged with 'git add' before they can be committed with 'git commit'.",
		},
	}
}

// Runs the quiz and practice segments.
type Runner struct {
	out   io.Writer
	anim  *animate.Animator
	asker Asker
}

// Create a new quiz/practice runner.
func NewRunner(out io.Writer, anim *animate.Animator, asker Asker) *Runner {
	return &Runner{out: out, anim: anim, asker: asker}
}

// Run the quiz: print each question and its options, read an answer, score
// it, and always print the explanation. Returns the final score.
func (r *Runner) Run(questions []Question) (int, error) {
	fmt.Fprintf(r.out, "\n%s\n", color.InBold("=== Quick Quiz ==="))

	score := 0
	for i, q := range questions {
		fmt.Fprintf(r.out, "\n%s\n", color.InCyan(fmt.Sprintf("Question %d: %s", i+1, q.Prompt)))
		for _, option := range q.Options {
			fmt.Fprintf(r.out, "  %s\n", option)
		}

		answer, err := r.asker.Ask("Your answer:")
		if err != nil {
			return score, err
		}

		if strings.ToLower(strings.TrimSpace(answer)) == q.Correct {
			fmt.Fprintln(r.out, color.InGreen("✓ Correct!"))
			score++
		} else {
			fmt.Fprintln(r.out, color.InRed("✗ Incorrect."))
		}

		fmt.Fprintln(r.out, color.InWhite("Explanation: "+q.Explanation))
		r.anim.Pause(2 * time.Second)
	}

	fmt.Fprintf(r.out, "\n%s\n", color.InBold(fmt.Sprintf("Quiz Score: %d/%d", score, len(questions))))
	return score, nil
}
