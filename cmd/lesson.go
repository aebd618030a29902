package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/gitlearn/cli/constants"
	"github.com/gitlearn/cli/lib/console"
	"github.com/gitlearn/cli/lib/lessons"
	"github.com/gitlearn/cli/lib/prompt"
)

// Run a single numbered core lesson against a fresh simulated repository.
func Lesson(c *cli.Context) error {
	n := c.Int("lesson")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	course := lessons.NewCourse(ctx, os.Stdout, courseConfig(c), prompt.Survey{})

	err := course.RunLesson(n)
	switch {
	case err == nil:
		console.Success("Lesson %d complete!", n)
	case errors.Is(err, lessons.ErrLessonNotFound):
		fmt.Printf("Lesson %d not found. Available: 1-%d\n", n, constants.CoreLessonCount)
	default:
		console.ErrorPrint("An error occurred: %s", err)
	}

	return nil
}
