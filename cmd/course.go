package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/urfave/cli/v2"

	"github.com/gitlearn/cli/config"
	"github.com/gitlearn/cli/constants"
	"github.com/gitlearn/cli/lib/console"
	"github.com/gitlearn/cli/lib/lessons"
	"github.com/gitlearn/cli/lib/prompt"
)

// Run the full interactive course, or a single lesson when --lesson is set.
func Course(c *cli.Context) error {
	if c.Args().Len() > 0 {
		fmt.Println(constants.UsageMessage)
		return nil
	}

	if c.IsSet("lesson") {
		return Lesson(c)
	}

	// An interrupt during a sleep or input read ends the run cleanly.
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	course := lessons.NewCourse(ctx, os.Stdout, courseConfig(c), prompt.Survey{})

	err := course.RunFull(ctx)
	switch {
	case err == nil:
	case errors.Is(err, terminal.InterruptErr), errors.Is(err, context.Canceled):
		fmt.Println()
		console.Warning("Course interrupted. You can resume anytime!")
	default:
		console.ErrorPrint("An error occurred: %s", err)
	}

	return nil
}

func courseConfig(c *cli.Context) config.Config {
	cfg := config.Defaults()
	if c.Bool("fast") {
		cfg.Speed = constants.FastSpeed
	}

	return cfg
}
