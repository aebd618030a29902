package cmd

import (
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/gitlearn/cli/lib/animate"
)

// Run the standalone narrated push animation.
func PushDemo(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	demo := animate.NewPushDemo(ctx, os.Stdout, animate.PushDemoOptions{
		Commits: c.Int("commits"),
		Remote:  c.String("remote"),
		Branch:  c.String("branch"),
		Files:   c.StringSlice("file"),
		Message: c.String("message"),
		Speed:   c.Float64("speed"),
	})
	demo.Animate()

	return nil
}
