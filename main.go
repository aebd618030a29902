package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gitlearn/cli/cmd"
)

func main() {
	app := &cli.App{
		Name:    "gitlearn",
		Usage:   "Learn Git through animated demonstrations and practice",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "fast",
				Usage: "Run the course at 3x animation speed",
			},
			&cli.IntFlag{
				Name:  "lesson",
				Usage: "Run a single core lesson (1-4)",
			},
		},
		Action: cmd.Course,
		Commands: []*cli.Command{
			{
				Name:   "push-demo",
				Usage:  "Run the standalone push animation",
				Action: cmd.PushDemo,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "commits",
						Value: 1,
						Usage: "Number of commits to upload",
					},
					&cli.StringFlag{
						Name:  "remote",
						Value: "origin",
						Usage: "Remote name",
					},
					&cli.StringFlag{
						Name:  "branch",
						Value: "main",
						Usage: "Branch name",
					},
					&cli.StringSliceFlag{
						Name:  "file",
						Usage: "Changed file name (repeatable)",
					},
					&cli.StringFlag{
						Name:  "message",
						Usage: "Commit message",
					},
					&cli.Float64Flag{
						Name:  "speed",
						Value: 1.0,
						Usage: "Animation speed multiplier",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
