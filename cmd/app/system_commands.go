package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/phonebook/cmd/app/commands"
)

func getSystemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "stats",
			Usage: "Show statistics",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunContactStats(
					ctx,
					container.ContactService(),
					container.Logger(),
					commands.DefaultIO(),
				)
			},
		},
	}
}
