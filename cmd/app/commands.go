package main

import (
	"github.com/urfave/cli/v3"

	"github.com/allisson/phonebook/internal/app"
	"github.com/allisson/phonebook/internal/config"
)

func getCommands() []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getContactCommands()...)
	cmds = append(cmds, getSystemCommands()...)
	return cmds
}

// loadContainer builds the dependency container, honoring the global --file
// flag over the environment-provided contacts file path.
func loadContainer(cmd *cli.Command) *app.Container {
	cfg := config.Load()
	if path := cmd.String("file"); path != "" {
		cfg.ContactsFile = path
	}
	return app.NewContainer(cfg)
}
