package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/phonebook/cmd/app/commands"
)

func getContactCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "add",
			Usage:     "Add a new contact",
			UsageText: "phonebook add --first-name NAME --last-name NAME [--phone NUMBER]... [--email ADDRESS]...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "First name",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Last name",
				},
				&cli.StringSliceFlag{
					Name:    "phone",
					Aliases: []string{"p"},
					Usage:   "Phone number (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:    "email",
					Aliases: []string{"e"},
					Usage:   "Email address (can be specified multiple times)",
				},
				&cli.StringFlag{
					Name:    "notes",
					Aliases: []string{"n"},
					Usage:   "Free-form notes",
				},
				&cli.StringSliceFlag{
					Name:    "tag",
					Aliases: []string{"t"},
					Usage:   "Tag (can be specified multiple times)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunAddContact(
					ctx,
					container.ContactService(),
					container.Logger(),
					cmd.String("first-name"),
					cmd.String("last-name"),
					cmd.StringSlice("phone"),
					cmd.StringSlice("email"),
					cmd.String("notes"),
					cmd.StringSlice("tag"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:      "find",
			Usage:     "Find a contact by ID",
			UsageText: "phonebook find ID",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				rawID := cmd.Args().First()
				if rawID == "" {
					return fmt.Errorf("contact ID argument is required")
				}

				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunFindContact(
					ctx,
					container.ContactService(),
					container.Logger(),
					rawID,
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "list",
			Usage: "List all contacts",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "page",
					Value: 0,
					Usage: "Page number (0-based)",
				},
				&cli.IntFlag{
					Name:  "page-size",
					Usage: "Number of contacts per page",
				},
				&cli.StringFlag{
					Name:  "sort-by",
					Value: "last-name",
					Usage: "Sort by field: first-name, last-name or full-name",
				},
				&cli.BoolFlag{
					Name:  "reverse",
					Usage: "Reverse sort order",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				cfg := container.Config()
				pageSize := int(cmd.Int("page-size"))
				if !cmd.IsSet("page-size") {
					pageSize = cfg.ListPageSize
				}
				if pageSize > cfg.ListMaxPageSize {
					return fmt.Errorf("page size cannot exceed %d", cfg.ListMaxPageSize)
				}

				return commands.RunListContacts(
					ctx,
					container.ContactService(),
					container.Logger(),
					int(cmd.Int("page")),
					pageSize,
					cmd.String("sort-by"),
					cmd.Bool("reverse"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:      "search",
			Usage:     "Search contacts",
			UsageText: "phonebook search QUERY",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				query := cmd.Args().First()
				if query == "" {
					return fmt.Errorf("search query argument is required")
				}

				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunSearchContacts(
					ctx,
					container.ContactService(),
					container.Logger(),
					query,
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:      "update",
			Usage:     "Update a contact",
			UsageText: "phonebook update ID [--first-name NAME] [--add-phone NUMBER]...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "first-name",
					Usage: "New first name",
				},
				&cli.StringFlag{
					Name:  "last-name",
					Usage: "New last name",
				},
				&cli.StringFlag{
					Name:  "notes",
					Usage: "Set notes (blank clears them)",
				},
				&cli.StringSliceFlag{
					Name:  "add-phone",
					Usage: "Add phone number (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:  "remove-phone",
					Usage: "Remove phone number (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:  "add-email",
					Usage: "Add email address (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:  "remove-email",
					Usage: "Remove email address (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:  "add-tag",
					Usage: "Add tag (can be specified multiple times)",
				},
				&cli.StringSliceFlag{
					Name:  "remove-tag",
					Usage: "Remove tag (can be specified multiple times)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				rawID := cmd.Args().First()
				if rawID == "" {
					return fmt.Errorf("contact ID argument is required")
				}

				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				opts := commands.UpdateContactOptions{
					ID:           rawID,
					FirstName:    stringFlagPtr(cmd, "first-name"),
					LastName:     stringFlagPtr(cmd, "last-name"),
					Notes:        stringFlagPtr(cmd, "notes"),
					AddPhones:    cmd.StringSlice("add-phone"),
					RemovePhones: cmd.StringSlice("remove-phone"),
					AddEmails:    cmd.StringSlice("add-email"),
					RemoveEmails: cmd.StringSlice("remove-email"),
					AddTags:      cmd.StringSlice("add-tag"),
					RemoveTags:   cmd.StringSlice("remove-tag"),
				}

				return commands.RunUpdateContact(
					ctx,
					container.ContactService(),
					container.Logger(),
					opts,
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:      "delete",
			Usage:     "Delete a contact",
			UsageText: "phonebook delete ID [--yes]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Skip confirmation prompt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				rawID := cmd.Args().First()
				if rawID == "" {
					return fmt.Errorf("contact ID argument is required")
				}

				container := loadContainer(cmd)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunDeleteContact(
					ctx,
					container.ContactService(),
					container.Logger(),
					rawID,
					cmd.Bool("yes"),
					commands.DefaultIO(),
				)
			},
		},
	}
}

// stringFlagPtr distinguishes an unset string flag from one explicitly set
// to an empty value.
func stringFlagPtr(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	value := cmd.String(name)
	return &value
}
