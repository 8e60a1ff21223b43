package main

import (
	"fmt"

	"citisevak-cli/models"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var mediaCommand = &cli.Command{
	Name:  "media",
	Usage: "Manage files attached to issues",
	Subcommands: []*cli.Command{
		{
			Name:      "list",
			Usage:     "List an issue's attachments",
			ArgsUsage: "ISSUE_ID",
			Action: func(cCtx *cli.Context) error {
				a, err := newAppEnv()
				if err != nil {
					return err
				}
				issueID, err := uuid.Parse(cCtx.Args().First())
				if err != nil {
					return fmt.Errorf("invalid issue id: %w", err)
				}
				media, err := a.client.Media.List(cCtx.Context, issueID)
				if err != nil {
					return err
				}
				for _, m := range media {
					fmt.Printf("%s  %s\n", m.ID, m.FileURL)
				}
				return nil
			},
		},
		{
			Name:      "add",
			Usage:     "Attach an uploaded file to an issue",
			ArgsUsage: "ISSUE_ID",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "url", Required: true, Usage: "public file URL"},
			},
			Action: func(cCtx *cli.Context) error {
				a, err := newAppEnv()
				if err != nil {
					return err
				}
				issueID, err := uuid.Parse(cCtx.Args().First())
				if err != nil {
					return fmt.Errorf("invalid issue id: %w", err)
				}
				m, err := a.client.Media.Add(cCtx.Context, issueID, models.AddMediaRequest{
					FileURL: cCtx.String("url"),
				})
				if err != nil {
					return err
				}
				fmt.Printf("Attached %s\n", m.ID)
				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Remove an attachment",
			ArgsUsage: "MEDIA_ID",
			Action: func(cCtx *cli.Context) error {
				a, err := newAppEnv()
				if err != nil {
					return err
				}
				mediaID, err := uuid.Parse(cCtx.Args().First())
				if err != nil {
					return fmt.Errorf("invalid media id: %w", err)
				}
				if err := a.client.Media.Delete(cCtx.Context, mediaID); err != nil {
					return err
				}
				fmt.Printf("Removed %s\n", mediaID)
				return nil
			},
		},
	},
}
