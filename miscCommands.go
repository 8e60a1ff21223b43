package main

import (
	"fmt"

	"citisevak-cli/geo"
	"citisevak-cli/models"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var mapCommand = &cli.Command{
	Name:      "map",
	Usage:     "Print an issue's map position and a maps link",
	ArgsUsage: "ISSUE_ID",
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		id, err := uuid.Parse(cCtx.Args().First())
		if err != nil {
			return fmt.Errorf("invalid issue id: %w", err)
		}
		issue, err := a.client.Issues.Get(cCtx.Context, id)
		if err != nil {
			return err
		}
		coord := geo.CoordinateFor(issue.Latitude, issue.Longitude, issue.Location)
		fmt.Printf("%s\n", issue.Location)
		fmt.Printf("%.6f, %.6f\n", coord.Latitude, coord.Longitude)
		fmt.Printf("https://www.google.com/maps?q=%.6f,%.6f\n", coord.Latitude, coord.Longitude)
		return nil
	},
}

var notificationsCommand = &cli.Command{
	Name:  "notifications",
	Usage: "List notifications for the logged-in user",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "read", Usage: "mark all as read after listing"},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		list, err := a.client.Notifications.List(cCtx.Context)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No notifications")
			return nil
		}
		for _, n := range list {
			marker := " "
			if !n.IsRead {
				marker = "*"
			}
			fmt.Printf("%s %s  %s\n", marker, n.CreatedAt.Format("02 Jan 15:04"), n.Message)
		}
		if cCtx.Bool("read") {
			return a.client.Notifications.MarkAllRead(cCtx.Context)
		}
		return nil
	},
}

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "Show platform-wide issue statistics",
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		stats, err := a.client.Stats.Issues(cCtx.Context)
		if err != nil {
			return err
		}
		fmt.Printf("Total issues    %d\n", stats.TotalIssues)
		fmt.Printf("Open issues     %d\n", stats.OpenIssues)
		fmt.Printf("Resolved issues %d\n", stats.ResolvedIssues)
		fmt.Printf("Total votes     %d\n", stats.TotalVotes)
		for category, count := range stats.ByCategory {
			fmt.Printf("  %-20s %d\n", category, count)
		}
		return nil
	},
}

var leaderboardCommand = &cli.Command{
	Name:  "leaderboard",
	Usage: "Show citizen and authority rankings",
	Subcommands: []*cli.Command{
		{
			Name:  "citizen",
			Usage: "Top citizens by issues reported",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Value: 10},
			},
			Action: func(cCtx *cli.Context) error {
				a, err := newAppEnv()
				if err != nil {
					return err
				}
				board, err := a.client.Leaderboards.Citizen(cCtx.Context, cCtx.Int("limit"))
				if err != nil {
					return err
				}
				for i, c := range board.Citizens {
					fmt.Printf("%2d. %-25s %s  %d reported, %d resolved (%.0f%%)\n",
						i+1, c.Name, c.District, c.TotalIssues, c.ResolvedIssues, c.SuccessRate)
				}
				return nil
			},
		},
		{
			Name:  "authority",
			Usage: "Top authorities by issues resolved",
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "limit", Value: 10},
			},
			Action: func(cCtx *cli.Context) error {
				a, err := newAppEnv()
				if err != nil {
					return err
				}
				board, err := a.client.Leaderboards.Authority(cCtx.Context, cCtx.Int("limit"))
				if err != nil {
					return err
				}
				for i, auth := range board.Authorities {
					fmt.Printf("%2d. %-30s %s  %d resolved\n",
						i+1, auth.Name, auth.District, auth.ResolvedIssues)
				}
				return nil
			},
		},
	},
}

var districtsCommand = &cli.Command{
	Name:  "districts",
	Usage: "List the known districts",
	Action: func(cCtx *cli.Context) error {
		for _, d := range models.Districts {
			fmt.Println(d)
		}
		return nil
	},
}

var categoriesCommand = &cli.Command{
	Name:  "categories",
	Usage: "List the known issue categories",
	Action: func(cCtx *cli.Context) error {
		for _, c := range models.Categories {
			fmt.Println(c)
		}
		return nil
	},
}
