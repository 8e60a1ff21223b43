package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "citisevak",
		Usage: "Report and track civic issues from the terminal",
		Commands: []*cli.Command{
			signupCommand,
			loginCommand,
			googleCommand,
			logoutCommand,
			whoamiCommand,
			issuesCommand,
			voteCommand,
			unvoteCommand,
			mediaCommand,
			mapCommand,
			notificationsCommand,
			statsCommand,
			leaderboardCommand,
			districtsCommand,
			categoriesCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}
