package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var voteCommand = &cli.Command{
	Name:      "vote",
	Usage:     "Upvote an issue",
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
		result, err := a.client.Votes.Vote(cCtx.Context, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d votes)\n", result.Message, result.TotalVotes)
		return nil
	},
}

var unvoteCommand = &cli.Command{
	Name:      "unvote",
	Usage:     "Withdraw an upvote",
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
		result, err := a.client.Votes.Unvote(cCtx.Context, id)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d votes)\n", result.Message, result.TotalVotes)
		return nil
	},
}
