package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"citisevak-cli/feed"
	"citisevak-cli/models"
	"citisevak-cli/query"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var issuesCommand = &cli.Command{
	Name:  "issues",
	Usage: "Browse and manage civic issues",
	Subcommands: []*cli.Command{
		issuesListCommand,
		issuesWatchCommand,
		issuesGetCommand,
		issuesCreateCommand,
		issuesUpdateCommand,
		issuesDeleteCommand,
	},
}

var listFlags = []cli.Flag{
	&cli.StringFlag{Name: "search", Usage: "free-text search"},
	&cli.StringFlag{Name: "district"},
	&cli.StringFlag{Name: "category"},
	&cli.StringFlag{Name: "status", Usage: "integer 0-3 or a label like Resolved"},
	&cli.StringFlag{Name: "sort", Value: "created_at"},
	&cli.StringFlag{Name: "order", Value: "desc"},
	&cli.IntFlag{Name: "limit", Value: 12},
	&cli.BoolFlag{Name: "all", Usage: "keep loading until no page remains"},
}

func queryFromFlags(cCtx *cli.Context) query.IssueQuery {
	q := query.New()
	q.SetSearch(cCtx.String("search"))
	q.SetDistrict(cCtx.String("district"))
	q.SetCategory(cCtx.String("category"))
	q.SetStatus(cCtx.String("status"))
	q.SetSort(cCtx.String("sort"), cCtx.String("order"))
	q.SetLimit(cCtx.Int("limit"))
	return q
}

var issuesListCommand = &cli.Command{
	Name:  "list",
	Usage: "List issues with filters",
	Flags: listFlags,
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}

		f := feed.New(cCtx.Context, a.client, 0)
		defer f.Close()
		f.ReplaceQuery(queryFromFlags(cCtx))

		if err := f.Load(cCtx.Context); err != nil {
			return err
		}
		for cCtx.Bool("all") && f.HasMore() {
			if err := f.LoadMore(cCtx.Context); err != nil {
				return err
			}
		}

		printIssues(f.Items())
		fmt.Printf("\n%d of %d issues", len(f.Items()), f.Total())
		if f.HasMore() {
			fmt.Print(" (more available, use --all)")
		}
		fmt.Println()
		return nil
	},
}

var issuesWatchCommand = &cli.Command{
	Name:  "watch",
	Usage: "Interactive search: type a term, results follow after a pause",
	Flags: listFlags,
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}

		f := feed.New(cCtx.Context, a.client, 300*time.Millisecond)
		defer f.Close()
		f.ReplaceQuery(queryFromFlags(cCtx))

		if err := f.Load(cCtx.Context); err != nil {
			return err
		}
		printIssues(f.Items())
		fmt.Println("\nType to search, empty line to quit.")

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			term := strings.TrimSpace(scanner.Text())
			if term == "" {
				break
			}
			f.Input(term)
			waitForFeed(f, term)
			printIssues(f.Items())
			fmt.Printf("\n%d of %d issues for %q\n", len(f.Items()), f.Total(), f.Query().Search)
		}
		return scanner.Err()
	},
}

// waitForFeed blocks until the debounced load for term settles.
func waitForFeed(f *feed.Feed, term string) {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
		if f.Query().Search != term {
			continue
		}
		if s := f.State(); s == feed.StateLoaded || s == feed.StateFailed {
			return
		}
	}
}

var issuesGetCommand = &cli.Command{
	Name:      "get",
	Usage:     "Show one issue",
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
		printIssueDetail(issue)
		return nil
	},
}

var issuesCreateCommand = &cli.Command{
	Name:  "create",
	Usage: "Report a new issue",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "description", Required: true},
		&cli.StringFlag{Name: "category", Required: true},
		&cli.StringFlag{Name: "location", Required: true},
		&cli.StringFlag{Name: "authority", Required: true, Usage: "authority id"},
		&cli.StringFlag{Name: "priority", Value: "Low"},
		&cli.Float64Flag{Name: "lat"},
		&cli.Float64Flag{Name: "lng"},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		authorityID, err := uuid.Parse(cCtx.String("authority"))
		if err != nil {
			return fmt.Errorf("invalid authority id: %w", err)
		}
		priority, err := models.ParsePriority(cCtx.String("priority"))
		if err != nil {
			return err
		}
		req := models.CreateIssueRequest{
			Title:       cCtx.String("title"),
			Description: cCtx.String("description"),
			Category:    cCtx.String("category"),
			Location:    cCtx.String("location"),
			AuthorityID: authorityID,
			Priority:    priority,
		}
		if cCtx.IsSet("lat") && cCtx.IsSet("lng") {
			lat, lng := cCtx.Float64("lat"), cCtx.Float64("lng")
			req.Latitude, req.Longitude = &lat, &lng
		}
		issue, err := a.client.Issues.Create(cCtx.Context, req)
		if err != nil {
			return err
		}
		fmt.Printf("Reported issue %s\n", issue.ID)
		return nil
	},
}

var issuesUpdateCommand = &cli.Command{
	Name:      "update",
	Usage:     "Update an issue",
	ArgsUsage: "ISSUE_ID",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "title"},
		&cli.StringFlag{Name: "description"},
		&cli.StringFlag{Name: "category"},
		&cli.StringFlag{Name: "location"},
		&cli.StringFlag{Name: "status", Usage: "integer 0-3 or a label"},
		&cli.StringFlag{Name: "priority"},
	},
	Action: func(cCtx *cli.Context) error {
		a, err := newAppEnv()
		if err != nil {
			return err
		}
		id, err := uuid.Parse(cCtx.Args().First())
		if err != nil {
			return fmt.Errorf("invalid issue id: %w", err)
		}

		var req models.UpdateIssueRequest
		if cCtx.IsSet("title") {
			v := cCtx.String("title")
			req.Title = &v
		}
		if cCtx.IsSet("description") {
			v := cCtx.String("description")
			req.Description = &v
		}
		if cCtx.IsSet("category") {
			v := cCtx.String("category")
			req.Category = &v
		}
		if cCtx.IsSet("location") {
			v := cCtx.String("location")
			req.Location = &v
		}
		if cCtx.IsSet("status") {
			s, err := models.ParseStatus(cCtx.String("status"))
			if err != nil {
				return err
			}
			req.Status = &s
		}
		if cCtx.IsSet("priority") {
			p, err := models.ParsePriority(cCtx.String("priority"))
			if err != nil {
				return err
			}
			req.Priority = &p
		}

		issue, err := a.client.Issues.Update(cCtx.Context, id, req)
		if err != nil {
			return err
		}
		fmt.Printf("Updated issue %s, status %s\n", issue.ID, issue.Status.Label())
		return nil
	},
}

var issuesDeleteCommand = &cli.Command{
	Name:      "delete",
	Usage:     "Delete an issue",
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
		if err := a.client.Issues.Delete(cCtx.Context, id); err != nil {
			return err
		}
		fmt.Printf("Deleted issue %s\n", id)
		return nil
	},
}

func printIssues(issues []models.Issue) {
	for _, issue := range issues {
		fmt.Printf("%s  [%s/%s]  %s  (%d votes)  %s\n",
			issue.ID, issue.Status.Label(), issue.Priority.Label(),
			issue.Title, issue.VoteCount, issue.Category)
	}
}

func printIssueDetail(issue *models.Issue) {
	fmt.Printf("Issue    %s\n", issue.ID)
	fmt.Printf("Title    %s\n", issue.Title)
	fmt.Printf("Status   %s\n", issue.Status.Label())
	fmt.Printf("Priority %s\n", issue.Priority.Label())
	fmt.Printf("Category %s\n", issue.Category)
	fmt.Printf("Location %s\n", issue.Location)
	fmt.Printf("Votes    %d\n", issue.VoteCount)
	if issue.Authority != nil {
		fmt.Printf("Handled by %s (%s)\n", issue.Authority.Name, issue.Authority.District)
	}
	fmt.Printf("Reported %s\n", issue.CreatedAt.Format(time.RFC822))
	fmt.Println()
	fmt.Println(issue.Description)
}
