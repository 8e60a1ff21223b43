package clienttest

import (
	"fmt"
	"time"

	"citisevak-cli/models"

	"github.com/google/uuid"
)

// SeedIssues builds n deterministic issues spread across categories,
// districts, and statuses, newest first by creation time.
func SeedIssues(n int) []models.Issue {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	issues := make([]models.Issue, 0, n)
	for i := 0; i < n; i++ {
		category := models.Categories[i%len(models.Categories)]
		district := models.Districts[i%len(models.Districts)]
		created := base.Add(time.Duration(n-i) * time.Hour)

		authority := models.Authority{
			ID:       uuid.NewSHA1(uuid.NameSpaceOID, []byte("authority-"+district)),
			Name:     district + " Municipal Office",
			District: district,
			Category: category,
		}

		issues = append(issues, models.Issue{
			ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("issue-%d", i))),
			AuthorityID: authority.ID,
			Title:       fmt.Sprintf("%s problem %d", category, i+1),
			Description: fmt.Sprintf("Reported %s issue near ward %d", category, i%12+1),
			Category:    category,
			Location:    fmt.Sprintf("Lat: %.2f, Lng: %.2f", 22.3+float64(i%20)*0.01, 72.9+float64(i%20)*0.01),
			Status:      models.IssueStatus(i % 4),
			Priority:    models.IssuePriority(i % 4),
			VoteCount:   i % 7,
			CreatedAt:   created,
			UpdatedAt:   created,
			Authority:   &authority,
		})
	}
	return issues
}
