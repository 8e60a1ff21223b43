package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardCitizen ranks a citizen by issues reported
type LeaderboardCitizen struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	District       string     `json:"district,omitempty"`
	TotalIssues    int        `json:"total_issues"`
	ResolvedIssues int        `json:"resolved_issues"`
	PendingIssues  int        `json:"pending_issues"`
	SuccessRate    float64    `json:"success_rate"`
	LastIssueDate  *time.Time `json:"last_issue_date,omitempty"`
}

// LeaderboardAuthority ranks an authority by issues resolved
type LeaderboardAuthority struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	District          string     `json:"district"`
	Category          string     `json:"category"`
	ContactEmail      string     `json:"contact_email"`
	TotalIssues       int        `json:"total_issues"`
	ResolvedIssues    int        `json:"resolved_issues"`
	PendingIssues     int        `json:"pending_issues"`
	SuccessRate       float64    `json:"success_rate"`
	AvgResolutionTime *float64   `json:"avg_resolution_time,omitempty"`
	LastActivityDate  *time.Time `json:"last_activity_date,omitempty"`
}

// CitizenLeaderboard is the citizen ranking response
type CitizenLeaderboard struct {
	Citizens   []LeaderboardCitizen `json:"citizens"`
	TotalCount int                  `json:"total_count"`
}

// AuthorityLeaderboard is the authority ranking response
type AuthorityLeaderboard struct {
	Authorities []LeaderboardAuthority `json:"authorities"`
	TotalCount  int                    `json:"total_count"`
}
