package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a status-change message delivered to a user
type Notification struct {
	ID        uuid.UUID `json:"id"`
	IssueID   uuid.UUID `json:"issue_id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	IsCitizen bool      `json:"is_citizen"`
	CreatedAt time.Time `json:"created_at"`
}

// IssueStats is the aggregate returned by the stats resource
type IssueStats struct {
	TotalIssues    int            `json:"total_issues"`
	OpenIssues     int            `json:"open_issues"`
	ResolvedIssues int            `json:"resolved_issues"`
	TotalVotes     int            `json:"total_votes"`
	ByCategory     map[string]int `json:"by_category,omitempty"`
	ByDistrict     map[string]int `json:"by_district,omitempty"`
}
