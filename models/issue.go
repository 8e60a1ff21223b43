package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IssueStatus enum, stored as an integer by the API
type IssueStatus int

const (
	StatusPending IssueStatus = iota
	StatusInProgress
	StatusResolved
	StatusRejected
)

// Label returns the display name for a status. Labels are a display-layer
// derivation only and must never be sent back to the API as the stored value.
func (s IssueStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Pending"
	}
}

// ParseStatus converts a display label back to its integer status.
func ParseStatus(label string) (IssueStatus, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pending":
		return StatusPending, nil
	case "in progress", "in-progress", "inprogress":
		return StatusInProgress, nil
	case "resolved":
		return StatusResolved, nil
	case "rejected":
		return StatusRejected, nil
	}
	return StatusPending, fmt.Errorf("unknown status %q", label)
}

// IssuePriority enum, stored as an integer by the API
type IssuePriority int

const (
	PriorityLow IssuePriority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// Label returns the display name for a priority.
func (p IssuePriority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	default:
		return "Low"
	}
}

// ParsePriority converts a display label back to its integer priority.
func ParsePriority(label string) (IssuePriority, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical", "urgent":
		return PriorityCritical, nil
	}
	return PriorityLow, fmt.Errorf("unknown priority %q", label)
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	AuthorityID uuid.UUID     `json:"authority_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Location    string        `json:"location"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Status      IssueStatus   `json:"status"`
	Priority    IssuePriority `json:"priority"`
	VoteCount   int           `json:"vote_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	User        *IssueUser    `json:"user,omitempty"`
	Authority   *Authority    `json:"authority,omitempty"`
	Votes       []Vote        `json:"votes,omitempty"`
	Media       []Media       `json:"media,omitempty"`
}

// IssueUser is the reporter reference embedded in an issue response
type IssueUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	District string    `json:"district,omitempty"`
}

// IssueList is the paginated response of the issues list resource
type IssueList struct {
	Issues  []Issue `json:"issues"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	Limit   int     `json:"limit"`
	HasMore bool    `json:"has_more"`
}

// CreateIssueRequest is the payload for reporting a new issue
type CreateIssueRequest struct {
	Title       string        `json:"title" validate:"required,max=255"`
	Description string        `json:"description" validate:"required,max=2000"`
	Category    string        `json:"category" validate:"required,max=100"`
	Location    string        `json:"location" validate:"required,max=255"`
	AuthorityID uuid.UUID     `json:"authority_id" validate:"required"`
	Priority    IssuePriority `json:"priority" validate:"min=0,max=3"`
	Latitude    *float64      `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64      `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// UpdateIssueRequest is a partial issue update; nil fields are left untouched
type UpdateIssueRequest struct {
	Title       *string        `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string        `json:"description,omitempty" validate:"omitempty,max=2000"`
	Category    *string        `json:"category,omitempty" validate:"omitempty,max=100"`
	Location    *string        `json:"location,omitempty" validate:"omitempty,max=255"`
	Status      *IssueStatus   `json:"status,omitempty" validate:"omitempty,min=0,max=3"`
	Priority    *IssuePriority `json:"priority,omitempty" validate:"omitempty,min=0,max=3"`
	Latitude    *float64       `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64       `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}
