package models

import "github.com/google/uuid"

// Vote represents a user's upvote on an issue
type Vote struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	IssueID uuid.UUID `json:"issue_id"`
}

// VoteResult is returned by the vote and unvote operations
type VoteResult struct {
	Message      string `json:"message"`
	Vote         *Vote  `json:"vote,omitempty"`
	TotalVotes   int    `json:"total_votes"`
	UserHasVoted bool   `json:"user_has_voted"`
}
