package models

import "github.com/google/uuid"

// Media is a file attached to an issue
type Media struct {
	ID      uuid.UUID `json:"id"`
	IssueID uuid.UUID `json:"issue_id"`
	FileURL string    `json:"file_url"`
}

// AddMediaRequest attaches an uploaded file to an issue
type AddMediaRequest struct {
	FileURL string `json:"file_url" validate:"required,url"`
}
