package client

import (
	"context"
	"net/http"

	"citisevak-cli/cache"
	"citisevak-cli/models"

	"github.com/google/uuid"
)

// MediaService covers file attachments on issues.
type MediaService struct {
	c *Client
}

// Add attaches an uploaded file to an issue.
func (s *MediaService) Add(ctx context.Context, issueID uuid.UUID, req models.AddMediaRequest) (*models.Media, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var media models.Media
	if err := s.c.do(ctx, http.MethodPost, "/media/"+issueID.String(), nil, req, &media); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateMedia(ctx, issueID.String())
	return &media, nil
}

// List fetches the media attached to an issue.
func (s *MediaService) List(ctx context.Context, issueID uuid.UUID) ([]models.Media, error) {
	var media []models.Media
	key := cache.MediaKey(issueID.String())
	if err := s.c.getCached(ctx, key, "/media/"+issueID.String(), nil, &media); err != nil {
		return nil, err
	}
	return media, nil
}

// Delete removes a media item by its own id. The id alone does not identify
// the owning issue, so all media entries are invalidated.
func (s *MediaService) Delete(ctx context.Context, mediaID uuid.UUID) error {
	if err := s.c.do(ctx, http.MethodDelete, "/media/"+mediaID.String(), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.InvalidateAllMedia(ctx)
	return nil
}
