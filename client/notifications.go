package client

import (
	"context"
	"net/http"

	"citisevak-cli/cache"
	"citisevak-cli/models"
)

// NotificationsService covers the signed-in user's notifications.
type NotificationsService struct {
	c *Client
}

// List fetches the user's notifications.
func (s *NotificationsService) List(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.c.getCached(ctx, cache.NotificationsKey, "/notification", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkAllRead marks every notification read and invalidates the cached list.
func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	if err := s.c.do(ctx, http.MethodPatch, "/notifications/read/", nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.InvalidateNotifications(ctx)
	return nil
}
