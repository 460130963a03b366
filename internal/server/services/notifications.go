package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
)

// NotificationService exposes the per-user notification feed.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

// ListNotifications returns the notifications addressed to userID, newest
// first, with creator name, note title and current share status.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]models.NotificationView, error) {
	return s.repomanager.Notifications(s.db).ListForReceiver(ctx, userID)
}

// MarkNotificationRead flags a notification addressed to userID as read.
// Notifications addressed to someone else are reported as not found.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	if !validID(notificationID) {
		return common.ErrorNotFound
	}
	ok, err := s.repomanager.Notifications(s.db).MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
