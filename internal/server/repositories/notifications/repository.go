// Package notifications persists share-lifecycle notifications and serves
// the per-receiver notification feed.
package notifications

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	// Retype rewrites, in place, the receiver's notifications of type from
	// for a share into type to. It returns the number of rows rewritten.
	Retype(ctx context.Context, shareID, receiverID string, from, to models.NotificationType) (int64, error)
	ListForReceiver(ctx context.Context, receiverID string) ([]models.NotificationView, error)
	MarkRead(ctx context.Context, id, receiverID string) (bool, error)
}
