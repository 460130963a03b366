// Package shares persists share requests between a note owner and a
// receiver.
package shares

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// Repository reads and mutates share requests. The *ForUpdate lookups lock
// the row and are meant to run inside a transaction.
type Repository interface {
	GetForUpdate(ctx context.Context, shareID string) (*models.ShareRequest, error)
	FindForUpdate(ctx context.Context, noteID, receiverID string) (*models.ShareRequest, error)
	Create(ctx context.Context, share *models.ShareRequest) (*models.ShareRequest, error)
	// Reopen moves a REJECTED request back to PENDING, keeping its
	// original created_at.
	Reopen(ctx context.Context, shareID string) (*models.ShareRequest, error)
	// Resolve moves a PENDING request to status and returns the stored row.
	// It fails with common.ErrorNotFound when the request was no longer
	// PENDING.
	Resolve(ctx context.Context, shareID string, status models.ShareStatus) (*models.ShareRequest, error)
}
