// Package exports records note renderings uploaded to object storage.
package exports

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.NoteExport) (*models.NoteExport, error)
	// Latest returns the newest export of a note made for a user, or
	// common.ErrorNotFound.
	Latest(ctx context.Context, noteID, userID string) (*models.NoteExport, error)
}
