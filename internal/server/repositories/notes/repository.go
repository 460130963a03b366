// Package notes persists notes and answers the note-visibility read model.
package notes

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// Repository reads and writes notes. Visibility means the user owns the
// note or holds an ACCEPTED share for it.
type Repository interface {
	ListVisible(ctx context.Context, userID string) ([]models.NoteView, error)
	GetVisible(ctx context.Context, noteID, userID string) (*models.NoteView, error)
	GetOwned(ctx context.Context, noteID, authorID string) (*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, noteID, authorID string, in models.NoteInput) (bool, error)
	Delete(ctx context.Context, noteID, authorID string) (bool, error)
}
