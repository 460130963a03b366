package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
)

// NoteService is the note store seen through the visibility rules: a user
// reads notes they own or hold an accepted share for, and writes only their
// own.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

// ListNotes returns owned and shared-with notes, newest first.
func (s *NoteService) ListNotes(ctx context.Context, userID string) ([]models.NoteView, error) {
	return s.repomanager.Notes(s.db).ListVisible(ctx, userID)
}

// GetNote returns the note if requesterID may read it. A note that exists
// but is not visible is reported exactly like a missing one.
func (s *NoteService) GetNote(ctx context.Context, noteID, requesterID string) (*models.NoteView, error) {
	if !validID(noteID) {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Notes(s.db).GetVisible(ctx, noteID, requesterID)
}

func (s *NoteService) CreateNote(ctx context.Context, authorID string, in models.NoteInput) (*models.Note, error) {
	note := &models.Note{
		Title:    in.Title,
		Content:  in.Content,
		Icon:     in.Icon,
		Color:    in.Color,
		AuthorID: authorID,
	}
	return s.repomanager.Notes(s.db).Create(ctx, note)
}

// UpdateNote rewrites a note owned by authorID. Anything else is a silent
// no-op reported as changed=false.
func (s *NoteService) UpdateNote(ctx context.Context, noteID, authorID string, in models.NoteInput) (bool, error) {
	if !validID(noteID) {
		return false, nil
	}
	return s.repomanager.Notes(s.db).Update(ctx, noteID, authorID, in)
}

// DeleteNote follows the same policy as UpdateNote.
func (s *NoteService) DeleteNote(ctx context.Context, noteID, authorID string) (bool, error) {
	if !validID(noteID) {
		return false, nil
	}
	return s.repomanager.Notes(s.db).Delete(ctx, noteID, authorID)
}
