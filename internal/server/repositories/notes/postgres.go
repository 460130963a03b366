package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// visibleSelect projects a note for requester $1. Both the list and the
// single-note read share this predicate.
const visibleSelect = `
	SELECT n.id, n.title, n.content, n.icon, n.color, n.author_id, n.created_at, n.updated_at,
	       n.author_id = $1 AS is_owner,
	       CASE WHEN n.author_id = $1 THEN '' ELSE COALESCE(NULLIF(u.display_name, ''), u.username) END AS shared_by
	FROM notes n
	JOIN users u ON u.id = n.author_id
	WHERE (n.author_id = $1 OR EXISTS (
		SELECT 1 FROM share_requests s
		WHERE s.note_id = n.id AND s.receiver_id = $1 AND s.status = 'ACCEPTED'))`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanView(s scanner) (*models.NoteView, error) {
	v := &models.NoteView{}
	err := s.Scan(&v.ID, &v.Title, &v.Content, &v.Icon, &v.Color, &v.AuthorID, &v.CreatedAt, &v.UpdatedAt,
		&v.IsOwner, &v.SharedBy)
	return v, err
}

func (r *PostgresRepository) ListVisible(ctx context.Context, userID string) ([]models.NoteView, error) {
	rows, err := r.db.QueryContext(ctx, visibleSelect+` ORDER BY n.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.NoteView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetVisible(ctx context.Context, noteID, userID string) (*models.NoteView, error) {
	v, err := scanView(r.db.QueryRowContext(ctx, visibleSelect+` AND n.id = $2`, userID, noteID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) GetOwned(ctx context.Context, noteID, authorID string) (*models.Note, error) {
	query :=
		`SELECT id, title, content, icon, color, author_id, created_at, updated_at
		 FROM notes WHERE id = $1 AND author_id = $2`

	n := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, noteID, authorID).Scan(
		&n.ID, &n.Title, &n.Content, &n.Icon, &n.Color, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query :=
		`INSERT INTO notes (title, content, icon, color, author_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, note.Title, note.Content, note.Icon, note.Color, note.AuthorID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

// Update rewrites the note only when authorID owns it. The bool reports
// whether a row changed.
func (r *PostgresRepository) Update(ctx context.Context, noteID, authorID string, in models.NoteInput) (bool, error) {
	query :=
		`UPDATE notes SET title = $3, content = $4, icon = $5, color = $6, updated_at = now()
		 WHERE id = $1 AND author_id = $2`

	res, err := r.db.ExecContext(ctx, query, noteID, authorID, in.Title, in.Content, in.Icon, in.Color)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

// Delete removes the note only when authorID owns it. Shares and their
// notifications go with it through ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, noteID, authorID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND author_id = $2`, noteID, authorID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
