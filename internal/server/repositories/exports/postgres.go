package exports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

// PostgresRepository implements export bookkeeping over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.NoteExport) (*models.NoteExport, error) {
	query :=
		`INSERT INTO note_exports (note_id, user_id, storage_key)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, e.NoteID, e.UserID, e.StorageKey).Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Latest(ctx context.Context, noteID, userID string) (*models.NoteExport, error) {
	query :=
		`SELECT id, note_id, user_id, storage_key, created_at FROM note_exports
		 WHERE note_id = $1 AND user_id = $2
		 ORDER BY created_at DESC LIMIT 1`

	e := &models.NoteExport{}
	err := r.db.QueryRowContext(ctx, query, noteID, userID).Scan(&e.ID, &e.NoteID, &e.UserID, &e.StorageKey, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}
