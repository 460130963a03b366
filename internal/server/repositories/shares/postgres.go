package shares

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

const shareColumns = `id, note_id, sender_id, receiver_id, status, permission, created_at, accepted_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.ShareRequest, error) {
	s := &models.ShareRequest{}
	err := row.Scan(&s.ID, &s.NoteID, &s.SenderID, &s.ReceiverID, &s.Status, &s.Permission, &s.CreatedAt, &s.AcceptedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, shareID string) (*models.ShareRequest, error) {
	query := `SELECT ` + shareColumns + ` FROM share_requests WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, shareID))
}

func (r *PostgresRepository) FindForUpdate(ctx context.Context, noteID, receiverID string) (*models.ShareRequest, error) {
	query := `SELECT ` + shareColumns + ` FROM share_requests WHERE note_id = $1 AND receiver_id = $2 FOR UPDATE`
	return r.scanOne(r.db.QueryRowContext(ctx, query, noteID, receiverID))
}

// Create inserts a new request. A concurrent insert for the same
// (note, receiver) pair surfaces as common.ErrUniqueViolation.
func (r *PostgresRepository) Create(ctx context.Context, share *models.ShareRequest) (*models.ShareRequest, error) {
	query :=
		`INSERT INTO share_requests (note_id, sender_id, receiver_id, status, permission)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		share.NoteID, share.SenderID, share.ReceiverID, string(share.Status), string(share.Permission),
	).Scan(&share.ID, &share.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrUniqueViolation
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return share, nil
}

func (r *PostgresRepository) Reopen(ctx context.Context, shareID string) (*models.ShareRequest, error) {
	query :=
		`UPDATE share_requests SET status = 'PENDING', accepted_at = NULL
		 WHERE id = $1 AND status = 'REJECTED'
		 RETURNING ` + shareColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query, shareID))
}

func (r *PostgresRepository) Resolve(ctx context.Context, shareID string, status models.ShareStatus) (*models.ShareRequest, error) {
	query :=
		`UPDATE share_requests
		 SET status = $2, accepted_at = CASE WHEN $2::text = 'ACCEPTED' THEN now() ELSE NULL END
		 WHERE id = $1 AND status = 'PENDING'
		 RETURNING ` + shareColumns

	return r.scanOne(r.db.QueryRowContext(ctx, query, shareID, string(status)))
}
