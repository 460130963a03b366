package notifications

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	query :=
		`INSERT INTO notifications (share_id, creator_id, receiver_id, type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, read, created_at`

	err := r.db.QueryRowContext(ctx, query, n.ShareID, n.CreatorID, n.ReceiverID, string(n.Type)).
		Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Retype(ctx context.Context, shareID, receiverID string, from, to models.NotificationType) (int64, error) {
	query :=
		`UPDATE notifications SET type = $4
		 WHERE share_id = $1 AND receiver_id = $2 AND type = $3`

	res, err := r.db.ExecContext(ctx, query, shareID, receiverID, string(from), string(to))
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

// ListForReceiver returns the receiver's feed, newest first. The creator
// name falls back to the username when the display name is empty.
func (r *PostgresRepository) ListForReceiver(ctx context.Context, receiverID string) ([]models.NotificationView, error) {
	query :=
		`SELECT nt.id, nt.share_id, nt.creator_id, nt.receiver_id, nt.type, nt.read, nt.created_at,
		        COALESCE(NULLIF(c.display_name, ''), c.username), n.id, n.title, s.status
		 FROM notifications nt
		 JOIN users c ON c.id = nt.creator_id
		 JOIN share_requests s ON s.id = nt.share_id
		 JOIN notes n ON n.id = s.note_id
		 WHERE nt.receiver_id = $1
		 ORDER BY nt.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, receiverID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.NotificationView
	for rows.Next() {
		var v models.NotificationView
		if err := rows.Scan(&v.ID, &v.ShareID, &v.CreatorID, &v.ReceiverID, &v.Type, &v.Read, &v.CreatedAt,
			&v.CreatorName, &v.NoteID, &v.NoteTitle, &v.ShareStatus); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id, receiverID string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND receiver_id = $2`, id, receiverID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}
