package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
)

// ShareService drives the share request lifecycle:
//
//	NONE -> PENDING -> ACCEPTED
//	              \--> REJECTED -> PENDING
//
// Every transition writes its notifications in the same transaction.
type ShareService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewShareService(db *sql.DB, m repomanager.RepositoryManager) *ShareService {
	return &ShareService{db: db, repomanager: m}
}

// CreateShareRequest asks receiverID to accept noteID from its owner
// senderID. A previously rejected request is reopened rather than
// duplicated, which the outcome reports as Reshared.
func (s *ShareService) CreateShareRequest(ctx context.Context, noteID, senderID, receiverID string) (*models.ShareOutcome, error) {
	if sameID(senderID, receiverID) {
		return nil, common.ErrSelfShare
	}

	receiverID, ok := canonicalID(receiverID)
	if !ok {
		return nil, common.ErrReceiverNotFound
	}
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrReceiverNotFound
		}
		return nil, err
	}

	noteID, ok = canonicalID(noteID)
	if !ok {
		return nil, common.ErrNotOwnerOrNoteMissing
	}
	if _, err := s.repomanager.Notes(s.db).GetOwned(ctx, noteID, senderID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotOwnerOrNoteMissing
		}
		return nil, err
	}

	var outcome *models.ShareOutcome
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		shareRepo := s.repomanager.Shares(tx)

		existing, err := shareRepo.FindForUpdate(ctx, noteID, receiverID)
		switch {
		case err == nil:
			switch existing.Status {
			case models.SharePending:
				return common.ErrAlreadyPending
			case models.ShareAccepted:
				return common.ErrAlreadyShared
			}
			reopened, err := shareRepo.Reopen(ctx, existing.ID)
			if err != nil {
				return err
			}
			outcome = &models.ShareOutcome{Share: reopened, Reshared: true}

		case errors.Is(err, common.ErrorNotFound):
			created, err := shareRepo.Create(ctx, &models.ShareRequest{
				NoteID:     noteID,
				SenderID:   senderID,
				ReceiverID: receiverID,
				Status:     models.SharePending,
				Permission: models.PermissionView,
			})
			if err != nil {
				if errors.Is(err, common.ErrUniqueViolation) {
					return common.ErrAlreadyPending
				}
				return err
			}
			outcome = &models.ShareOutcome{Share: created}

		default:
			return err
		}

		_, err = s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			ShareID:    outcome.Share.ID,
			CreatorID:  senderID,
			ReceiverID: receiverID,
			Type:       models.NotificationShareRequest,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// AcceptShareRequest grants the receiver read access to the shared note.
func (s *ShareService) AcceptShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error) {
	return s.resolve(ctx, shareID, actingUserID, models.ShareAccepted, models.NotificationShareAccepted, "accept")
}

// RejectShareRequest declines a pending request. The owner may share again.
func (s *ShareService) RejectShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error) {
	return s.resolve(ctx, shareID, actingUserID, models.ShareRejected, models.NotificationShareDeclined, "reject")
}

// resolve moves a PENDING request to status on behalf of its receiver. The
// row is locked for the whole transaction and the update is conditional on
// PENDING, so of two racing calls exactly one succeeds.
func (s *ShareService) resolve(ctx context.Context, shareID, actingUserID string,
	status models.ShareStatus, kind models.NotificationType, verb string) (*models.ShareRequest, error) {

	if !validID(shareID) {
		return nil, common.ErrRequestNotFound
	}

	var share *models.ShareRequest
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		shareRepo := s.repomanager.Shares(tx)
		notificationRepo := s.repomanager.Notifications(tx)

		current, err := shareRepo.GetForUpdate(ctx, shareID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrRequestNotFound
			}
			return err
		}

		if current.ReceiverID != actingUserID {
			return common.ErrorForbidden
		}
		if current.Status != models.SharePending {
			return invalidTransition(verb, current.Status)
		}

		share, err = shareRepo.Resolve(ctx, shareID, status)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: cannot %s a request that is no longer pending", common.ErrInvalidStateTransition, verb)
			}
			return err
		}

		if _, err := notificationRepo.Retype(ctx, shareID, actingUserID, models.NotificationShareRequest, kind); err != nil {
			return err
		}
		_, err = notificationRepo.Create(ctx, &models.Notification{
			ShareID:    shareID,
			CreatorID:  actingUserID,
			ReceiverID: share.SenderID,
			Type:       kind,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return share, nil
}

func invalidTransition(verb string, current models.ShareStatus) error {
	return fmt.Errorf("%w: cannot %s a request that is already %s",
		common.ErrInvalidStateTransition, verb, strings.ToLower(string(current)))
}
