// Package users persists local mirrors of identity-provider accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type Repository interface {
	// Upsert inserts the user or, when ExternalID is already known, refreshes
	// the provider-owned profile fields. Username is never rewritten.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ListExcept(ctx context.Context, userID string) ([]models.User, error)
}
