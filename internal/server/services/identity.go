// Package services contains the server-side business logic of gophnotes.
// Every operation receives the acting user's id explicitly.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
)

// IdentityService maps verified identity-provider sessions onto local users.
type IdentityService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager) *IdentityService {
	return &IdentityService{db: db, repomanager: m}
}

// ResolveCurrentUser returns the local user for session, creating it on
// first sight. Later calls refresh email, display name and avatar from the
// provider; the username chosen at creation is kept.
func (s *IdentityService) ResolveCurrentUser(ctx context.Context, session *auth.Session) (*models.User, error) {
	if session == nil || session.ExternalID == "" {
		return nil, common.ErrorUnauthenticated
	}

	p := session.Profile
	user := &models.User{
		ExternalID:  session.ExternalID,
		Username:    usernameFor(session),
		Email:       p.Email,
		DisplayName: strings.TrimSpace(p.FirstName + " " + p.LastName),
		AvatarURL:   p.ImageURL,
	}

	u, err := s.repomanager.Users(s.db).Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error resolving user: %w", err)
	}
	return u, nil
}

// usernameFor prefers the provider username, then the email local part.
func usernameFor(session *auth.Session) string {
	if session.Profile.Username != "" {
		return session.Profile.Username
	}
	if local, _, ok := strings.Cut(session.Profile.Email, "@"); ok && local != "" {
		return local
	}
	return session.ExternalID
}

// ListShareCandidates returns every user except userID, ordered by username.
func (s *IdentityService) ListShareCandidates(ctx context.Context, userID string) ([]models.User, error) {
	return s.repomanager.Users(s.db).ListExcept(ctx, userID)
}
