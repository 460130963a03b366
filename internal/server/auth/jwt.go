// Package auth verifies session tokens issued by the identity provider.
//
// A session token is an HS256 JWT whose subject is the provider's stable
// user id and whose extra claims carry the provider-owned profile.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// Profile is the identity-provider-owned part of a user.
type Profile struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	ImageURL  string
}

// Session is a verified identity.
type Session struct {
	ExternalID string
	Profile    Profile
}

// Claims is the JWT payload of a session token.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

// IssueSessionToken signs a session token the way the identity provider
// does. Used by cmd/devtoken and tests.
func IssueSessionToken(s Session, secretKey []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ExternalID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Email:     s.Profile.Email,
		Username:  s.Profile.Username,
		FirstName: s.Profile.FirstName,
		LastName:  s.Profile.LastName,
		ImageURL:  s.Profile.ImageURL,
	})

	return token.SignedString(secretKey)
}

// VerifySession checks the token signature and expiry and returns the
// identity it carries. Every failure wraps common.ErrInvalidToken.
func VerifySession(tokenString string, secretKey []byte) (*Session, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: session expired", common.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return &Session{
		ExternalID: claims.Subject,
		Profile: Profile{
			Email:     claims.Email,
			Username:  claims.Username,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			ImageURL:  claims.ImageURL,
		},
	}, nil
}
