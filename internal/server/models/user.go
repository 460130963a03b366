// Package models holds the persisted entities of gophnotes and the enriched
// read-model views built on top of them.
package models

import "time"

// User is a local mirror of an identity-provider account.
type User struct {
	ID          string
	ExternalID  string
	Username    string
	Email       string
	DisplayName string
	AvatarURL   string
	CreatedAt   time.Time
}

// Name is what other users see: the display name, or the username when the
// provider gave no name.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
