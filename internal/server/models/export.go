package models

import "time"

// NoteExport records a Markdown rendering of a note uploaded to object
// storage on behalf of a user.
type NoteExport struct {
	ID         string
	NoteID     string
	UserID     string
	StorageKey string
	CreatedAt  time.Time
}

// ExportLink is a time-limited download link for an export.
type ExportLink struct {
	URL       string
	ExpiresAt time.Time
}
