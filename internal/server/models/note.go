package models

import "time"

type Note struct {
	ID        string
	Title     string
	Content   string
	Icon      *string
	Color     *string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteInput carries the user-editable fields of a note.
type NoteInput struct {
	Title   string
	Content string
	Icon    *string
	Color   *string
}

// NoteView is a note as seen by a particular requester. SharedBy is the
// owner's name and is empty for the requester's own notes.
type NoteView struct {
	Note
	IsOwner  bool
	SharedBy string
}
