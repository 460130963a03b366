// Package api defines the NotesService wire contract shared by the gRPC
// server and client: message types, the service descriptor and a client
// stub. Messages travel as JSON through a registered gRPC codec.
package api

import "time"

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Icon      *string   `json:"icon,omitempty"`
	Color     *string   `json:"color,omitempty"`
	AuthorID  string    `json:"author_id"`
	IsOwner   bool      `json:"is_owner"`
	SharedBy  string    `json:"shared_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Share struct {
	ID         string     `json:"id"`
	NoteID     string     `json:"note_id"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	Status     string     `json:"status"`
	Permission string     `json:"permission"`
	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

type Notification struct {
	ID          string    `json:"id"`
	ShareID     string    `json:"share_id"`
	Type        string    `json:"type"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	NoteID      string    `json:"note_id"`
	NoteTitle   string    `json:"note_title"`
	ShareStatus string    `json:"share_status"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type WhoAmIRequest struct{}

type WhoAmIResponse struct {
	User User `json:"user"`
}

type ListNotesRequest struct{}

type ListNotesResponse struct {
	Notes []Note `json:"notes"`
}

type GetNoteRequest struct {
	NoteID string `json:"note_id"`
}

type GetNoteResponse struct {
	Note Note `json:"note"`
}

type CreateNoteRequest struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Icon    *string `json:"icon,omitempty"`
	Color   *string `json:"color,omitempty"`
}

type CreateNoteResponse struct {
	Note    Note   `json:"note"`
	Message string `json:"message"`
}

type UpdateNoteRequest struct {
	NoteID  string  `json:"note_id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Icon    *string `json:"icon,omitempty"`
	Color   *string `json:"color,omitempty"`
}

type UpdateNoteResponse struct {
	Changed bool   `json:"changed"`
	Message string `json:"message"`
}

type DeleteNoteRequest struct {
	NoteID string `json:"note_id"`
}

type DeleteNoteResponse struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

type ShareNoteRequest struct {
	NoteID     string `json:"note_id"`
	ReceiverID string `json:"receiver_id"`
}

type ShareNoteResponse struct {
	Share    Share  `json:"share"`
	Reshared bool   `json:"reshared"`
	Message  string `json:"message"`
}

// ResolveShareRequest is the input of both AcceptShare and RejectShare.
type ResolveShareRequest struct {
	ShareID string `json:"share_id"`
}

type ResolveShareResponse struct {
	Share   Share  `json:"share"`
	Message string `json:"message"`
}

type ListNotificationsRequest struct{}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	NotificationID string `json:"notification_id"`
}

type MarkNotificationReadResponse struct {
	Message string `json:"message"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type ExportNoteRequest struct {
	NoteID string `json:"note_id"`
}

type ExportNoteResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
