package models

import "time"

type ShareStatus string

const (
	SharePending  ShareStatus = "PENDING"
	ShareAccepted ShareStatus = "ACCEPTED"
	ShareRejected ShareStatus = "REJECTED"
)

type Permission string

const PermissionView Permission = "VIEW"

// ShareRequest is one (note, receiver) share. At most one exists per pair.
type ShareRequest struct {
	ID         string
	NoteID     string
	SenderID   string
	ReceiverID string
	Status     ShareStatus
	Permission Permission
	CreatedAt  time.Time
	AcceptedAt *time.Time
}

// ShareOutcome is returned by share creation. Reshared is set when a
// previously rejected request was reopened instead of created.
type ShareOutcome struct {
	Share    *ShareRequest
	Reshared bool
}
