package models

import "time"

type NotificationType string

const (
	NotificationShareRequest  NotificationType = "SHARE_REQUEST"
	NotificationShareAccepted NotificationType = "SHARE_ACCEPTED"
	NotificationShareDeclined NotificationType = "SHARE_DECLINED"
)

type Notification struct {
	ID         string
	ShareID    string
	CreatorID  string
	ReceiverID string
	Type       NotificationType
	Read       bool
	CreatedAt  time.Time
}

// NotificationView is a notification enriched for display.
type NotificationView struct {
	Notification
	CreatorName string
	NoteID      string
	NoteTitle   string
	ShareStatus ShareStatus
}
