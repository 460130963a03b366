package grpc

import (
	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

func userToAPI(u *models.User) api.User {
	if u == nil {
		return api.User{}
	}
	return api.User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
}

func noteViewToAPI(v *models.NoteView) api.Note {
	return api.Note{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		Icon:      v.Icon,
		Color:     v.Color,
		AuthorID:  v.AuthorID,
		IsOwner:   v.IsOwner,
		SharedBy:  v.SharedBy,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func shareToAPI(s *models.ShareRequest) api.Share {
	return api.Share{
		ID:         s.ID,
		NoteID:     s.NoteID,
		SenderID:   s.SenderID,
		ReceiverID: s.ReceiverID,
		Status:     string(s.Status),
		Permission: string(s.Permission),
		CreatedAt:  s.CreatedAt,
		AcceptedAt: s.AcceptedAt,
	}
}

func notificationToAPI(n *models.NotificationView) api.Notification {
	return api.Notification{
		ID:          n.ID,
		ShareID:     n.ShareID,
		Type:        string(n.Type),
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
		CreatorID:   n.CreatorID,
		CreatorName: n.CreatorName,
		NoteID:      n.NoteID,
		NoteTitle:   n.NoteTitle,
		ShareStatus: string(n.ShareStatus),
	}
}
