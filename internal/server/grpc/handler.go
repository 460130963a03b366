package grpc

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

const (
	msgNoteCreated      = "Note created successfully"
	msgNoteUpdated      = "Note updated successfully"
	msgNoteUnchanged    = "Nothing was updated"
	msgNoteDeleted      = "Note deleted successfully"
	msgNoteNotDeleted   = "Nothing was deleted"
	msgShareSent        = "Share request sent successfully"
	msgShareResent      = "Share request sent again"
	msgShareAccepted    = "Share request accepted successfully"
	msgShareRejected    = "Share request rejected successfully"
	msgNotificationRead = "Notification marked as read"
)

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *api.WhoAmIRequest) (*api.WhoAmIResponse, error) {
	return &api.WhoAmIResponse{User: userToAPI(currentUser(ctx))}, nil
}

func (s *GRPCServer) ListNotes(ctx context.Context, req *api.ListNotesRequest) (*api.ListNotesResponse, error) {
	views, err := s.notes.ListNotes(ctx, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	notes := make([]api.Note, 0, len(views))
	for i := range views {
		notes = append(notes, noteViewToAPI(&views[i]))
	}
	return &api.ListNotesResponse{Notes: notes}, nil
}

func (s *GRPCServer) GetNote(ctx context.Context, req *api.GetNoteRequest) (*api.GetNoteResponse, error) {
	view, err := s.notes.GetNote(ctx, req.NoteID, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.GetNoteResponse{Note: noteViewToAPI(view)}, nil
}

func (s *GRPCServer) CreateNote(ctx context.Context, req *api.CreateNoteRequest) (*api.CreateNoteResponse, error) {
	userID := currentUserID(ctx)
	note, err := s.notes.CreateNote(ctx, userID, models.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Icon:    req.Icon,
		Color:   req.Color,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Note created", "note_id", note.ID, "user_id", userID)
	return &api.CreateNoteResponse{
		Note:    noteViewToAPI(&models.NoteView{Note: *note, IsOwner: true}),
		Message: msgNoteCreated,
	}, nil
}

func (s *GRPCServer) UpdateNote(ctx context.Context, req *api.UpdateNoteRequest) (*api.UpdateNoteResponse, error) {
	changed, err := s.notes.UpdateNote(ctx, req.NoteID, currentUserID(ctx), models.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Icon:    req.Icon,
		Color:   req.Color,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	msg := msgNoteUpdated
	if !changed {
		msg = msgNoteUnchanged
	}
	return &api.UpdateNoteResponse{Changed: changed, Message: msg}, nil
}

func (s *GRPCServer) DeleteNote(ctx context.Context, req *api.DeleteNoteRequest) (*api.DeleteNoteResponse, error) {
	deleted, err := s.notes.DeleteNote(ctx, req.NoteID, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	msg := msgNoteDeleted
	if !deleted {
		msg = msgNoteNotDeleted
	}
	return &api.DeleteNoteResponse{Deleted: deleted, Message: msg}, nil
}

func (s *GRPCServer) ShareNote(ctx context.Context, req *api.ShareNoteRequest) (*api.ShareNoteResponse, error) {
	userID := currentUserID(ctx)
	outcome, err := s.shares.CreateShareRequest(ctx, req.NoteID, userID, req.ReceiverID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	msg := msgShareSent
	if outcome.Reshared {
		msg = msgShareResent
	}

	s.logger.Info(ctx, "Share request sent", "share_id", outcome.Share.ID, "reshared", outcome.Reshared)
	return &api.ShareNoteResponse{
		Share:    shareToAPI(outcome.Share),
		Reshared: outcome.Reshared,
		Message:  msg,
	}, nil
}

func (s *GRPCServer) AcceptShare(ctx context.Context, req *api.ResolveShareRequest) (*api.ResolveShareResponse, error) {
	share, err := s.shares.AcceptShareRequest(ctx, req.ShareID, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ResolveShareResponse{Share: shareToAPI(share), Message: msgShareAccepted}, nil
}

func (s *GRPCServer) RejectShare(ctx context.Context, req *api.ResolveShareRequest) (*api.ResolveShareResponse, error) {
	share, err := s.shares.RejectShareRequest(ctx, req.ShareID, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ResolveShareResponse{Share: shareToAPI(share), Message: msgShareRejected}, nil
}

func (s *GRPCServer) ListNotifications(ctx context.Context, req *api.ListNotificationsRequest) (*api.ListNotificationsResponse, error) {
	views, err := s.notifications.ListNotifications(ctx, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]api.Notification, 0, len(views))
	for i := range views {
		out = append(out, notificationToAPI(&views[i]))
	}
	return &api.ListNotificationsResponse{Notifications: out}, nil
}

func (s *GRPCServer) MarkNotificationRead(ctx context.Context, req *api.MarkNotificationReadRequest) (*api.MarkNotificationReadResponse, error) {
	if err := s.notifications.MarkNotificationRead(ctx, req.NotificationID, currentUserID(ctx)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.MarkNotificationReadResponse{Message: msgNotificationRead}, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *api.ListUsersRequest) (*api.ListUsersResponse, error) {
	users, err := s.identity.ListShareCandidates(ctx, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]api.User, 0, len(users))
	for i := range users {
		out = append(out, userToAPI(&users[i]))
	}
	return &api.ListUsersResponse{Users: out}, nil
}

func (s *GRPCServer) ExportNote(ctx context.Context, req *api.ExportNoteRequest) (*api.ExportNoteResponse, error) {
	link, err := s.exports.ExportNote(ctx, req.NoteID, currentUserID(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.ExportNoteResponse{URL: link.URL, ExpiresAt: link.ExpiresAt}, nil
}
