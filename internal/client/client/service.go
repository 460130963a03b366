package client

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// Client is the surface the CLI depends on. *GRPCClient implements it.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, token string) common.Result[api.User]
	Logout()
	WhoAmI(ctx context.Context) common.Result[api.User]
	ListNotes(ctx context.Context) common.Result[[]api.Note]
	GetNote(ctx context.Context, noteID string) common.Result[api.Note]
	CreateNote(ctx context.Context, req *api.CreateNoteRequest) common.Result[api.Note]
	UpdateNote(ctx context.Context, req *api.UpdateNoteRequest) common.Result[bool]
	DeleteNote(ctx context.Context, noteID string) common.Result[bool]
	ShareNote(ctx context.Context, noteID, receiverID string) common.Result[api.Share]
	AcceptShare(ctx context.Context, shareID string) common.Result[api.Share]
	RejectShare(ctx context.Context, shareID string) common.Result[api.Share]
	ListNotifications(ctx context.Context) common.Result[[]api.Notification]
	MarkNotificationRead(ctx context.Context, notificationID string) common.Result[struct{}]
	ListUsers(ctx context.Context) common.Result[[]api.User]
	ExportNote(ctx context.Context, noteID string) common.Result[api.ExportNoteResponse]
}

var _ Client = (*GRPCClient)(nil)
