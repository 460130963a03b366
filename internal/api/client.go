package api

import (
	"context"

	"google.golang.org/grpc"
)

// NotesServiceClient is the client API of NotesService.
type NotesServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	WhoAmI(ctx context.Context, in *WhoAmIRequest, opts ...grpc.CallOption) (*WhoAmIResponse, error)
	ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error)
	GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error)
	CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error)
	UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error)
	DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error)
	ShareNote(ctx context.Context, in *ShareNoteRequest, opts ...grpc.CallOption) (*ShareNoteResponse, error)
	AcceptShare(ctx context.Context, in *ResolveShareRequest, opts ...grpc.CallOption) (*ResolveShareResponse, error)
	RejectShare(ctx context.Context, in *ResolveShareRequest, opts ...grpc.CallOption) (*ResolveShareResponse, error)
	ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error)
	MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error)
	ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error)
	ExportNote(ctx context.Context, in *ExportNoteRequest, opts ...grpc.CallOption) (*ExportNoteResponse, error)
}

type notesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNotesServiceClient(cc grpc.ClientConnInterface) NotesServiceClient {
	return &notesServiceClient{cc: cc}
}

// invoke performs a unary call with the JSON codec selected.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *notesServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, PingMethod, in, opts...)
}

func (c *notesServiceClient) WhoAmI(ctx context.Context, in *WhoAmIRequest, opts ...grpc.CallOption) (*WhoAmIResponse, error) {
	return invoke[WhoAmIResponse](ctx, c.cc, WhoAmIMethod, in, opts...)
}

func (c *notesServiceClient) ListNotes(ctx context.Context, in *ListNotesRequest, opts ...grpc.CallOption) (*ListNotesResponse, error) {
	return invoke[ListNotesResponse](ctx, c.cc, ListNotesMethod, in, opts...)
}

func (c *notesServiceClient) GetNote(ctx context.Context, in *GetNoteRequest, opts ...grpc.CallOption) (*GetNoteResponse, error) {
	return invoke[GetNoteResponse](ctx, c.cc, GetNoteMethod, in, opts...)
}

func (c *notesServiceClient) CreateNote(ctx context.Context, in *CreateNoteRequest, opts ...grpc.CallOption) (*CreateNoteResponse, error) {
	return invoke[CreateNoteResponse](ctx, c.cc, CreateNoteMethod, in, opts...)
}

func (c *notesServiceClient) UpdateNote(ctx context.Context, in *UpdateNoteRequest, opts ...grpc.CallOption) (*UpdateNoteResponse, error) {
	return invoke[UpdateNoteResponse](ctx, c.cc, UpdateNoteMethod, in, opts...)
}

func (c *notesServiceClient) DeleteNote(ctx context.Context, in *DeleteNoteRequest, opts ...grpc.CallOption) (*DeleteNoteResponse, error) {
	return invoke[DeleteNoteResponse](ctx, c.cc, DeleteNoteMethod, in, opts...)
}

func (c *notesServiceClient) ShareNote(ctx context.Context, in *ShareNoteRequest, opts ...grpc.CallOption) (*ShareNoteResponse, error) {
	return invoke[ShareNoteResponse](ctx, c.cc, ShareNoteMethod, in, opts...)
}

func (c *notesServiceClient) AcceptShare(ctx context.Context, in *ResolveShareRequest, opts ...grpc.CallOption) (*ResolveShareResponse, error) {
	return invoke[ResolveShareResponse](ctx, c.cc, AcceptShareMethod, in, opts...)
}

func (c *notesServiceClient) RejectShare(ctx context.Context, in *ResolveShareRequest, opts ...grpc.CallOption) (*ResolveShareResponse, error) {
	return invoke[ResolveShareResponse](ctx, c.cc, RejectShareMethod, in, opts...)
}

func (c *notesServiceClient) ListNotifications(ctx context.Context, in *ListNotificationsRequest, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[ListNotificationsResponse](ctx, c.cc, ListNotificationsMethod, in, opts...)
}

func (c *notesServiceClient) MarkNotificationRead(ctx context.Context, in *MarkNotificationReadRequest, opts ...grpc.CallOption) (*MarkNotificationReadResponse, error) {
	return invoke[MarkNotificationReadResponse](ctx, c.cc, MarkNotificationReadMethod, in, opts...)
}

func (c *notesServiceClient) ListUsers(ctx context.Context, in *ListUsersRequest, opts ...grpc.CallOption) (*ListUsersResponse, error) {
	return invoke[ListUsersResponse](ctx, c.cc, ListUsersMethod, in, opts...)
}

func (c *notesServiceClient) ExportNote(ctx context.Context, in *ExportNoteRequest, opts ...grpc.CallOption) (*ExportNoteResponse, error) {
	return invoke[ExportNoteResponse](ctx, c.cc, ExportNoteMethod, in, opts...)
}
