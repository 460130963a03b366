package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "gophnotes.NotesService"

const (
	PingMethod                 = "/" + ServiceName + "/Ping"
	WhoAmIMethod               = "/" + ServiceName + "/WhoAmI"
	ListNotesMethod            = "/" + ServiceName + "/ListNotes"
	GetNoteMethod              = "/" + ServiceName + "/GetNote"
	CreateNoteMethod           = "/" + ServiceName + "/CreateNote"
	UpdateNoteMethod           = "/" + ServiceName + "/UpdateNote"
	DeleteNoteMethod           = "/" + ServiceName + "/DeleteNote"
	ShareNoteMethod            = "/" + ServiceName + "/ShareNote"
	AcceptShareMethod          = "/" + ServiceName + "/AcceptShare"
	RejectShareMethod          = "/" + ServiceName + "/RejectShare"
	ListNotificationsMethod    = "/" + ServiceName + "/ListNotifications"
	MarkNotificationReadMethod = "/" + ServiceName + "/MarkNotificationRead"
	ListUsersMethod            = "/" + ServiceName + "/ListUsers"
	ExportNoteMethod           = "/" + ServiceName + "/ExportNote"
)

// NotesServiceServer is implemented by the gRPC server.
type NotesServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	WhoAmI(context.Context, *WhoAmIRequest) (*WhoAmIResponse, error)
	ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error)
	GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error)
	CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error)
	UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error)
	DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error)
	ShareNote(context.Context, *ShareNoteRequest) (*ShareNoteResponse, error)
	AcceptShare(context.Context, *ResolveShareRequest) (*ResolveShareResponse, error)
	RejectShare(context.Context, *ResolveShareRequest) (*ResolveShareResponse, error)
	ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error)
	MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error)
	ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error)
	ExportNote(context.Context, *ExportNoteRequest) (*ExportNoteResponse, error)
}

// UnimplementedNotesServiceServer answers every method with Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedNotesServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedNotesServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedNotesServiceServer) WhoAmI(context.Context, *WhoAmIRequest) (*WhoAmIResponse, error) {
	return nil, unimplemented("WhoAmI")
}
func (UnimplementedNotesServiceServer) ListNotes(context.Context, *ListNotesRequest) (*ListNotesResponse, error) {
	return nil, unimplemented("ListNotes")
}
func (UnimplementedNotesServiceServer) GetNote(context.Context, *GetNoteRequest) (*GetNoteResponse, error) {
	return nil, unimplemented("GetNote")
}
func (UnimplementedNotesServiceServer) CreateNote(context.Context, *CreateNoteRequest) (*CreateNoteResponse, error) {
	return nil, unimplemented("CreateNote")
}
func (UnimplementedNotesServiceServer) UpdateNote(context.Context, *UpdateNoteRequest) (*UpdateNoteResponse, error) {
	return nil, unimplemented("UpdateNote")
}
func (UnimplementedNotesServiceServer) DeleteNote(context.Context, *DeleteNoteRequest) (*DeleteNoteResponse, error) {
	return nil, unimplemented("DeleteNote")
}
func (UnimplementedNotesServiceServer) ShareNote(context.Context, *ShareNoteRequest) (*ShareNoteResponse, error) {
	return nil, unimplemented("ShareNote")
}
func (UnimplementedNotesServiceServer) AcceptShare(context.Context, *ResolveShareRequest) (*ResolveShareResponse, error) {
	return nil, unimplemented("AcceptShare")
}
func (UnimplementedNotesServiceServer) RejectShare(context.Context, *ResolveShareRequest) (*ResolveShareResponse, error) {
	return nil, unimplemented("RejectShare")
}
func (UnimplementedNotesServiceServer) ListNotifications(context.Context, *ListNotificationsRequest) (*ListNotificationsResponse, error) {
	return nil, unimplemented("ListNotifications")
}
func (UnimplementedNotesServiceServer) MarkNotificationRead(context.Context, *MarkNotificationReadRequest) (*MarkNotificationReadResponse, error) {
	return nil, unimplemented("MarkNotificationRead")
}
func (UnimplementedNotesServiceServer) ListUsers(context.Context, *ListUsersRequest) (*ListUsersResponse, error) {
	return nil, unimplemented("ListUsers")
}
func (UnimplementedNotesServiceServer) ExportNote(context.Context, *ExportNoteRequest) (*ExportNoteResponse, error) {
	return nil, unimplemented("ExportNote")
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](method string, call func(NotesServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(NotesServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(NotesServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// NotesServiceDesc describes NotesService for grpc.ServiceRegistrar.
var NotesServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*NotesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(PingMethod, NotesServiceServer.Ping)},
		{MethodName: "WhoAmI", Handler: unaryHandler(WhoAmIMethod, NotesServiceServer.WhoAmI)},
		{MethodName: "ListNotes", Handler: unaryHandler(ListNotesMethod, NotesServiceServer.ListNotes)},
		{MethodName: "GetNote", Handler: unaryHandler(GetNoteMethod, NotesServiceServer.GetNote)},
		{MethodName: "CreateNote", Handler: unaryHandler(CreateNoteMethod, NotesServiceServer.CreateNote)},
		{MethodName: "UpdateNote", Handler: unaryHandler(UpdateNoteMethod, NotesServiceServer.UpdateNote)},
		{MethodName: "DeleteNote", Handler: unaryHandler(DeleteNoteMethod, NotesServiceServer.DeleteNote)},
		{MethodName: "ShareNote", Handler: unaryHandler(ShareNoteMethod, NotesServiceServer.ShareNote)},
		{MethodName: "AcceptShare", Handler: unaryHandler(AcceptShareMethod, NotesServiceServer.AcceptShare)},
		{MethodName: "RejectShare", Handler: unaryHandler(RejectShareMethod, NotesServiceServer.RejectShare)},
		{MethodName: "ListNotifications", Handler: unaryHandler(ListNotificationsMethod, NotesServiceServer.ListNotifications)},
		{MethodName: "MarkNotificationRead", Handler: unaryHandler(MarkNotificationReadMethod, NotesServiceServer.MarkNotificationRead)},
		{MethodName: "ListUsers", Handler: unaryHandler(ListUsersMethod, NotesServiceServer.ListUsers)},
		{MethodName: "ExportNote", Handler: unaryHandler(ExportNoteMethod, NotesServiceServer.ExportNote)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gophnotes/notes",
}

func RegisterNotesServiceServer(s grpc.ServiceRegistrar, srv NotesServiceServer) {
	s.RegisterService(&NotesServiceDesc, srv)
}
