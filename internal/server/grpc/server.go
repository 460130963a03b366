// Package grpc exposes the gophnotes services over gRPC. Every call except
// Ping and health checks carries a session token which is verified and
// resolved to a local user before the handler runs.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type IdentityResolver interface {
	ResolveCurrentUser(ctx context.Context, session *auth.Session) (*models.User, error)
	ListShareCandidates(ctx context.Context, userID string) ([]models.User, error)
}

type NoteStore interface {
	ListNotes(ctx context.Context, userID string) ([]models.NoteView, error)
	GetNote(ctx context.Context, noteID, requesterID string) (*models.NoteView, error)
	CreateNote(ctx context.Context, authorID string, in models.NoteInput) (*models.Note, error)
	UpdateNote(ctx context.Context, noteID, authorID string, in models.NoteInput) (bool, error)
	DeleteNote(ctx context.Context, noteID, authorID string) (bool, error)
}

type ShareManager interface {
	CreateShareRequest(ctx context.Context, noteID, senderID, receiverID string) (*models.ShareOutcome, error)
	AcceptShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error)
	RejectShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error)
}

type NotificationFeed interface {
	ListNotifications(ctx context.Context, userID string) ([]models.NotificationView, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
}

type NoteExporter interface {
	ExportNote(ctx context.Context, noteID, userID string) (*models.ExportLink, error)
}

// Services groups the backends the gRPC server delegates to.
type Services struct {
	Identity      IdentityResolver
	Notes         NoteStore
	Shares        ShareManager
	Notifications NotificationFeed
	Exports       NoteExporter
}

type GRPCServer struct {
	api.UnimplementedNotesServiceServer
	address        string
	identity       IdentityResolver
	notes          NoteStore
	shares         ShareManager
	notifications  NotificationFeed
	exports        NoteExporter
	logger         logging.Logger
	identitySecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, identitySecret string) (*GRPCServer, error) {
	return &GRPCServer{
		address:        a,
		logger:         l.With("module", "grpc_server"),
		identity:       svc.Identity,
		notes:          svc.Notes,
		shares:         svc.Shares,
		notifications:  svc.Notifications,
		exports:        svc.Exports,
		identitySecret: []byte(identitySecret),
	}, nil
}

// newServer builds a grpc.Server with the interceptor chain, the notes
// service and a health service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.sessionInterceptor))

	api.RegisterNotesServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
