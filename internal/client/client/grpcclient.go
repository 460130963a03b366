package client

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.NotesServiceClient

	mu           sync.RWMutex
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	md, _ := metadata.FromOutgoingContext(ctx)
	if token := c.SessionToken(); token != "" && len(md.Get(common.SessionTokenHeaderName)) == 0 {
		ctx = withSessionToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewNotesClient creates a client for endpointURL. Extra dial options are
// appended after the defaults (insecure transport, token interceptor).
func NewNotesClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewNotesServiceClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) SetSessionToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionToken = token
}

func (c *GRPCClient) SessionToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionToken
}

func (c *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// Ping checks reachability; it needs no session.
func (c *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if _, err := c.client.Ping(ctx, &api.PingRequest{}); err != nil {
		return mapError(err)
	}
	return nil
}

// Login verifies token by resolving it to a user. The token is kept only
// when the server accepts it.
func (c *GRPCClient) Login(ctx context.Context, token string) common.Result[api.User] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.WhoAmI(withSessionToken(ctx, token), &api.WhoAmIRequest{})
	if err != nil {
		return failed[api.User](err)
	}

	c.SetSessionToken(token)
	return common.Ok(resp.User, "Logged in as "+displayName(resp.User))
}

func (c *GRPCClient) Logout() {
	c.SetSessionToken("")
}

func (c *GRPCClient) WhoAmI(ctx context.Context) common.Result[api.User] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.WhoAmI(ctx, &api.WhoAmIRequest{})
	if err != nil {
		return failed[api.User](err)
	}
	return common.Ok(resp.User, "")
}

func (c *GRPCClient) ListNotes(ctx context.Context) common.Result[[]api.Note] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListNotes(ctx, &api.ListNotesRequest{})
	if err != nil {
		return failed[[]api.Note](err)
	}
	return common.Ok(resp.Notes, "")
}

func (c *GRPCClient) GetNote(ctx context.Context, noteID string) common.Result[api.Note] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.GetNote(ctx, &api.GetNoteRequest{NoteID: noteID})
	if err != nil {
		return failed[api.Note](err)
	}
	return common.Ok(resp.Note, "")
}

func (c *GRPCClient) CreateNote(ctx context.Context, req *api.CreateNoteRequest) common.Result[api.Note] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.CreateNote(ctx, req)
	if err != nil {
		return failed[api.Note](err)
	}
	return common.Ok(resp.Note, resp.Message)
}

func (c *GRPCClient) UpdateNote(ctx context.Context, req *api.UpdateNoteRequest) common.Result[bool] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.UpdateNote(ctx, req)
	if err != nil {
		return failed[bool](err)
	}
	return common.Ok(resp.Changed, resp.Message)
}

func (c *GRPCClient) DeleteNote(ctx context.Context, noteID string) common.Result[bool] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.DeleteNote(ctx, &api.DeleteNoteRequest{NoteID: noteID})
	if err != nil {
		return failed[bool](err)
	}
	return common.Ok(resp.Deleted, resp.Message)
}

func (c *GRPCClient) ShareNote(ctx context.Context, noteID, receiverID string) common.Result[api.Share] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ShareNote(ctx, &api.ShareNoteRequest{NoteID: noteID, ReceiverID: receiverID})
	if err != nil {
		return failed[api.Share](err)
	}
	return common.Ok(resp.Share, resp.Message)
}

func (c *GRPCClient) AcceptShare(ctx context.Context, shareID string) common.Result[api.Share] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.AcceptShare(ctx, &api.ResolveShareRequest{ShareID: shareID})
	if err != nil {
		return failed[api.Share](err)
	}
	return common.Ok(resp.Share, resp.Message)
}

func (c *GRPCClient) RejectShare(ctx context.Context, shareID string) common.Result[api.Share] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.RejectShare(ctx, &api.ResolveShareRequest{ShareID: shareID})
	if err != nil {
		return failed[api.Share](err)
	}
	return common.Ok(resp.Share, resp.Message)
}

func (c *GRPCClient) ListNotifications(ctx context.Context) common.Result[[]api.Notification] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListNotifications(ctx, &api.ListNotificationsRequest{})
	if err != nil {
		return failed[[]api.Notification](err)
	}
	return common.Ok(resp.Notifications, "")
}

func (c *GRPCClient) MarkNotificationRead(ctx context.Context, notificationID string) common.Result[struct{}] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.MarkNotificationRead(ctx, &api.MarkNotificationReadRequest{NotificationID: notificationID})
	if err != nil {
		return failed[struct{}](err)
	}
	return common.Ok(struct{}{}, resp.Message)
}

func (c *GRPCClient) ListUsers(ctx context.Context) common.Result[[]api.User] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ListUsers(ctx, &api.ListUsersRequest{})
	if err != nil {
		return failed[[]api.User](err)
	}
	return common.Ok(resp.Users, "")
}

func (c *GRPCClient) ExportNote(ctx context.Context, noteID string) common.Result[api.ExportNoteResponse] {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.client.ExportNote(ctx, &api.ExportNoteRequest{NoteID: noteID})
	if err != nil {
		return failed[api.ExportNoteResponse](err)
	}
	return common.Ok(*resp, "Export ready")
}

func displayName(u api.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
