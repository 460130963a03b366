package cli

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/dmitrijs2005/gophnotes/internal/api"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// fakeClient records calls and answers from its fields.
type fakeClient struct {
	calls []string

	token     string
	loginRes  common.Result[api.User]
	notes     []api.Note
	note      common.Result[api.Note]
	created   *api.CreateNoteRequest
	updated   *api.UpdateNoteRequest
	users     []api.User
	shareRes  common.Result[api.Share]
	sharedTo  string
	resolve   common.Result[api.Share]
	notifs    []api.Notification
	exportRes common.Result[api.ExportNoteResponse]

	online atomic.Bool
	closed bool
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Ping(ctx context.Context) error {
	if f.online.Load() {
		return nil
	}
	return errors.New("server unavailable")
}

func (f *fakeClient) Login(ctx context.Context, token string) common.Result[api.User] {
	f.record("login")
	f.token = token
	return f.loginRes
}

func (f *fakeClient) Logout() { f.record("logout"); f.token = "" }

func (f *fakeClient) WhoAmI(ctx context.Context) common.Result[api.User] {
	f.record("whoami")
	return f.loginRes
}

func (f *fakeClient) ListNotes(ctx context.Context) common.Result[[]api.Note] {
	f.record("list")
	return common.Ok(f.notes, "")
}

func (f *fakeClient) GetNote(ctx context.Context, noteID string) common.Result[api.Note] {
	f.record("get " + noteID)
	return f.note
}

func (f *fakeClient) CreateNote(ctx context.Context, req *api.CreateNoteRequest) common.Result[api.Note] {
	f.record("create")
	f.created = req
	return common.Ok(api.Note{ID: "n-new", Title: req.Title, Icon: req.Icon, IsOwner: true}, "Note created successfully")
}

func (f *fakeClient) UpdateNote(ctx context.Context, req *api.UpdateNoteRequest) common.Result[bool] {
	f.record("update " + req.NoteID)
	f.updated = req
	return common.Ok(true, "Note updated successfully")
}

func (f *fakeClient) DeleteNote(ctx context.Context, noteID string) common.Result[bool] {
	f.record("delete " + noteID)
	return common.Ok(false, "Nothing was deleted")
}

func (f *fakeClient) ShareNote(ctx context.Context, noteID, receiverID string) common.Result[api.Share] {
	f.record("share " + noteID)
	f.sharedTo = receiverID
	return f.shareRes
}

func (f *fakeClient) AcceptShare(ctx context.Context, shareID string) common.Result[api.Share] {
	f.record("accept " + shareID)
	return f.resolve
}

func (f *fakeClient) RejectShare(ctx context.Context, shareID string) common.Result[api.Share] {
	f.record("reject " + shareID)
	return f.resolve
}

func (f *fakeClient) ListNotifications(ctx context.Context) common.Result[[]api.Notification] {
	f.record("notifications")
	return common.Ok(f.notifs, "")
}

func (f *fakeClient) MarkNotificationRead(ctx context.Context, notificationID string) common.Result[struct{}] {
	f.record("read " + notificationID)
	return common.Ok(struct{}{}, "Notification marked as read")
}

func (f *fakeClient) ListUsers(ctx context.Context) common.Result[[]api.User] {
	f.record("users")
	return common.Ok(f.users, "")
}

func (f *fakeClient) ExportNote(ctx context.Context, noteID string) common.Result[api.ExportNoteResponse] {
	f.record("export " + noteID)
	return f.exportRes
}
