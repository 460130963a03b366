package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/logging"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// recordingLogger keeps the messages passed to Warn and Error.
type recordingLogger struct {
	nopLogger
	mu     sync.Mutex
	warns  []string
	errors []string
}

func (r *recordingLogger) Warn(_ context.Context, msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, msg)
}

func (r *recordingLogger) Error(_ context.Context, msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recordingLogger) With(...any) logging.Logger { return r }

func (r *recordingLogger) errorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errors)
}

func (r *recordingLogger) warnCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.warns)
}

// fakeBackend implements every service interface. Each call records the
// user id it was made for; results come from the fields.
type fakeBackend struct {
	mu sync.Mutex

	user       *models.User
	resolveErr error
	sessions   []*auth.Session
	candidates []models.User

	notes     []models.NoteView
	note      *models.NoteView
	created   *models.Note
	changed   bool
	noteInput models.NoteInput

	outcome  *models.ShareOutcome
	resolved *models.ShareRequest

	notifications []models.NotificationView
	link          *models.ExportLink

	err     error
	callers []string
}

func (f *fakeBackend) record(userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callers = append(f.callers, userID)
	return f.err
}

func (f *fakeBackend) lastCaller() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.callers) == 0 {
		return ""
	}
	return f.callers[len(f.callers)-1]
}

func (f *fakeBackend) ResolveCurrentUser(ctx context.Context, session *auth.Session) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions = append(f.sessions, session)
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.user, nil
}

func (f *fakeBackend) ListShareCandidates(ctx context.Context, userID string) ([]models.User, error) {
	if err := f.record(userID); err != nil {
		return nil, err
	}
	return f.candidates, nil
}

func (f *fakeBackend) ListNotes(ctx context.Context, userID string) ([]models.NoteView, error) {
	if err := f.record(userID); err != nil {
		return nil, err
	}
	return f.notes, nil
}

func (f *fakeBackend) GetNote(ctx context.Context, noteID, requesterID string) (*models.NoteView, error) {
	if err := f.record(requesterID); err != nil {
		return nil, err
	}
	return f.note, nil
}

func (f *fakeBackend) CreateNote(ctx context.Context, authorID string, in models.NoteInput) (*models.Note, error) {
	f.noteInput = in
	if err := f.record(authorID); err != nil {
		return nil, err
	}
	return f.created, nil
}

func (f *fakeBackend) UpdateNote(ctx context.Context, noteID, authorID string, in models.NoteInput) (bool, error) {
	f.noteInput = in
	if err := f.record(authorID); err != nil {
		return false, err
	}
	return f.changed, nil
}

func (f *fakeBackend) DeleteNote(ctx context.Context, noteID, authorID string) (bool, error) {
	if err := f.record(authorID); err != nil {
		return false, err
	}
	return f.changed, nil
}

func (f *fakeBackend) CreateShareRequest(ctx context.Context, noteID, senderID, receiverID string) (*models.ShareOutcome, error) {
	if err := f.record(senderID); err != nil {
		return nil, err
	}
	return f.outcome, nil
}

func (f *fakeBackend) AcceptShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error) {
	if err := f.record(actingUserID); err != nil {
		return nil, err
	}
	return f.resolved, nil
}

func (f *fakeBackend) RejectShareRequest(ctx context.Context, shareID, actingUserID string) (*models.ShareRequest, error) {
	if err := f.record(actingUserID); err != nil {
		return nil, err
	}
	return f.resolved, nil
}

func (f *fakeBackend) ListNotifications(ctx context.Context, userID string) ([]models.NotificationView, error) {
	if err := f.record(userID); err != nil {
		return nil, err
	}
	return f.notifications, nil
}

func (f *fakeBackend) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	return f.record(userID)
}

func (f *fakeBackend) ExportNote(ctx context.Context, noteID, userID string) (*models.ExportLink, error) {
	if err := f.record(userID); err != nil {
		return nil, err
	}
	return f.link, nil
}
