package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/exports"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notes"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/notifications"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/shares"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/users"
)

// memStore is an in-memory stand-in for the Postgres schema. It honours the
// same visibility rule, uniqueness and conditional updates as the SQL.
type memStore struct {
	mu            sync.Mutex
	clock         time.Time
	users         map[string]*models.User
	notes         map[string]*models.Note
	shares        map[string]*models.ShareRequest
	notifications []*models.Notification
	exports       []*models.NoteExport

	// failNotificationCreate makes notification inserts fail.
	failNotificationCreate error
	// raceOnShareCreate makes share inserts report a concurrent insert.
	raceOnShareCreate bool
}

func newMemStore() *memStore {
	return &memStore{
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:  map[string]*models.User{},
		notes:  map[string]*models.Note{},
		shares: map[string]*models.ShareRequest{},
	}
}

// tick returns a strictly increasing timestamp. Callers hold mu.
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memStore) addUser(username, displayName string) *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &models.User{
		ID: uuid.NewString(), ExternalID: "idp|" + username, Username: username,
		DisplayName: displayName, CreatedAt: m.tick(),
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) notificationsFor(receiverID string) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.ReceiverID == receiverID {
			out = append(out, *n)
		}
	}
	return out
}

func (m *memStore) notificationsForShare(shareID string) []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Notification
	for _, n := range m.notifications {
		if n.ShareID == shareID {
			out = append(out, *n)
		}
	}
	return out
}

func (m *memStore) share(id string) models.ShareRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.shares[id]
}

// --- users ---

type memUsers struct{ *memStore }

func (r memUsers) Upsert(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.ExternalID == u.ExternalID {
			existing.Email = u.Email
			existing.DisplayName = u.DisplayName
			existing.AvatarURL = u.AvatarURL
			cp := *existing
			return &cp, nil
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.tick()
	cp := *u
	r.users[u.ID] = &cp
	return u, nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) ListExcept(_ context.Context, userID string) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.ID != userID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// --- notes ---

type memNotes struct{ *memStore }

func (r memNotes) visible(n *models.Note, userID string) (models.NoteView, bool) {
	if n.AuthorID == userID {
		return models.NoteView{Note: *n, IsOwner: true}, true
	}
	for _, s := range r.shares {
		if s.NoteID == n.ID && s.ReceiverID == userID && s.Status == models.ShareAccepted {
			return models.NoteView{Note: *n, SharedBy: r.users[n.AuthorID].Name()}, true
		}
	}
	return models.NoteView{}, false
}

func (r memNotes) ListVisible(_ context.Context, userID string) ([]models.NoteView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.NoteView
	for _, n := range r.notes {
		if v, ok := r.visible(n, userID); ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotes) GetVisible(_ context.Context, noteID, userID string) (*models.NoteView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	v, ok := r.visible(n, userID)
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &v, nil
}

func (r memNotes) GetOwned(_ context.Context, noteID, authorID string) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok || n.AuthorID != authorID {
		return nil, common.ErrorNotFound
	}
	cp := *n
	return &cp, nil
}

func (r memNotes) Create(_ context.Context, n *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = uuid.NewString()
	n.CreatedAt = r.tick()
	n.UpdatedAt = n.CreatedAt
	cp := *n
	r.notes[n.ID] = &cp
	return n, nil
}

func (r memNotes) Update(_ context.Context, noteID, authorID string, in models.NoteInput) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok || n.AuthorID != authorID {
		return false, nil
	}
	n.Title, n.Content, n.Icon, n.Color = in.Title, in.Content, in.Icon, in.Color
	n.UpdatedAt = r.tick()
	return true, nil
}

func (r memNotes) Delete(_ context.Context, noteID, authorID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.notes[noteID]
	if !ok || n.AuthorID != authorID {
		return false, nil
	}
	delete(r.notes, noteID)
	for id, s := range r.shares {
		if s.NoteID == noteID {
			delete(r.shares, id)
			kept := r.notifications[:0]
			for _, nt := range r.notifications {
				if nt.ShareID != id {
					kept = append(kept, nt)
				}
			}
			r.notifications = kept
		}
	}
	return true, nil
}

// --- shares ---

type memShares struct{ *memStore }

func (r memShares) GetForUpdate(_ context.Context, shareID string) (*models.ShareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[shareID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (r memShares) FindForUpdate(_ context.Context, noteID, receiverID string) (*models.ShareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shares {
		if s.NoteID == noteID && s.ReceiverID == receiverID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memShares) Create(_ context.Context, s *models.ShareRequest) (*models.ShareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.raceOnShareCreate {
		return nil, common.ErrUniqueViolation
	}
	for _, existing := range r.shares {
		if existing.NoteID == s.NoteID && existing.ReceiverID == s.ReceiverID {
			return nil, common.ErrUniqueViolation
		}
	}
	s.ID = uuid.NewString()
	s.CreatedAt = r.tick()
	cp := *s
	r.shares[s.ID] = &cp
	return s, nil
}

func (r memShares) Reopen(_ context.Context, shareID string) (*models.ShareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[shareID]
	if !ok || s.Status != models.ShareRejected {
		return nil, common.ErrorNotFound
	}
	s.Status = models.SharePending
	s.AcceptedAt = nil
	cp := *s
	return &cp, nil
}

func (r memShares) Resolve(_ context.Context, shareID string, status models.ShareStatus) (*models.ShareRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[shareID]
	if !ok || s.Status != models.SharePending {
		return nil, common.ErrorNotFound
	}
	s.Status = status
	if status == models.ShareAccepted {
		now := r.tick()
		s.AcceptedAt = &now
	}
	cp := *s
	return &cp, nil
}

// --- notifications ---

type memNotifications struct{ *memStore }

func (r memNotifications) Create(_ context.Context, n *models.Notification) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNotificationCreate != nil {
		return nil, r.failNotificationCreate
	}
	n.ID = uuid.NewString()
	n.CreatedAt = r.tick()
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return n, nil
}

func (r memNotifications) Retype(_ context.Context, shareID, receiverID string, from, to models.NotificationType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, nt := range r.notifications {
		if nt.ShareID == shareID && nt.ReceiverID == receiverID && nt.Type == from {
			nt.Type = to
			n++
		}
	}
	return n, nil
}

func (r memNotifications) ListForReceiver(_ context.Context, receiverID string) ([]models.NotificationView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.NotificationView
	for _, nt := range r.notifications {
		if nt.ReceiverID != receiverID {
			continue
		}
		s := r.shares[nt.ShareID]
		note := r.notes[s.NoteID]
		out = append(out, models.NotificationView{
			Notification: *nt,
			CreatorName:  r.users[nt.CreatorID].Name(),
			NoteID:       note.ID,
			NoteTitle:    note.Title,
			ShareStatus:  s.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memNotifications) MarkRead(_ context.Context, id, receiverID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, nt := range r.notifications {
		if nt.ID == id && nt.ReceiverID == receiverID {
			nt.Read = true
			return true, nil
		}
	}
	return false, nil
}

// --- exports ---

type memExports struct{ *memStore }

func (r memExports) Create(_ context.Context, e *models.NoteExport) (*models.NoteExport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = uuid.NewString()
	e.CreatedAt = r.tick()
	cp := *e
	r.exports = append(r.exports, &cp)
	return e, nil
}

func (r memExports) Latest(_ context.Context, noteID, userID string) (*models.NoteExport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.exports) - 1; i >= 0; i-- {
		if e := r.exports[i]; e.NoteID == noteID && e.UserID == userID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

// --- manager ---

type fakeRepoManager struct {
	store *memStore
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return memUsers{f.store} }
func (f *fakeRepoManager) Notes(dbx.DBTX) notes.Repository             { return memNotes{f.store} }
func (f *fakeRepoManager) Shares(dbx.DBTX) shares.Repository           { return memShares{f.store} }
func (f *fakeRepoManager) Exports(dbx.DBTX) exports.Repository         { return memExports{f.store} }
func (f *fakeRepoManager) Notifications(dbx.DBTX) notifications.Repository {
	return memNotifications{f.store}
}

// newTxDB returns a real *sql.DB so dbx.WithTx can begin and commit; the
// fakes ignore the handle they are bound to.
func newTxDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fixture wires every service over one memStore.
type fixture struct {
	store         *memStore
	identity      *IdentityService
	notes         *NoteService
	shares        *ShareService
	notifications *NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	db := newTxDB(t)
	rm := &fakeRepoManager{store: store}
	return &fixture{
		store:         store,
		identity:      NewIdentityService(db, rm),
		notes:         NewNoteService(db, rm),
		shares:        NewShareService(db, rm),
		notifications: NewNotificationService(db, rm),
	}
}

func (f *fixture) note(t *testing.T, author *models.User, title string) *models.Note {
	t.Helper()
	n, err := f.notes.CreateNote(context.Background(), author.ID, models.NoteInput{Title: title, Content: title + " body"})
	require.NoError(t, err)
	return n
}

var errBoom = errors.New("boom")
