package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	sc "github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
)

type s3Calls struct {
	puts     []string
	bodies   []string
	presigns []string
	expires  time.Duration
}

// stubS3 replaces the network-facing S3 seams for the duration of a test.
func stubS3(t *testing.T, putErr error) *s3Calls {
	t.Helper()
	calls := &s3Calls{}

	origPut, origPresign, origNow := putObject, presignGetObject, timeNow
	t.Cleanup(func() { putObject, presignGetObject, timeNow = origPut, origPresign, origNow })

	fixed := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		if putErr != nil {
			return nil, putErr
		}
		b, _ := io.ReadAll(in.Body)
		calls.puts = append(calls.puts, *in.Key)
		calls.bodies = append(calls.bodies, string(b))
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		opts := &s3.PresignOptions{}
		for _, fn := range optFns {
			fn(opts)
		}
		calls.expires = opts.Expires
		calls.presigns = append(calls.presigns, *in.Key)
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/" + *in.Bucket + "/" + *in.Key}, nil
	}
	return calls
}

func newExportFixture(t *testing.T) (*fixture, *ExportService) {
	t.Helper()
	f := newFixture(t)
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return f, NewExportService(newTxDB(t), &fakeRepoManager{store: f.store}, cfg)
}

func TestExportNote_UploadsThenReuses(t *testing.T) {
	calls := stubS3(t, nil)
	f, svc := newExportFixture(t)
	ctx := context.Background()
	alice := f.store.addUser("alice", "")
	note := f.note(t, alice, "Groceries")

	link, err := svc.ExportNote(ctx, note.ID, alice.ID)
	require.NoError(t, err)

	require.Len(t, calls.puts, 1)
	assert.True(t, strings.HasPrefix(calls.puts[0], "exports/"+alice.ID+"/2025/03/04/"))
	assert.True(t, strings.HasSuffix(calls.puts[0], ".md"))
	assert.Contains(t, calls.bodies[0], "# Groceries")
	assert.Equal(t, "https://s3.test/notes/"+calls.puts[0], link.URL)
	assert.Equal(t, 15*time.Minute, calls.expires)
	assert.Equal(t, time.Date(2025, 3, 4, 10, 15, 0, 0, time.UTC), link.ExpiresAt)

	_, err = svc.ExportNote(ctx, note.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, calls.puts, 1, "unchanged note is not uploaded again")
	assert.Equal(t, []string{calls.puts[0], calls.puts[0]}, calls.presigns)

	changed, err := f.notes.UpdateNote(ctx, note.ID, alice.ID, models.NoteInput{Title: "Groceries", Content: "bread"})
	require.NoError(t, err)
	require.True(t, changed)

	_, err = svc.ExportNote(ctx, note.ID, alice.ID)
	require.NoError(t, err)
	assert.Len(t, calls.puts, 2, "edited note is uploaded again")
	assert.Contains(t, calls.bodies[1], "bread")
}

func TestExportNote_NotVisible(t *testing.T) {
	calls := stubS3(t, nil)
	f, svc := newExportFixture(t)
	alice := f.store.addUser("alice", "")
	bob := f.store.addUser("bob", "")
	note := f.note(t, alice, "private")

	_, err := svc.ExportNote(context.Background(), note.ID, bob.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.ExportNote(context.Background(), "zzz", alice.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, calls.puts)
}

func TestExportNote_UploadError(t *testing.T) {
	stubS3(t, errors.New("bucket gone"))
	f, svc := newExportFixture(t)
	alice := f.store.addUser("alice", "")
	note := f.note(t, alice, "n")

	_, err := svc.ExportNote(context.Background(), note.ID, alice.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket gone")
	assert.Equal(t, common.KindStoreFailure, common.KindOf(err))
	assert.Empty(t, f.store.exports)
}

func TestRenderMarkdown(t *testing.T) {
	icon := "🛒"
	tests := []struct {
		name string
		note *models.NoteView
		want string
	}{
		{
			name: "own note",
			note: &models.NoteView{Note: models.Note{Title: "Groceries", Content: "milk, eggs"}, IsOwner: true},
			want: "# Groceries\n\nmilk, eggs\n",
		},
		{
			name: "shared note with icon",
			note: &models.NoteView{Note: models.Note{Title: "Groceries", Content: "milk\n", Icon: &icon}, SharedBy: "Alice"},
			want: "# 🛒 Groceries\n\n> Shared by Alice\n\nmilk\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMarkdown(tt.note))
		})
	}
}
