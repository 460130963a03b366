package services

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	sc "github.com/dmitrijs2005/gophnotes/internal/server/config"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	timeNow = time.Now
)

// ExportService renders visible notes to Markdown, stores them in S3 and
// hands out presigned download links.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: config}
}

func exportStorageKey(userID string) string {
	d := timeNow()
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%v.md", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// ExportNote returns a download link for a Markdown rendering of noteID.
// The last export is reused while the note has not changed since.
func (s *ExportService) ExportNote(ctx context.Context, noteID, userID string) (*models.ExportLink, error) {
	if !validID(noteID) {
		return nil, common.ErrorNotFound
	}

	note, err := s.repomanager.Notes(s.db).GetVisible(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	exportRepo := s.repomanager.Exports(s.db)

	var key string
	latest, err := exportRepo.Latest(ctx, noteID, userID)
	switch {
	case err == nil && !latest.CreatedAt.Before(note.UpdatedAt):
		key = latest.StorageKey
	case err == nil || errors.Is(err, common.ErrorNotFound):
		key, err = s.upload(ctx, client, note, userID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(s3.NewPresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.config.ExportURLValidity))
	if err != nil {
		return nil, fmt.Errorf("presign: %w", err)
	}

	return &models.ExportLink{URL: req.URL, ExpiresAt: timeNow().Add(s.config.ExportURLValidity)}, nil
}

func (s *ExportService) upload(ctx context.Context, client *s3.Client, note *models.NoteView, userID string) (string, error) {
	bucket := s.config.S3Bucket
	key := exportStorageKey(userID)

	_, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader([]byte(RenderMarkdown(note))),
		ContentType: aws.String("text/markdown; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}

	if _, err := s.repomanager.Exports(s.db).Create(ctx, &models.NoteExport{
		NoteID:     note.ID,
		UserID:     userID,
		StorageKey: key,
	}); err != nil {
		return "", err
	}
	return key, nil
}

// RenderMarkdown renders a note as a standalone Markdown document.
func RenderMarkdown(note *models.NoteView) string {
	var b strings.Builder

	b.WriteString("# ")
	if note.Icon != nil && *note.Icon != "" {
		b.WriteString(*note.Icon)
		b.WriteString(" ")
	}
	b.WriteString(note.Title)
	b.WriteString("\n\n")

	if !note.IsOwner && note.SharedBy != "" {
		fmt.Fprintf(&b, "> Shared by %s\n\n", note.SharedBy)
	}

	b.WriteString(note.Content)
	if !strings.HasSuffix(note.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}
