package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/notekeeper/internal/netx"
	sc "github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

const presignValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	uploadToPresignedURL = netx.UploadToPresignedURL
)

// Snapshot is the JSON document produced by an export: everything the user
// owns at one point in time.
type Snapshot struct {
	ExportedAt time.Time        `json:"exportedAt"`
	Folders    []*models.Folder `json:"folders"`
	Notes      []*models.Note   `json:"notes"`
}

// ExportService dumps a user's folders and notes to S3-compatible storage and
// hands back a time-limited download URL.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

// NewExportService constructs an ExportService.
func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: cfg}
}

func exportStorageKey(userID string) string {
	d := time.Now()
	return fmt.Sprintf("exports/%s/%d/%d/%d/%v", userID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// ExportNotes marshals a Snapshot of the caller's folders and notes, uploads
// it via a presigned PUT, and returns a presigned GET URL for the snapshot.
func (s *ExportService) ExportNotes(ctx context.Context, userID string) (string, error) {
	folders, err := s.repomanager.Folders(s.db).SelectByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	notes, err := s.repomanager.Notes(s.db).SelectByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(Snapshot{
		ExportedAt: time.Now().UTC(),
		Folders:    folders,
		Notes:      notes,
	})
	if err != nil {
		return "", fmt.Errorf("error encoding snapshot: %v", err)
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := exportStorageKey(userID)

	putReq, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	if err := uploadToPresignedURL(putReq.URL, payload); err != nil {
		return "", fmt.Errorf("error uploading snapshot: %v", err)
	}

	getReq, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}

	return getReq.URL, nil
}
