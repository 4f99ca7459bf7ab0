package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Snapshotter writes a consistent copy of the database to a local file.
type Snapshotter interface {
	Snapshot(ctx context.Context, dest string) error
}

// ObjectPutter is the part of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type BackupOptions struct {
	Key      string
	Secret   string
	Region   string
	Endpoint string
	Bucket   string
	Prefix   string
}

// BackupService uploads database snapshots to S3 compatible storage.
type BackupService struct {
	client ObjectPutter
	db     Snapshotter
	bucket string
	prefix string
	now    func() time.Time
}

// NewS3Client builds a client for AWS or any S3 compatible endpoint such as DigitalOcean Spaces.
func NewS3Client(ctx context.Context, opts BackupOptions) (*s3.Client, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.Key != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.Key, opts.Secret, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load storage config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func NewBackupService(client ObjectPutter, db Snapshotter, bucket, prefix string) *BackupService {
	return &BackupService{
		client: client,
		db:     db,
		bucket: bucket,
		prefix: strings.TrimPrefix(prefix, "/"),
		now:    time.Now,
	}
}

// objectKey names a snapshot by its UTC time so keys sort chronologically.
func (s *BackupService) objectKey(at time.Time) string {
	return path.Join(s.prefix, fmt.Sprintf("quizbot-%s.db", at.UTC().Format("20060102T150405Z")))
}

// Upload takes one snapshot and stores it in the bucket, returning the object key.
func (s *BackupService) Upload(ctx context.Context) (string, error) {
	start := s.now()

	dir, err := os.MkdirTemp("", "quizbot-backup-*")
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "snapshot.db")
	if err := s.db.Snapshot(ctx, file); err != nil {
		return "", fmt.Errorf("failed to snapshot database: %w", err)
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	key := s.objectKey(start)
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/vnd.sqlite3"),
	}); err != nil {
		return "", fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	slog.Info("Database backup uploaded",
		slog.String("type", "sys"),
		slog.String("bucket", s.bucket),
		slog.String("key", key),
		slog.Duration("took", time.Since(start)))
	return key, nil
}

// Run uploads a snapshot every interval until ctx is cancelled. Failures are logged and retried on the next tick.
func (s *BackupService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Upload(ctx); err != nil {
				slog.Error("Database backup failed",
					slog.String("type", "error"),
					slog.Any("error", err))
			}
		}
	}
}
