package objectclient

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	cfg "github.com/anny12sstr/converter-analyses/internal/config"
)

type R2Client struct {
	client    *s3.Client
	presigner *s3.PresignClient
	accountID string
	bucket    string
}

// NewR2Client connects to Cloudflare R2 through its S3-compatible endpoint.
// Region must be "auto" for R2.
func NewR2Client(ctx context.Context, cfg *cfg.Config) (ObjectClient, error) {
	if !cfg.HasStorage() {
		return nil, fmt.Errorf("R2 credentials not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.CFAccessKeyID, cfg.CFSecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.CFAccountID)
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
	log.Println("Connected to R2 successfully")

	return &R2Client{
		client:    client,
		presigner: s3.NewPresignClient(client),
		accountID: cfg.CFAccountID,
		bucket:    cfg.CFBucketName,
	}, nil
}

// PresignPut issues a time-limited PUT URL under a unique key, so two uploads
// of the same filename never collide.
func (c *R2Client) PresignPut(ctx context.Context, filename string, ttl time.Duration) (*PresignedUpload, error) {
	key := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Base(filename))

	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = ttl
	})
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		ObjectURL: fmt.Sprintf("https://%s.%s.r2.cloudflarestorage.com/%s", c.bucket, c.accountID, key),
		Key:       key,
	}, nil
}

// GetFile downloads the object the client uploaded through a pre-signed URL.
func (c *R2Client) GetFile(ctx context.Context, key string) ([]byte, error) {
	ctxGet, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	downloader := manager.NewDownloader(c.client)
	buf := manager.NewWriteAtBuffer(nil)

	_, err := downloader.Download(ctxGet, buf, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("storage get failed: %w", err)
	}

	return buf.Bytes(), nil
}

var _ ObjectClient = (*R2Client)(nil)
