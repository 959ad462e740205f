package objectclient

import (
	"context"
	"time"
)

// PresignedUpload is what the client needs to push a file straight to object
// storage: a time-limited write URL and the resulting public object URL.
type PresignedUpload struct {
	UploadURL string `json:"uploadURL"`
	ObjectURL string `json:"objectURL"`
	Key       string `json:"-"`
}

// ObjectClient defines interactions with R2 or any S3-compatible storage.
// It's abstract so handlers can take a mock and the storage flavor can change
// without touching the pipeline.
type ObjectClient interface {
	PresignPut(ctx context.Context, filename string, ttl time.Duration) (*PresignedUpload, error)
	GetFile(ctx context.Context, key string) ([]byte, error)
}
