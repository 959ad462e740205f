package core

import "context"

// Completer submits one prompt plus extracted content to the generative
// endpoint and returns the raw response text. One attempt, no retries.
type Completer interface {
	Complete(ctx context.Context, prompt string, content *Content) (string, error)
}

// Extractor turns an uploaded file into completion-ready content based on its
// media type. It must fail before any network call for unsupported types.
type Extractor interface {
	Extract(ctx context.Context, file *UploadedFile) (*Content, error)
}
