package core

import "strings"

// MediaCategory groups the accepted media types by how their content reaches
// the completion endpoint: extracted text for documents, inline bytes for images.
type MediaCategory string

const (
	CategoryWord  MediaCategory = "word"
	CategoryPDF   MediaCategory = "pdf"
	CategoryImage MediaCategory = "image"
)

// UploadedFile is a single buffered upload. It lives only for the duration of
// the request that produced it.
type UploadedFile struct {
	Data      []byte
	MediaType string
	Name      string
}

// Content is what gets attached to the completion request: plain text for
// word-processing documents and PDFs, or a base64 payload plus media type for
// images. Exactly one of Text/Inline is set.
type Content struct {
	Category  MediaCategory
	MediaType string
	Text      string
	Inline    string // base64-encoded raw bytes
}

func (c *Content) IsInline() bool {
	return c.Inline != ""
}

var mediaCategories = map[string]MediaCategory{
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": CategoryWord,
	"application/msword": CategoryWord,
	"application/pdf":    CategoryPDF,
	"image/png":          CategoryImage,
	"image/jpeg":         CategoryImage,
	"image/jpg":          CategoryImage,
	"image/webp":         CategoryImage,
}

var extMediaTypes = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".doc":  "application/msword",
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// CategoryOf maps a normalized media type to its category. The second return
// is false for anything outside the accepted set.
func CategoryOf(mediaType string) (MediaCategory, bool) {
	cat, ok := mediaCategories[mediaType]
	return cat, ok
}

// MediaTypeForExt resolves a filename extension (with leading dot) to the
// media type used for routing in the object-storage flow, where the client
// uploads directly and no declared type survives.
func MediaTypeForExt(ext string) (string, bool) {
	mt, ok := extMediaTypes[strings.ToLower(ext)]
	return mt, ok
}

// NormalizeMediaType lowercases a declared media type and strips any
// parameters (e.g. "; charset=utf-8").
func NormalizeMediaType(mediaType string) string {
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
