package extraction_engine

import (
	"bytes"
	"context"
	"encoding/base64"
	"log"
	"strings"

	"code.sajari.com/docconv"
	"github.com/gabriel-vasile/mimetype"

	"github.com/anny12sstr/converter-analyses/internal/common"
	"github.com/anny12sstr/converter-analyses/internal/core"
)

var _ core.Extractor = (*DocconvExtractor)(nil)

// DocconvExtractor routes an uploaded file by media type: word-processing
// documents and PDFs go through docconv text extraction, images are base64
// encoded as-is for inline submission. Unsupported types are rejected before
// any extraction work.
type DocconvExtractor struct {
	useReadability bool
}

func NewDocconvExtractor() *DocconvExtractor {
	return &DocconvExtractor{useReadability: false}
}

func (e *DocconvExtractor) Extract(ctx context.Context, file *core.UploadedFile) (*core.Content, error) {
	mediaType := core.NormalizeMediaType(file.MediaType)

	// Fall back to content sniffing when the client declared nothing useful.
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = core.NormalizeMediaType(mimetype.Detect(file.Data).String())
	}

	category, ok := core.CategoryOf(mediaType)
	if !ok {
		return nil, common.Newf(common.KindUnsupportedType,
			"unsupported file type %q: only DOCX, DOC, PDF, PNG, JPEG and WEBP are accepted", mediaType)
	}

	if category == core.CategoryImage {
		return &core.Content{
			Category:  category,
			MediaType: mediaType,
			Inline:    base64.StdEncoding.EncodeToString(file.Data),
		}, nil
	}

	res, err := docconv.Convert(bytes.NewReader(file.Data), mediaType, e.useReadability)
	if err != nil {
		log.Printf("docconv: extraction failed for %q (%s): %v", file.Name, mediaType, err)
		return nil, common.Wrap(common.KindExtractionFailed, "could not extract text from document", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, common.Wrap(common.KindExtractionFailed, "extraction canceled", err)
	}

	text := strings.TrimSpace(res.Body)
	if text == "" {
		return nil, common.New(common.KindExtractionFailed, "document contains no extractable text")
	}

	return &core.Content{
		Category:  category,
		MediaType: mediaType,
		Text:      text,
	}, nil
}
