package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/anny12sstr/converter-analyses/internal/common"
	"github.com/anny12sstr/converter-analyses/internal/core"
)

// Intake reads exactly one uploaded file from a request. The strategy is
// chosen once at startup; the rest of the pipeline never sees the difference.
type Intake interface {
	Read(r *http.Request) (*core.UploadedFile, error)
}

// MultipartIntake accepts a multipart body with a single "file" field.
type MultipartIntake struct {
	MaxBytes int64
}

func (m *MultipartIntake) Read(r *http.Request) (*core.UploadedFile, error) {
	if err := r.ParseMultipartForm(m.MaxBytes); err != nil {
		return nil, common.Wrap(common.KindBadRequest, "malformed multipart body", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, common.Wrap(common.KindBadRequest, "please upload a file", err)
	}
	defer file.Close()

	if header.Size > m.MaxBytes {
		return nil, common.Newf(common.KindBadRequest, "file exceeds the %d byte limit", m.MaxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, m.MaxBytes+1))
	if err != nil {
		return nil, common.Wrap(common.KindBadRequest, "could not read uploaded file", err)
	}
	if int64(len(data)) > m.MaxBytes {
		return nil, common.Newf(common.KindBadRequest, "file exceeds the %d byte limit", m.MaxBytes)
	}

	return &core.UploadedFile{
		Data:      data,
		MediaType: header.Header.Get("Content-Type"),
		Name:      header.Filename,
	}, nil
}

// InlineIntake accepts a JSON body carrying the file as a base64 data URL.
type InlineIntake struct {
	MaxBytes int64
}

type inlineUploadRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

func (b *InlineIntake) Read(r *http.Request) (*core.UploadedFile, error) {
	var req inlineUploadRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, b.MaxBytes*2)).Decode(&req); err != nil {
		return nil, common.Wrap(common.KindBadRequest, "malformed request body", err)
	}
	if req.Data == "" {
		return nil, common.New(common.KindBadRequest, "please upload a file")
	}

	meta, payload, found := strings.Cut(req.Data, ",")
	if !found || !strings.HasPrefix(meta, "data:") || !strings.HasSuffix(meta, ";base64") {
		return nil, common.New(common.KindBadRequest, "data must be a base64 data URL")
	}
	mediaType := strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, common.Wrap(common.KindBadRequest, "invalid base64 payload", err)
	}
	if int64(len(data)) > b.MaxBytes {
		return nil, common.Newf(common.KindBadRequest, "file exceeds the %d byte limit", b.MaxBytes)
	}

	return &core.UploadedFile{
		Data:      data,
		MediaType: mediaType,
		Name:      req.Filename,
	}, nil
}
