package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anny12sstr/converter-analyses/internal/config"
	"github.com/anny12sstr/converter-analyses/internal/core/extraction_engine"
	objectclient "github.com/anny12sstr/converter-analyses/internal/core/object-client"
)

type stubObjects struct {
	upload   *objectclient.PresignedUpload
	data     []byte
	err      error
	getCalls int
	gotKey   string
}

func (s *stubObjects) PresignPut(_ context.Context, _ string, _ time.Duration) (*objectclient.PresignedUpload, error) {
	return s.upload, s.err
}

func (s *stubObjects) GetFile(_ context.Context, key string) ([]byte, error) {
	s.getCalls++
	s.gotKey = key
	return s.data, s.err
}

func TestGenerateUploadURL(t *testing.T) {
	req := require.New(t)

	objects := &stubObjects{upload: &objectclient.PresignedUpload{
		UploadURL: "https://bucket.acct.r2.cloudflarestorage.com/key?signature=abc",
		ObjectURL: "https://bucket.acct.r2.cloudflarestorage.com/key",
		Key:       "key",
	}}
	h := NewUploadHandler(objects, 10*time.Minute)

	r := httptest.NewRequest(http.MethodGet, "/api/uploads/url?filename=results.pdf", nil)
	w := httptest.NewRecorder()

	h.GenerateUploadURL(w, r)

	req.Equal(http.StatusOK, w.Code)

	var got map[string]string
	req.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	req.Equal(objects.upload.UploadURL, got["uploadURL"])
	req.Equal(objects.upload.ObjectURL, got["objectURL"])
}

func TestGenerateUploadURLMissingFilename(t *testing.T) {
	req := require.New(t)

	h := NewUploadHandler(&stubObjects{}, 10*time.Minute)

	r := httptest.NewRequest(http.MethodGet, "/api/uploads/url", nil)
	w := httptest.NewRecorder()

	h.GenerateUploadURL(w, r)

	req.Equal(http.StatusBadRequest, w.Code)
	req.Contains(w.Body.String(), "filename")
}

func TestGenerateUploadURLPresignFailure(t *testing.T) {
	req := require.New(t)

	h := NewUploadHandler(&stubObjects{err: errors.New("r2 down")}, 10*time.Minute)

	r := httptest.NewRequest(http.MethodGet, "/api/uploads/url?filename=a.pdf", nil)
	w := httptest.NewRecorder()

	h.GenerateUploadURL(w, r)

	req.Equal(http.StatusInternalServerError, w.Code)
}

func TestProcessObjectFlow(t *testing.T) {
	req := require.New(t)

	png := append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, []byte("imagedata")...)
	objects := &stubObjects{data: png}
	completer := &stubCompleter{response: "<table><tr><td>13.5</td></tr></table>"}

	h := NewConvertHandler(&MultipartIntake{MaxBytes: 10 << 20},
		extraction_engine.NewDocconvExtractor(), completer, objects, config.TableModeHTML)

	body := `{"objectURL":"https://bucket.acct.r2.cloudflarestorage.com/1700000000-abc-scan.png"}`
	r := httptest.NewRequest(http.MethodPost, "/api/convert/object", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.ProcessObject(w, r)

	req.Equal(http.StatusOK, w.Code)
	req.Equal(1, objects.getCalls)
	req.Equal("1700000000-abc-scan.png", objects.gotKey)
	req.Equal(1, completer.calls)
	req.Contains(w.Body.String(), "<table>")
}

func TestProcessObjectUnsupportedExtension(t *testing.T) {
	req := require.New(t)

	objects := &stubObjects{data: []byte("text")}
	completer := &stubCompleter{}

	h := NewConvertHandler(&MultipartIntake{MaxBytes: 10 << 20},
		extraction_engine.NewDocconvExtractor(), completer, objects, config.TableModeHTML)

	body := `{"objectURL":"https://bucket.acct.r2.cloudflarestorage.com/1700000000-abc-notes.txt"}`
	r := httptest.NewRequest(http.MethodPost, "/api/convert/object", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.ProcessObject(w, r)

	req.Equal(http.StatusBadRequest, w.Code)
	req.Zero(objects.getCalls, "the object must not be fetched for unsupported extensions")
	req.Zero(completer.calls)
}

func TestProcessObjectMissingURL(t *testing.T) {
	req := require.New(t)

	h := NewConvertHandler(&MultipartIntake{MaxBytes: 10 << 20},
		extraction_engine.NewDocconvExtractor(), &stubCompleter{}, &stubObjects{}, config.TableModeHTML)

	r := httptest.NewRequest(http.MethodPost, "/api/convert/object", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	h.ProcessObject(w, r)

	req.Equal(http.StatusBadRequest, w.Code)
}

func TestProcessObjectWithoutStorageConfigured(t *testing.T) {
	req := require.New(t)

	h := NewConvertHandler(&MultipartIntake{MaxBytes: 10 << 20},
		extraction_engine.NewDocconvExtractor(), &stubCompleter{}, nil, config.TableModeHTML)

	r := httptest.NewRequest(http.MethodPost, "/api/convert/object", strings.NewReader(`{"objectURL":"https://x/y.pdf"}`))
	w := httptest.NewRecorder()

	h.ProcessObject(w, r)

	req.Equal(http.StatusBadRequest, w.Code)
	req.Contains(w.Body.String(), "not configured")
}
