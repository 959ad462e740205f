package handlers

import (
	"net/http"
	"time"

	"github.com/anny12sstr/converter-analyses/internal/common"
	objectclient "github.com/anny12sstr/converter-analyses/internal/core/object-client"
)

type UploadHandler struct {
	objects objectclient.ObjectClient
	ttl     time.Duration
}

func NewUploadHandler(objects objectclient.ObjectClient, ttl time.Duration) *UploadHandler {
	return &UploadHandler{objects: objects, ttl: ttl}
}

// GenerateUploadURL issues a pre-signed PUT URL so the client can push the
// file straight to object storage without routing bytes through this server.
func (h *UploadHandler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		writeError(w, common.New(common.KindBadRequest, "filename query parameter is required"))
		return
	}

	up, err := h.objects.PresignPut(r.Context(), filename, h.ttl)
	if err != nil {
		writeError(w, common.Wrap(common.KindUpstreamFailure, "failed to generate pre-signed URL", err))
		return
	}

	writeJSON(w, http.StatusOK, up)
}
