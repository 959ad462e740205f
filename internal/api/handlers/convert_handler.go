package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/anny12sstr/converter-analyses/internal/common"
	"github.com/anny12sstr/converter-analyses/internal/config"
	"github.com/anny12sstr/converter-analyses/internal/core"
	"github.com/anny12sstr/converter-analyses/internal/core/llm"
	objectclient "github.com/anny12sstr/converter-analyses/internal/core/object-client"
	"github.com/anny12sstr/converter-analyses/internal/core/table"
)

// completionTimeout bounds the upstream call independently of the client
// connection; a disconnect mid-flight does not abort the completion.
const completionTimeout = 60 * time.Second

type ConvertHandler struct {
	intake    Intake
	extractor core.Extractor
	completer core.Completer
	objects   objectclient.ObjectClient // nil when storage is not configured
	tableMode string
	policy    table.SpanPolicy
	validate  *validator.Validate
}

func NewConvertHandler(intake Intake, extractor core.Extractor, completer core.Completer, objects objectclient.ObjectClient, tableMode string) *ConvertHandler {
	return &ConvertHandler{
		intake:    intake,
		extractor: extractor,
		completer: completer,
		objects:   objects,
		tableMode: tableMode,
		policy:    table.WidestSpan,
		validate:  validator.New(),
	}
}

// Convert runs the whole pipeline for a directly uploaded file:
// intake -> extract -> complete -> normalize.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	file, err := h.intake.Read(r)
	if err != nil {
		writeError(w, err)
		return
	}
	h.run(w, r, file)
}

type processObjectRequest struct {
	ObjectURL string `json:"objectURL" validate:"required,url"`
}

// ProcessObject is the alternate intake: the client already PUT the file to
// object storage through a pre-signed URL and hands us the object URL.
// Routing happens by filename extension because the direct upload leaves no
// declared media type behind.
func (h *ConvertHandler) ProcessObject(w http.ResponseWriter, r *http.Request) {
	if h.objects == nil {
		writeError(w, common.New(common.KindBadRequest, "object storage is not configured"))
		return
	}

	var req processObjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.Wrap(common.KindBadRequest, "malformed request body", err))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, common.Wrap(common.KindBadRequest, "objectURL is missing or not a valid URL", err))
		return
	}

	u, err := url.Parse(req.ObjectURL)
	if err != nil {
		writeError(w, common.Wrap(common.KindBadRequest, "objectURL is not a valid URL", err))
		return
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		writeError(w, common.New(common.KindBadRequest, "objectURL has no object key"))
		return
	}

	mediaType, ok := core.MediaTypeForExt(path.Ext(u.Path))
	if !ok {
		writeError(w, common.Newf(common.KindUnsupportedType,
			"unsupported file type %q: only DOCX, DOC, PDF, PNG, JPEG and WEBP are accepted", path.Ext(u.Path)))
		return
	}

	data, err := h.objects.GetFile(r.Context(), key)
	if err != nil {
		writeError(w, common.Wrap(common.KindUpstreamFailure, "failed to fetch uploaded object", err))
		return
	}

	h.run(w, r, &core.UploadedFile{
		Data:      data,
		MediaType: mediaType,
		Name:      path.Base(u.Path),
	})
}

func (h *ConvertHandler) run(w http.ResponseWriter, r *http.Request, file *core.UploadedFile) {
	content, err := h.extractor.Extract(r.Context(), file)
	if err != nil {
		writeError(w, err)
		return
	}

	prompt := llm.PromptFor(content.Category, h.tableMode)

	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), completionTimeout)
	defer cancel()

	response, err := h.completer.Complete(ctx, prompt, content)
	if err != nil {
		writeError(w, err)
		return
	}

	if h.tableMode == config.TableModeJSON {
		st, err := table.NormalizeJSON(response)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, st)
		return
	}

	markup, err := table.NormalizeHTML(response, h.policy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"table": markup})
}
