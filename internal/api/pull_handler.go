package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"modeldeck/backend/internal/interfaces"
)

// PullHandler handles HTTP requests for tracked model downloads.
type PullHandler struct {
	service      interfaces.PullService
	historyLimit int
}

func NewPullHandler(svc interfaces.PullService, historyLimit int) *PullHandler {
	return &PullHandler{service: svc, historyLimit: historyLimit}
}

// PullModelRequest is the DTO for starting a model download.
type PullModelRequest struct {
	Name string `json:"name" validate:"required" example:"llama3:8b"`
}

// HandleStartPull godoc
// @Summary      Start a model download
// @Description  Kicks off a background download of a model from the Ollama registry and returns the initial progress record. Poll the check endpoint for updates.
// @Tags         Downloads
// @Accept       json
// @Produce      json
// @Param        pullRequest  body      PullModelRequest  true  "Model Name to Pull"
// @Success      202          {object}  model.PullProgress
// @Failure      400          {object}  ErrorResponse
// @Router       /v1/models/pull [post]
func (h *PullHandler) HandleStartPull(w http.ResponseWriter, r *http.Request) {
	var req PullModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	progress := h.service.Start(r.Context(), req.Name)
	respondWithJSON(w, http.StatusAccepted, progress)
}

// HandleCheckPull godoc
// @Summary      Check download progress
// @Description  Returns the latest known progress for a model. Falls back to the installed-model list when no download is being tracked.
// @Tags         Downloads
// @Produce      json
// @Param        model  path      string  true  "Model Name"
// @Success      200    {object}  model.PullProgress
// @Router       /v1/models/pull/{model} [get]
func (h *PullHandler) HandleCheckPull(w http.ResponseWriter, r *http.Request) {
	name := pathModel(r)
	progress := h.service.Check(r.Context(), name)
	respondWithJSON(w, http.StatusOK, progress)
}

// HandleCancelPull godoc
// @Summary      Cancel a download
// @Description  Interrupts an in-flight download. Cancelling a model that is not downloading is a no-op and still reports success.
// @Tags         Downloads
// @Produce      json
// @Param        model  path      string  true  "Model Name"
// @Success      200    {object}  CancelResponse
// @Router       /v1/models/pull/{model} [delete]
func (h *PullHandler) HandleCancelPull(w http.ResponseWriter, r *http.Request) {
	name := pathModel(r)
	cancelled := h.service.Cancel(r.Context(), name)
	respondWithJSON(w, http.StatusOK, CancelResponse{Cancelled: cancelled})
}

// HandleListDownloads godoc
// @Summary      List download history
// @Description  Returns finished downloads, newest first. The `limit` query parameter caps the number of rows.
// @Tags         Downloads
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of records"
// @Success      200    {array}   model.DownloadRecord
// @Failure      500    {object}  ErrorResponse
// @Router       /v1/models/downloads [get]
func (h *PullHandler) HandleListDownloads(w http.ResponseWriter, r *http.Request) {
	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.service.History(r.Context(), limit)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}

// pathModel extracts the model name from the URL. Model names may contain
// colons (tags) and URL-encoded slashes (namespaces), so the segment is
// unescaped before use.
func pathModel(r *http.Request) string {
	raw := chi.URLParam(r, "model")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}
