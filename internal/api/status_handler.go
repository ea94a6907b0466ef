package api

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"modeldeck/backend/internal/interfaces"
)

// StatusHandler handles HTTP requests for service status and model management.
type StatusHandler struct {
	service interfaces.ModelService
}

func NewStatusHandler(svc interfaces.ModelService) *StatusHandler {
	return &StatusHandler{service: svc}
}

// DeleteModelRequest is the DTO for removing an installed model.
type DeleteModelRequest struct {
	Name string `json:"name" validate:"required" example:"llama3:8b"`
}

// HandleStatus godoc
// @Summary      Ollama status
// @Description  Reports whether the Ollama service responds and which models it has installed.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  model.OllamaStatus
// @Router       /v1/status [get]
func (h *StatusHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Status(r.Context()))
}

// HandleHostname godoc
// @Summary      Machine hostname
// @Description  Returns the hostname of the machine running the service.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  HostnameResponse
// @Router       /v1/hostname [get]
func (h *StatusHandler) HandleHostname(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HostnameResponse{Hostname: machineHostname()})
}

// HandleToggle godoc
// @Summary      Toggle the Ollama service
// @Description  Stops Ollama if it is running, starts it otherwise, and returns the resulting status.
// @Tags         Status
// @Produce      json
// @Success      200  {object}  model.OllamaStatus
// @Router       /v1/service/toggle [post]
func (h *StatusHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Toggle(r.Context()))
}

// HandleDeleteModel godoc
// @Summary      Delete an installed model
// @Description  Removes a model from the local Ollama storage.
// @Tags         Models
// @Accept       json
// @Produce      json
// @Param        deleteRequest  body      DeleteModelRequest  true  "Model Name to Delete"
// @Success      200            {object}  StatusResponse
// @Failure      400            {object}  ErrorResponse
// @Failure      404            {object}  ErrorResponse
// @Router       /v1/models [delete]
func (h *StatusHandler) HandleDeleteModel(w http.ResponseWriter, r *http.Request) {
	var req DeleteModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload"})
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), req.Name); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// machineHostname resolves the hostname the same way across bare-metal and
// container deployments: the kernel-provided file first, then the environment,
// then the syscall, with a stable fallback for stripped-down images.
func machineHostname() string {
	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(os.Getenv("HOSTNAME")); name != "" {
		return name
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "ollama"
}
