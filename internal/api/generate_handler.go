package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"modeldeck/backend/internal/interfaces"
	"modeldeck/backend/internal/model"
	"modeldeck/backend/internal/service"
)

// GenerateHandler handles the streaming text generation endpoint.
type GenerateHandler struct {
	service interfaces.GenerateService
}

func NewGenerateHandler(svc interfaces.GenerateService) *GenerateHandler {
	return &GenerateHandler{service: svc}
}

// GenerateRequestBody is the DTO for the generation endpoint.
type GenerateRequestBody struct {
	Model  string `json:"model" validate:"required" example:"llama3:8b"`
	Prompt string `json:"prompt" validate:"required" example:"Why is the sky blue?"`
}

// streamEndSentinel marks the end of a completed generation stream. Clients
// stop reading when they receive this frame; a stream that ends without it
// was truncated.
const streamEndSentinel = "__END__"

// HandleGenerate godoc
// @Summary      Generate text
// @Description  Streams raw token fragments from the model as SSE data frames. A final `__END__` frame marks successful completion.
// @Tags         Generate
// @Accept       json
// @Produce      text/event-stream
// @Param        generateRequest  body  GenerateRequestBody  true  "Generation Request"
// @Success      200  {string}  string  "Stream of token fragments"
// @Failure      400  {object}  ErrorResponse  "Sent as a stream error event"
// @Router       /v1/generate [post]
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	var req GenerateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Error decoding request body for generation", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		sendStreamError(w, err.Error())
		return
	}

	streamChan := make(chan model.StreamResponse)
	go h.service.Stream(r.Context(), &service.GenerateRequest{Model: req.Model, Prompt: req.Prompt}, streamChan)

	for chunk := range streamChan {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during generation.", "model", req.Model)
			break
		}

		if chunk.Error != "" {
			// The error surfaces inline as a bracketed data frame so plain
			// EventSource clients render it in place of the response text.
			if err := writeStreamData(w, fmt.Sprintf("[Error: %s]", chunk.Error)); err != nil {
				slog.Warn("Could not write to generation stream, client likely disconnected.", "error", err)
				break
			}
			continue
		}

		// Token and done flag are independent: the final chunk may carry a
		// last fragment together with done, and that fragment must go out
		// before the sentinel. Fragments are relayed verbatim; leading
		// whitespace is significant because the model tokenizes across word
		// boundaries.
		if chunk.Content != "" {
			if err := writeStreamData(w, chunk.Content); err != nil {
				slog.Warn("Could not write to generation stream, client likely disconnected.", "error", err)
				break
			}
		}
		if chunk.Done {
			if err := writeStreamData(w, streamEndSentinel); err != nil {
				slog.Warn("Could not write end sentinel, client likely disconnected.", "error", err)
				break
			}
		}
	}

	slog.Info("Finished streaming generation response.", "model", req.Model)
}
