package service

import (
	"context"
	"log/slog"

	"modeldeck/backend/internal/llm"
	"modeldeck/backend/internal/model"
)

// GenerateService relays a generation stream from the upstream service to
// a caller-supplied channel. Each relay is independent and holds no shared
// state, so the service itself needs no locking.
type GenerateService struct {
	llm llm.Provider
}

// GenerateRequest is the caller-facing payload for opening a relay stream.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

func NewGenerateService(provider llm.Provider) *GenerateService {
	return &GenerateService{llm: provider}
}

// Stream opens the upstream generation stream and forwards every chunk to
// out, closing out when the relay ends. When the upstream cannot be
// reached at all, a single error chunk is emitted instead; a connection
// that breaks mid-stream just ends the relay, and the absence of a final
// Done chunk is the caller's signal that the output was truncated.
func (s *GenerateService) Stream(ctx context.Context, req *GenerateRequest, out chan<- model.StreamResponse) {
	defer close(out)

	upstream := make(chan model.StreamResponse)
	errc := make(chan error, 1)
	go func() {
		errc <- s.llm.GenerateStream(ctx, &llm.GenerateRequest{
			Model:  req.Model,
			Prompt: req.Prompt,
			Stream: true,
		}, upstream)
	}()

	delivered := false
	for chunk := range upstream {
		select {
		case out <- chunk:
			delivered = true
		case <-ctx.Done():
			return
		}
	}

	if err := <-errc; err != nil && !delivered {
		slog.Warn("Could not open generation stream", "model", req.Model, "error", err)
		out <- model.StreamResponse{Error: "Ollama not reachable"}
	}
}
