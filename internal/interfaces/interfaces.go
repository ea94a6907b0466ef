package interfaces

import (
	"context"

	"modeldeck/backend/internal/model"
	"modeldeck/backend/internal/service"
)

// Service contracts consumed by the API layer. Handlers depend on these
// instead of the concrete services so they can be tested with mocks.

// PullService drives tracked model downloads.
type PullService interface {
	Start(ctx context.Context, name string) model.PullProgress
	Check(ctx context.Context, name string) model.PullProgress
	Cancel(ctx context.Context, name string) bool
	History(ctx context.Context, limit int) ([]model.DownloadRecord, error)
}

// GenerateService opens relayed generation streams.
type GenerateService interface {
	Stream(ctx context.Context, req *service.GenerateRequest, out chan<- model.StreamResponse)
}

// ModelService covers liveness, deletion and service toggling.
type ModelService interface {
	Status(ctx context.Context) *model.OllamaStatus
	Delete(ctx context.Context, name string) error
	Toggle(ctx context.Context) *model.OllamaStatus
}
