package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	apperrors "modeldeck/backend/internal/errors"
	"modeldeck/backend/internal/llm"
	"modeldeck/backend/internal/model"
	"modeldeck/backend/internal/runtime"
)

// ModelService handles model management that does not involve tracked
// downloads: liveness probing, deletion, and toggling the local service.
type ModelService struct {
	llm         llm.Provider
	launcher    runtime.Launcher
	stopSettle  time.Duration
	startSettle time.Duration
}

// NewModelService creates a ModelService. The settle durations give the
// toggled process a moment to come up or wind down before re-probing.
func NewModelService(provider llm.Provider, launcher runtime.Launcher, stopSettle, startSettle time.Duration) *ModelService {
	return &ModelService{
		llm:         provider,
		launcher:    launcher,
		stopSettle:  stopSettle,
		startSettle: startSettle,
	}
}

// Status reports whether the upstream service answers and which models it
// has installed. A dead upstream is a normal outcome, never an error.
func (s *ModelService) Status(ctx context.Context) *model.OllamaStatus {
	return s.llm.Status(ctx)
}

// Delete removes a local model.
func (s *ModelService) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: model name cannot be empty", apperrors.ErrValidation)
	}
	return s.llm.DeleteModel(ctx, name)
}

// Toggle flips the local service between running and stopped and returns
// the status observed after the change.
func (s *ModelService) Toggle(ctx context.Context) *model.OllamaStatus {
	current := s.llm.Status(ctx)

	if current.Running {
		if err := s.launcher.Stop(); err != nil {
			slog.Warn("Could not stop ollama serve", "error", err)
		}
		time.Sleep(s.stopSettle)
	} else {
		if err := s.launcher.Start(); err != nil {
			slog.Warn("Could not start ollama serve", "error", err)
		}
		time.Sleep(s.startSettle)
	}

	return s.llm.Status(ctx)
}
