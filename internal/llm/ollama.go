package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	apperrors "modeldeck/backend/internal/errors"
	"modeldeck/backend/internal/model"
)

// Provider defines the interface for talking to the local Ollama service.
type Provider interface {
	// Status probes liveness and the installed model list. Transport
	// failure is a normal outcome here, reported as Running=false, so
	// Status never returns an error.
	Status(ctx context.Context) *model.OllamaStatus

	// PullStream opens the chunked pull endpoint for a model and forwards
	// each progress chunk to ch. The channel is closed before returning.
	// A connect or read failure is returned as an error; individual
	// malformed chunks are skipped.
	PullStream(ctx context.Context, name string, ch chan<- PullEvent) error

	// GenerateStream opens the streaming generate endpoint and forwards
	// each token chunk to ch. The channel is closed before returning.
	// An error is returned only when the stream could not be opened;
	// a broken connection mid-stream simply ends the stream.
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- model.StreamResponse) error

	// DeleteModel removes a local model.
	DeleteModel(ctx context.Context, name string) error
}

// PullEvent is one progress chunk from the upstream pull stream.
// Terminal chunks carry Status=="success" or a non-empty Error.
type PullEvent struct {
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	Completed int64  `json:"completed"`
	Error     string `json:"error"`
}

// GenerateRequest is the payload for the upstream generate endpoint.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaProvider struct {
	client *http.Client
	url    string
}

func NewOllamaProvider(url string) Provider {
	return &ollamaProvider{
		client: &http.Client{},
		url:    url,
	}
}

func (p *ollamaProvider) Status(ctx context.Context) *model.OllamaStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/api/tags", nil)
	if err != nil {
		return &model.OllamaStatus{Running: false, Models: []string{}}
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return &model.OllamaStatus{Running: false, Models: []string{}}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.OllamaStatus{Running: false, Models: []string{}}
	}

	// The service answered, so it is running even if the body is garbled.
	status := &model.OllamaStatus{Running: true, Models: []string{}}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		slog.Warn("Could not decode model list from Ollama", "error", err)
		return status
	}
	for _, m := range tags.Models {
		if m.Name == "" {
			continue
		}
		status.Models = append(status.Models, m.Name)
	}
	return status
}

func (p *ollamaProvider) PullStream(ctx context.Context, name string, ch chan<- PullEvent) error {
	defer close(ch)

	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return fmt.Errorf("could not marshal pull request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/pull", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("could not create pull request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pull returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var sendErr error
	scanErr := scanLines(resp.Body, func(line []byte) {
		if sendErr != nil {
			return
		}
		var ev PullEvent
		if err := json.Unmarshal(line, &ev); err != nil {
			// Garbled chunks are tolerated; the stream continues.
			slog.Debug("Skipping malformed pull chunk", "error", err)
			return
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			sendErr = ctx.Err()
		}
	})
	if sendErr != nil {
		return sendErr
	}
	if scanErr != nil {
		return fmt.Errorf("pull stream read failed: %w", scanErr)
	}
	return nil
}

func (p *ollamaProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- model.StreamResponse) error {
	defer close(ch)

	req.Stream = true
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("could not marshal generate request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("could not create generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: generate returned status %d: %s", apperrors.ErrUnreachable, resp.StatusCode, string(bodyBytes))
	}

	type generateChunk struct {
		Response string `json:"response"`
		Done     bool   `json:"done"`
	}

	var sendErr error
	scanErr := scanLines(resp.Body, func(line []byte) {
		if sendErr != nil {
			return
		}
		var chunk generateChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			slog.Debug("Skipping malformed generate chunk", "error", err)
			return
		}
		// Keep-alive chunks with no token and no done flag carry nothing
		// worth relaying.
		if chunk.Response == "" && !chunk.Done {
			return
		}
		select {
		case ch <- model.StreamResponse{Content: chunk.Response, Done: chunk.Done}:
		case <-ctx.Done():
			sendErr = ctx.Err()
		}
	})
	if sendErr != nil {
		return sendErr
	}
	if scanErr != nil {
		// The stream already delivered what it could; a broken connection
		// mid-stream ends the relay without a sentinel.
		slog.Warn("Generate stream ended early", "model", req.Model, "error", scanErr)
	}
	return nil
}

func (p *ollamaProvider) DeleteModel(ctx context.Context, name string) error {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return fmt.Errorf("could not marshal delete request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.url+"/api/delete", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("could not create delete request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: model %q", apperrors.ErrNotFound, name)
	default:
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}
}
