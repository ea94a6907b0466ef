package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"modeldeck/backend/internal/api"
	"modeldeck/backend/internal/interfaces/mocks"
	"modeldeck/backend/internal/model"
	"modeldeck/backend/internal/service"
)

func setupGenerateHandler(t *testing.T) (*api.GenerateHandler, *mocks.MockGenerateService) {
	mockSvc := mocks.NewMockGenerateService(t)
	handler := api.NewGenerateHandler(mockSvc)
	return handler, mockSvc
}

func TestGenerateHandler_HandleGenerate(t *testing.T) {
	t.Run("streams token fragments verbatim with the end sentinel", func(t *testing.T) {
		handler, mockSvc := setupGenerateHandler(t)

		mockSvc.On("Stream", mock.Anything, mock.MatchedBy(func(r *service.GenerateRequest) bool {
			return r.Model == "llama3:8b" && r.Prompt == "hello"
		}), mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- model.StreamResponse)
				ch <- model.StreamResponse{Content: "Hi"}
				ch <- model.StreamResponse{Content: " there"}
				ch <- model.StreamResponse{Done: true}
				close(ch)
			}).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model": "llama3:8b", "prompt": "hello"}`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		// The second fragment keeps its leading space: the frontend joins
		// fragments by plain concatenation.
		assert.Equal(t, "data: Hi\n\ndata:  there\n\ndata: __END__\n\n", rr.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("final chunk carrying both a token and done emits both frames", func(t *testing.T) {
		handler, mockSvc := setupGenerateHandler(t)

		mockSvc.On("Stream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- model.StreamResponse)
				ch <- model.StreamResponse{Content: "Hi"}
				ch <- model.StreamResponse{Content: "!", Done: true}
				close(ch)
			}).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model": "llama3:8b", "prompt": "hello"}`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		// The trailing token must not be swallowed by the sentinel.
		assert.Equal(t, "data: Hi\n\ndata: !\n\ndata: __END__\n\n", rr.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("relays service errors as a bracketed data frame", func(t *testing.T) {
		handler, mockSvc := setupGenerateHandler(t)

		mockSvc.On("Stream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- model.StreamResponse)
				ch <- model.StreamResponse{Error: "Ollama not reachable"}
				close(ch)
			}).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model": "llama3:8b", "prompt": "hello"}`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		assert.Equal(t, "data: [Error: Ollama not reachable]\n\n", rr.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("truncated stream ends without the sentinel", func(t *testing.T) {
		handler, mockSvc := setupGenerateHandler(t)

		mockSvc.On("Stream", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				ch := args.Get(2).(chan<- model.StreamResponse)
				ch <- model.StreamResponse{Content: "partial"}
				close(ch)
			}).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model": "llama3:8b", "prompt": "hello"}`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		assert.Equal(t, "data: partial\n\n", rr.Body.String())
		assert.NotContains(t, rr.Body.String(), "__END__")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupGenerateHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model":`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		assert.Contains(t, rr.Body.String(), "event: error")
		assert.Contains(t, rr.Body.String(), "Invalid request body")
	})

	t.Run("Failure - Missing prompt", func(t *testing.T) {
		handler, _ := setupGenerateHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/generate", strings.NewReader(`{"model": "llama3:8b"}`))
		rr := httptest.NewRecorder()

		handler.HandleGenerate(rr, req)

		assert.Contains(t, rr.Body.String(), "event: error")
		assert.Contains(t, rr.Body.String(), "Prompt")
	})
}
