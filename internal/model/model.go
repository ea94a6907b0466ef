package model

// PullProgress is the tracked state of one model download attempt,
// keyed by model name. It is mutated only by the pull orchestrator's
// background task; once Done is true the record is frozen.
type PullProgress struct {
	Model           string  `json:"model"`
	Status          string  `json:"status"`
	Percent         float64 `json:"percent"`
	Done            bool    `json:"done"`
	Error           string  `json:"error,omitempty"`
	BytesDownloaded int64   `json:"bytes_downloaded"`
	Speed           string  `json:"speed"`
	LastUpdate      int64   `json:"last_update"` // unix seconds of the last mutation
}

// Well-known Status values for PullProgress.
const (
	StatusStarting  = "Starting..."
	StatusComplete  = "Complete"
	StatusError     = "Error"
	StatusCancelled = "Cancelled"
	StatusWaiting   = "Waiting..."
)

// OllamaStatus is an ephemeral snapshot of the upstream service:
// whether it responds at all and which models it has installed.
// It is recomputed on every probe, never stored.
type OllamaStatus struct {
	Running bool     `json:"running"`
	Models  []string `json:"models"`
}

// StreamResponse is a single chunk relayed from a generation stream.
type StreamResponse struct {
	Content string `json:"content"`
	Done    bool   `json:"done"`
	Error   string `json:"error,omitempty"`
}
