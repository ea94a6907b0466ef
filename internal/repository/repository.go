package repository

import (
	"context"

	"modeldeck/backend/internal/model"
)

// HistoryRepository persists finished download attempts. The in-memory
// progress store tracks live pulls; this is the durable audit trail of
// terminal outcomes only.
type HistoryRepository interface {
	Add(ctx context.Context, rec *model.DownloadRecord) error
	List(ctx context.Context, limit int) ([]model.DownloadRecord, error)
}
