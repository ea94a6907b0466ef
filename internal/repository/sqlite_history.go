package repository

import (
	"context"
	"database/sql"
	"fmt"

	"modeldeck/backend/internal/model"
)

type sqliteHistory struct {
	db *sql.DB
}

func NewSQLiteHistory(db *sql.DB) HistoryRepository {
	return &sqliteHistory{db: db}
}

func (r *sqliteHistory) Add(ctx context.Context, rec *model.DownloadRecord) error {
	query := "INSERT INTO download_history (id, model, status, error, bytes_downloaded, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Model,
		rec.Status,
		rec.Error,
		rec.BytesDownloaded,
		rec.StartedAt,
		rec.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert download record: %w", err)
	}
	return nil
}

func (r *sqliteHistory) List(ctx context.Context, limit int) ([]model.DownloadRecord, error) {
	query := "SELECT id, model, status, error, bytes_downloaded, started_at, finished_at FROM download_history ORDER BY finished_at DESC LIMIT ?"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query download history: %w", err)
	}
	defer rows.Close()

	var records []model.DownloadRecord
	for rows.Next() {
		var rec model.DownloadRecord
		if err := rows.Scan(&rec.ID, &rec.Model, &rec.Status, &rec.Error, &rec.BytesDownloaded, &rec.StartedAt, &rec.FinishedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
