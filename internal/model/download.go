package model

import "time"

// DownloadRecord is one row of the persistent download history. A row is
// appended when a tracked pull reaches a terminal state; the in-memory
// progress store stays the source of truth while a pull is running.
type DownloadRecord struct {
	ID              string    `json:"id"`
	Model           string    `json:"model"`
	Status          string    `json:"status"`
	Error           string    `json:"error,omitempty"`
	BytesDownloaded int64     `json:"bytes_downloaded"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}
