package imports

import (
	"time"

	"github.com/pokerbase/bankroll-api/internal/types"
)

type ImportStatus string

const (
	StatusProcessing ImportStatus = "processing"
	StatusCompleted  ImportStatus = "completed"
	StatusPartial    ImportStatus = "partial"
	StatusFailed     ImportStatus = "failed"
)

// maxErrorPreview caps how many error strings a response carries; the rest
// collapse into a "... and K more errors" summary line.
const maxErrorPreview = 10

type ImportRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Filename string `json:"filename,omitempty"`
	CSVText  string `json:"csvText" binding:"required"`
}

// ImportJob carries one parsed batch to the background workers. Parsing
// happens up front so the caller learns about a dead file immediately; only
// persistence is deferred.
type ImportJob struct {
	JobID    string
	UserID   string
	Filename string
	Sessions []types.CreateSessionDTO
	Enqueued time.Time
}

type ImportResponse struct {
	JobID         string       `json:"jobId,omitempty"`
	Status        ImportStatus `json:"status"`
	Message       string       `json:"message"`
	TotalSessions int          `json:"totalSessions"`
	SkippedRows   int          `json:"skippedRows,omitempty"`
	Errors        []string     `json:"errors,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

type JobStatusResponse struct {
	JobID         string       `json:"jobId"`
	Status        ImportStatus `json:"status"`
	Progress      float64      `json:"progress"`
	Imported      int          `json:"imported"`
	TotalSessions int          `json:"totalSessions"`
	SkippedRows   int          `json:"skippedRows"`
	ErrorCount    int          `json:"errorCount"`
	Errors        []string     `json:"errors,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
