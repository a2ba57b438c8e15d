package imports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pokerbase/bankroll-api/internal/csvimport"
	"github.com/pokerbase/bankroll-api/internal/types"
	"github.com/pokerbase/bankroll-api/internal/utils"
	"go.uber.org/zap"
)

// SessionCreator is the one persistence operation the importer needs.
// *loaders.PostgresClient satisfies it.
type SessionCreator interface {
	CreateSession(ctx context.Context, userID string, dto types.CreateSessionDTO) (*types.PokerSession, error)
}

type Service struct {
	db      SessionCreator
	workers *WorkerPool
	store   *JobStore
}

func NewService(db SessionCreator, workers *WorkerPool, store *JobStore) *Service {
	return &Service{db: db, workers: workers, store: store}
}

// Process parses the CSV synchronously and, when anything mapped, enqueues
// persistence as a background job. A batch with zero valid sessions is
// reported immediately rather than queued.
func (s *Service) Process(ctx context.Context, req ImportRequest) (*ImportResponse, error) {
	result := csvimport.ImportSessions(req.CSVText)

	utils.Zlog.Info("Import request parsed",
		zap.String("userId", req.UserID),
		zap.String("filename", req.Filename),
		zap.Int("sessions", len(result.Sessions)),
		zap.Int("parseErrors", len(result.Errors)),
		zap.Int("skippedRows", result.SkippedRows))

	if len(result.Sessions) == 0 {
		errs := result.Errors
		if len(errs) == 0 {
			errs = []string{"No valid sessions found"}
		}
		return &ImportResponse{
			Status:        StatusFailed,
			Message:       "No valid sessions found",
			TotalSessions: 0,
			SkippedRows:   result.SkippedRows,
			Errors:        previewErrors(errs),
			Timestamp:     time.Now().UTC(),
		}, nil
	}

	jobID := uuid.New().String()
	s.store.Create(jobID, req.UserID, len(result.Sessions), result.SkippedRows, result.Errors)

	job := ImportJob{
		JobID:    jobID,
		UserID:   req.UserID,
		Filename: req.Filename,
		Sessions: result.Sessions,
		Enqueued: time.Now().UTC(),
	}
	if ok := s.workers.Enqueue(job); !ok {
		return nil, fmt.Errorf("import queue is full, try again later")
	}

	return &ImportResponse{
		JobID:         jobID,
		Status:        StatusProcessing,
		Message:       fmt.Sprintf("Importing %d sessions", len(result.Sessions)),
		TotalSessions: len(result.Sessions),
		SkippedRows:   result.SkippedRows,
		Errors:        previewErrors(result.Errors),
		Timestamp:     time.Now().UTC(),
	}, nil
}

// ProcessImportJob persists one parsed batch, session by session in row
// order (called by workers). A failed insert records an error and moves on;
// it never stops the batch.
func (s *Service) ProcessImportJob(ctx context.Context, job ImportJob) {
	utils.Zlog.Info("Processing import job",
		zap.String("jobId", job.JobID),
		zap.String("userId", job.UserID),
		zap.Int("sessions", len(job.Sessions)))

	imported := 0
	for i, session := range job.Sessions {
		_, err := s.db.CreateSession(ctx, job.UserID, session)
		if err != nil {
			utils.Zlog.Error("Failed to persist imported session",
				zap.String("jobId", job.JobID),
				zap.Int("session", i+1),
				zap.Error(err))
			s.store.Update(job.JobID, func(state *JobState) {
				state.Attempted++
				state.Errors = append(state.Errors, fmt.Sprintf("Session %d: %v", i+1, err))
			})
			continue
		}
		imported++
		s.store.Update(job.JobID, func(state *JobState) {
			state.Attempted++
			state.Imported++
		})
	}

	var status ImportStatus
	switch {
	case imported == len(job.Sessions):
		status = StatusCompleted
	case imported == 0:
		status = StatusFailed
	default:
		status = StatusPartial
	}
	s.store.Update(job.JobID, func(state *JobState) {
		state.Status = status
	})

	utils.Zlog.Info("Import job finished",
		zap.String("jobId", job.JobID),
		zap.String("status", string(status)),
		zap.Int("imported", imported),
		zap.Int("failed", len(job.Sessions)-imported))
}

// JobStatus reports progress for one job.
func (s *Service) JobStatus(jobID string) (*JobStatusResponse, bool) {
	state, ok := s.store.Get(jobID)
	if !ok {
		return nil, false
	}
	return &JobStatusResponse{
		JobID:         state.JobID,
		Status:        state.Status,
		Progress:      state.Progress(),
		Imported:      state.Imported,
		TotalSessions: state.TotalSessions,
		SkippedRows:   state.SkippedRows,
		ErrorCount:    len(state.Errors),
		Errors:        previewErrors(state.Errors),
		Timestamp:     time.Now().UTC(),
	}, true
}

// previewErrors caps the error list shown to clients at maxErrorPreview
// entries, summarizing the overflow.
func previewErrors(errs []string) []string {
	if len(errs) <= maxErrorPreview {
		return errs
	}
	preview := append([]string(nil), errs[:maxErrorPreview]...)
	return append(preview, fmt.Sprintf("... and %d more errors", len(errs)-maxErrorPreview))
}
