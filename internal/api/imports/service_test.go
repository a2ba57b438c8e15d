package imports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pokerbase/bankroll-api/internal/types"
)

// fakeCreator persists sessions into a slice, failing on configured indexes.
type fakeCreator struct {
	created []types.CreateSessionDTO
	failOn  map[int]bool
	calls   int
}

func (f *fakeCreator) CreateSession(_ context.Context, userID string, dto types.CreateSessionDTO) (*types.PokerSession, error) {
	f.calls++
	if f.failOn[f.calls] {
		return nil, errors.New("backend rejected row")
	}
	f.created = append(f.created, dto)
	return &types.PokerSession{ID: fmt.Sprintf("s-%d", f.calls), UserID: userID}, nil
}

func newTestService(creator SessionCreator) (*Service, *WorkerPool) {
	workers := NewWorkerPool(1, 10)
	svc := NewService(creator, workers, NewJobStore())
	workers.SetProcessFunc(svc.ProcessImportJob)
	return svc, workers
}

const validCSV = "starttime,buyin,cashout\n" +
	"2024-01-01 18:00:00,100,250\n" +
	"2024-01-02 19:00:00,200,150\n" +
	"2024-01-03 20:00:00,300,900\n"

func TestProcessFatalCSV(t *testing.T) {
	svc, _ := newTestService(&fakeCreator{})

	resp, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: "nope"})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.Status != StatusFailed || resp.TotalSessions != 0 {
		t.Errorf("resp = %+v, want failed with zero sessions", resp)
	}
	if len(resp.Errors) != 1 || !strings.HasPrefix(resp.Errors[0], "CSV parsing error: ") {
		t.Errorf("errors = %v", resp.Errors)
	}
}

func TestProcessNoValidSessions(t *testing.T) {
	svc, _ := newTestService(&fakeCreator{})

	// Three lines, parseable, but the only data row blows up in the mapper.
	text := "starttime,buyin\nbad-date,100\nworse-date,200\n"
	resp, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: text})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.Status != StatusFailed {
		t.Errorf("status = %q, want failed", resp.Status)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("errors = %v, want both row errors", resp.Errors)
	}
}

func TestProcessEnqueuesAndPersists(t *testing.T) {
	creator := &fakeCreator{}
	svc, _ := newTestService(creator)

	resp, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: validCSV})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if resp.Status != StatusProcessing || resp.TotalSessions != 3 {
		t.Fatalf("resp = %+v", resp)
	}

	// Drain synchronously instead of starting the pool.
	svc.ProcessImportJob(context.Background(), <-svc.workers.importJobs)

	if len(creator.created) != 3 {
		t.Errorf("persisted %d sessions, want 3", len(creator.created))
	}
	status, ok := svc.JobStatus(resp.JobID)
	if !ok {
		t.Fatal("job not found")
	}
	if status.Status != StatusCompleted || status.Imported != 3 || status.Progress != 1 {
		t.Errorf("status = %+v", status)
	}
}

func TestProcessImportJobIsolatesPersistenceFailures(t *testing.T) {
	creator := &fakeCreator{failOn: map[int]bool{2: true}}
	svc, _ := newTestService(creator)

	resp, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: validCSV})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	svc.ProcessImportJob(context.Background(), <-svc.workers.importJobs)

	status, _ := svc.JobStatus(resp.JobID)
	if status.Status != StatusPartial {
		t.Errorf("status = %q, want partial", status.Status)
	}
	if status.Imported != 2 {
		t.Errorf("imported = %d, want 2", status.Imported)
	}
	if len(status.Errors) != 1 || !strings.HasPrefix(status.Errors[0], "Session 2: ") {
		t.Errorf("errors = %v, want one Session 2 error", status.Errors)
	}
}

func TestProcessQueueFull(t *testing.T) {
	creator := &fakeCreator{}
	workers := NewWorkerPool(1, 1)
	svc := NewService(creator, workers, NewJobStore())
	workers.SetProcessFunc(svc.ProcessImportJob)

	// First fills the queue (workers never started), second must be refused.
	if _, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: validCSV}); err != nil {
		t.Fatalf("first Process: %v", err)
	}
	if _, err := svc.Process(context.Background(), ImportRequest{UserID: "u1", CSVText: validCSV}); err == nil {
		t.Error("second Process should fail with a full queue")
	}
}

func TestJobStatusUnknown(t *testing.T) {
	svc, _ := newTestService(&fakeCreator{})
	if _, ok := svc.JobStatus("missing"); ok {
		t.Error("unknown job should not be found")
	}
}

func TestPreviewErrors(t *testing.T) {
	var errs []string
	for i := 0; i < 14; i++ {
		errs = append(errs, fmt.Sprintf("Row %d: bad", i+2))
	}
	preview := previewErrors(errs)
	if len(preview) != maxErrorPreview+1 {
		t.Fatalf("preview has %d entries, want %d", len(preview), maxErrorPreview+1)
	}
	if preview[maxErrorPreview] != "... and 4 more errors" {
		t.Errorf("summary = %q", preview[maxErrorPreview])
	}

	short := previewErrors([]string{"one"})
	if len(short) != 1 || short[0] != "one" {
		t.Errorf("short preview = %v", short)
	}
}
