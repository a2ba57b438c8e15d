package imports

import (
	"sync"
	"time"
)

// JobState is the mutable progress record for one import job. Attempted
// counts sessions the workers have tried to persist (success or failure);
// Imported counts the successes. Errors holds parse-time and persistence
// errors in the order they were found.
type JobState struct {
	JobID         string
	UserID        string
	Status        ImportStatus
	TotalSessions int
	Attempted     int
	Imported      int
	SkippedRows   int
	Errors        []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Progress is the fraction of the batch attempted so far.
func (s *JobState) Progress() float64 {
	if s.TotalSessions == 0 {
		return 0
	}
	return float64(s.Attempted) / float64(s.TotalSessions)
}

// JobStore is an in-memory registry of import jobs. Jobs are ephemeral; a
// restart forgets them, matching the one-shot nature of a CSV upload.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*JobState
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*JobState)}
}

func (st *JobStore) Create(jobID, userID string, total, skipped int, parseErrors []string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := time.Now().UTC()
	st.jobs[jobID] = &JobState{
		JobID:         jobID,
		UserID:        userID,
		Status:        StatusProcessing,
		TotalSessions: total,
		SkippedRows:   skipped,
		Errors:        append([]string(nil), parseErrors...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Update applies fn to the job under the store lock.
func (st *JobStore) Update(jobID string, fn func(*JobState)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if state, ok := st.jobs[jobID]; ok {
		fn(state)
		state.UpdatedAt = time.Now().UTC()
	}
}

// Get returns a copy of the job state, or false when the job is unknown.
func (st *JobStore) Get(jobID string) (JobState, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	state, ok := st.jobs[jobID]
	if !ok {
		return JobState{}, false
	}
	copied := *state
	copied.Errors = append([]string(nil), state.Errors...)
	return copied, true
}
