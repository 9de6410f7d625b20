// Package workflow routes uploads to the right extractor and renderer and
// tracks each run through its lifecycle. A run owns its document alone:
// nothing is shared across runs and nothing survives the process.
package workflow

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status represents the current state of a run.
type Status string

const (
	// StatusIdle is the implicit state before a document is uploaded;
	// no run record exists yet.
	StatusIdle       Status = "idle"
	StatusUploaded   Status = "uploaded"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// Run is one pipeline invocation for one uploaded document.
type Run struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	DocType  DocType  `json:"doc_type"`
	Status   Status   `json:"status"`

	// Progress is the fraction of pages processed, 0..1.
	Progress float64 `json:"progress"`

	// Result holds the rendered template once Status is done.
	Result string `json:"result,omitempty"`

	// Message holds the generic user-facing failure message once Status is
	// failed. Diagnostic detail goes to logs only.
	Message string `json:"message,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// pdf is held only between upload and processing.
	pdf []byte
}

// Store is an in-memory run registry. Runs never persist across restarts;
// every upload starts fresh.
type Store struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewStore creates an empty run store.
func NewStore() *Store {
	return &Store{runs: make(map[string]*Run)}
}

// Create registers an uploaded document and returns the new run snapshot.
func (s *Store) Create(category Category, docType DocType, pdf []byte) Run {
	run := &Run{
		ID:        uuid.New().String(),
		Category:  category,
		DocType:   docType,
		Status:    StatusUploaded,
		CreatedAt: time.Now().UTC(),
		pdf:       pdf,
	}

	s.mu.Lock()
	s.runs[run.ID] = run
	s.mu.Unlock()

	return *run
}

// Get returns a snapshot of a run.
func (s *Store) Get(id string) (Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

// Start transitions uploaded → processing and hands the document bytes to
// the caller. Processing begins only on this explicit trigger.
func (s *Store) Start(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if run.Status != StatusUploaded {
		return nil, fmt.Errorf("run %s is %s, expected %s", id, run.Status, StatusUploaded)
	}

	now := time.Now().UTC()
	run.Status = StatusProcessing
	run.StartedAt = &now

	pdf := run.pdf
	run.pdf = nil // the document is not retained past this point
	return pdf, nil
}

// SetProgress records the fraction of pages processed.
func (s *Store) SetProgress(id string, done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run, ok := s.runs[id]; ok && total > 0 {
		run.Progress = float64(done) / float64(total)
	}
}

// Complete transitions processing → done with the rendered result.
func (s *Store) Complete(id, result string) error {
	return s.finish(id, StatusDone, result, "")
}

// Fail transitions processing → failed with the generic user-facing message.
func (s *Store) Fail(id, message string) error {
	return s.finish(id, StatusFailed, "", message)
}

func (s *Store) finish(id string, status Status, result, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return fmt.Errorf("run %s not found", id)
	}
	if run.Status != StatusProcessing {
		return fmt.Errorf("run %s is %s, expected %s", id, run.Status, StatusProcessing)
	}

	now := time.Now().UTC()
	run.Status = status
	run.Result = result
	run.Message = message
	run.CompletedAt = &now
	run.pdf = nil
	return nil
}
