package workflow

import (
	"context"
	"log/slog"
)

// Service ties the run store to the router: uploads create runs, an explicit
// process call drives each run through its lifecycle.
type Service struct {
	store  *Store
	router *Router
	logger *slog.Logger
}

// NewService creates a workflow service.
func NewService(store *Store, router *Router, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, router: router, logger: logger}
}

// Upload registers a document for later processing.
func (s *Service) Upload(category Category, docType DocType, pdf []byte) (Run, error) {
	if !Supported(category, docType) {
		return Run{}, ErrUnsupported
	}
	run := s.store.Create(category, docType, pdf)
	s.logger.Info("document uploaded",
		"run", run.ID,
		"category", category,
		"doc_type", docType,
		"bytes", len(pdf))
	return run, nil
}

// Get returns a snapshot of a run.
func (s *Service) Get(id string) (Run, bool) {
	return s.store.Get(id)
}

// Process drives an uploaded run to done or failed and returns the final
// snapshot. Failures carry only the generic message; the underlying error
// is logged and never surfaces to the caller.
func (s *Service) Process(ctx context.Context, id string) (Run, error) {
	pdf, err := s.store.Start(id)
	if err != nil {
		return Run{}, err
	}

	run, _ := s.store.Get(id)
	result, err := s.router.Process(ctx, run.Category, run.DocType, pdf, func(done, total int) {
		s.store.SetProgress(id, done, total)
	})
	if err != nil {
		s.logger.Error("run failed",
			"run", id,
			"category", run.Category,
			"doc_type", run.DocType,
			"error", err)
		if ferr := s.store.Fail(id, GenericFailureMessage); ferr != nil {
			return Run{}, ferr
		}
		final, _ := s.store.Get(id)
		return final, nil
	}

	if err := s.store.Complete(id, result); err != nil {
		return Run{}, err
	}
	s.logger.Info("run completed", "run", id, "chars", len(result))

	final, _ := s.store.Get(id)
	return final, nil
}
