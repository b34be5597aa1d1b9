package core

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Service handles the business rules for document access.
type Service struct {
	repo     Repository
	logger   *slog.Logger
	readOnly bool

	mu       sync.RWMutex
	requests int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceLogger sets the logger used by the service.
func WithServiceLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithServiceReadOnly rejects every write with ErrReadOnly.
func WithServiceReadOnly(enabled bool) ServiceOption {
	return func(s *Service) {
		s.readOnly = enabled
	}
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Repository returns the underlying repository.
func (s *Service) Repository() Repository {
	return s.repo
}

// GetDocument retrieves a document.
func (s *Service) GetDocument(ctx context.Context, kind DocumentKind, id string) (RawDocument, error) {
	if id == "" {
		return RawDocument{}, ErrEmptyID
	}
	s.track()
	doc, err := s.repo.Get(ctx, kind, id)
	if err != nil {
		return RawDocument{}, fmt.Errorf("get %s %q: %w", kind, id, err)
	}
	s.logger.Debug("document fetched", "id", id, "kind", kind.String(), "rev", doc.Revision.String())
	return doc, nil
}

// CurrentRevision returns the latest revision of a document.
func (s *Service) CurrentRevision(ctx context.Context, kind DocumentKind, id string) (Revision, error) {
	if id == "" {
		return Revision{}, ErrEmptyID
	}
	s.track()
	rev, err := s.repo.Head(ctx, kind, id)
	if err != nil {
		return Revision{}, fmt.Errorf("head %s %q: %w", kind, id, err)
	}
	return rev, nil
}

// SaveDocument writes a document and returns its new revision.
func (s *Service) SaveDocument(ctx context.Context, kind DocumentKind, doc RawDocument) (Revision, error) {
	if s.readOnly {
		return Revision{}, ErrReadOnly
	}
	if doc.ID == "" {
		return Revision{}, ErrEmptyID
	}
	s.track()
	rev, err := s.repo.Save(ctx, kind, doc)
	if err != nil {
		return Revision{}, fmt.Errorf("save %s %q: %w", kind, doc.ID, err)
	}
	s.logger.Info("document saved", "id", doc.ID, "kind", kind.String(), "rev", rev.String())
	return rev, nil
}

// DeleteDocument removes a document at the given revision.
func (s *Service) DeleteDocument(ctx context.Context, kind DocumentKind, id string, rev Revision) (Revision, error) {
	if s.readOnly {
		return Revision{}, ErrReadOnly
	}
	if id == "" {
		return Revision{}, ErrEmptyID
	}
	s.track()
	tombstone, err := s.repo.Delete(ctx, kind, id, rev)
	if err != nil {
		return Revision{}, fmt.Errorf("delete %s %q: %w", kind, id, err)
	}
	s.logger.Info("document deleted", "id", id, "kind", kind.String(), "rev", tombstone.String())
	return tombstone, nil
}

// ListDocuments returns references to all documents.
func (s *Service) ListDocuments(ctx context.Context) ([]DocumentRef, error) {
	s.track()
	refs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return refs, nil
}

func (s *Service) track() {
	s.mu.Lock()
	s.requests++
	s.mu.Unlock()
}
