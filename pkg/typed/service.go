package typed

import (
	"context"

	"github.com/aretw0/chaise/pkg/core"
)

// Service wraps a core.Service to provide type-safe access on top of its
// validation, read-only enforcement and logging.
type Service[T any] struct {
	svc *core.Service
}

// NewService creates a new typed service wrapper.
func NewService[T any](svc *core.Service) *Service[T] {
	return &Service[T]{svc: svc}
}

// Save persists doc and stores the new revision in doc.Revision.
// A generated ID is written to doc.ID only once the save succeeded.
func (s *Service[T]) Save(ctx context.Context, kind core.DocumentKind, doc *core.Document[T]) error {
	raw, err := toRaw(doc)
	if err != nil {
		return err
	}
	rev, err := s.svc.SaveDocument(ctx, kind, raw)
	if err != nil {
		return err
	}
	doc.ID = raw.ID
	doc.Revision = rev
	return nil
}

// Get retrieves a document via Service.
func (s *Service[T]) Get(ctx context.Context, kind core.DocumentKind, id string) (*core.Document[T], error) {
	raw, err := s.svc.GetDocument(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return fromRaw[T](raw)
}

// List retrieves all normal documents via Service.
func (s *Service[T]) List(ctx context.Context) ([]*core.Document[T], error) {
	refs, err := s.svc.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*core.Document[T], 0, len(refs))
	for _, ref := range refs {
		if isDesign(ref.ID) {
			continue
		}
		doc, err := s.Get(ctx, core.Normal, ref.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, nil
}

// Delete removes doc via Service and records the tombstone revision.
func (s *Service[T]) Delete(ctx context.Context, kind core.DocumentKind, doc *core.Document[T]) error {
	rev, err := s.svc.DeleteDocument(ctx, kind, doc.ID, doc.Revision)
	if err != nil {
		return err
	}
	doc.Revision = rev
	return nil
}
