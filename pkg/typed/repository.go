// Package typed decodes raw documents into caller-defined content types.
package typed

import (
	"context"
	"fmt"

	"github.com/aretw0/chaise/pkg/core"
)

// Repository wraps a core.Repository to provide type-safe access.
type Repository[T any] struct {
	repo core.Repository
}

// NewRepository creates a new type-safe wrapper around an existing repository.
func NewRepository[T any](repo core.Repository) *Repository[T] {
	return &Repository[T]{repo: repo}
}

// Save persists doc and stores the new revision in doc.Revision.
// A generated ID is written to doc.ID only once the save succeeded.
func (r *Repository[T]) Save(ctx context.Context, kind core.DocumentKind, doc *core.Document[T]) error {
	raw, err := toRaw(doc)
	if err != nil {
		return err
	}
	rev, err := r.repo.Save(ctx, kind, raw)
	if err != nil {
		return err
	}
	doc.ID = raw.ID
	doc.Revision = rev
	return nil
}

// Get retrieves a document and unmarshals its content.
func (r *Repository[T]) Get(ctx context.Context, kind core.DocumentKind, id string) (*core.Document[T], error) {
	raw, err := r.repo.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return fromRaw[T](raw)
}

// List returns every normal document converted to the typed model.
// Design documents are skipped.
func (r *Repository[T]) List(ctx context.Context) ([]*core.Document[T], error) {
	refs, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*core.Document[T], 0, len(refs))
	for _, ref := range refs {
		if isDesign(ref.ID) {
			continue
		}
		doc, err := r.Get(ctx, core.Normal, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to process document %s: %w", ref.ID, err)
		}
		result = append(result, doc)
	}
	return result, nil
}

// Delete removes doc at its current revision and records the tombstone revision.
func (r *Repository[T]) Delete(ctx context.Context, kind core.DocumentKind, doc *core.Document[T]) error {
	rev, err := r.repo.Delete(ctx, kind, doc.ID, doc.Revision)
	if err != nil {
		return err
	}
	doc.Revision = rev
	return nil
}
