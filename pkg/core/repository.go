package core

import "context"

// Repository defines the contract for reaching stored documents.
// Implementations translate each call into a request against the address
// produced by BuildURI.
type Repository interface {
	// Initialize ensures the database is reachable (and created, if configured).
	Initialize(ctx context.Context) error

	// Get retrieves the current version of a document.
	Get(ctx context.Context, kind DocumentKind, id string) (RawDocument, error)

	// Head returns the current revision of a document without its body.
	Head(ctx context.Context, kind DocumentKind, id string) (Revision, error)

	// Save writes doc. A non-zero doc.Revision makes the write conditional on it.
	// It returns the revision assigned by the database.
	Save(ctx context.Context, kind DocumentKind, doc RawDocument) (Revision, error)

	// Delete removes the document at rev and returns the deletion revision.
	Delete(ctx context.Context, kind DocumentKind, id string, rev Revision) (Revision, error)

	// List returns references to every document in the database.
	List(ctx context.Context) ([]DocumentRef, error)
}
