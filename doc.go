// Package chaise is the Composition Root for the chaise client.
//
// It connects the addressing core (revisions, document kinds, URI building)
// with the HTTP adapter that talks to a CouchDB-style document database.
//
// Features:
//
//   - **Opaque Revisions**: tokens are compared byte-wise, never parsed.
//   - **Design Documents**: DocumentKind selects the "_design" path segment.
//   - **Typed Retrieval**: generic Document[T] with NewTypedService / NewTypedRepository.
//   - **Extensible**: any core.Repository can be injected with WithRepository.
//
// Usage:
//
//	svc, err := chaise.New("http://127.0.0.1:5984",
//		chaise.WithDatabase("notes"),
//		chaise.WithLogger(logger),
//	)
//
//	notes := chaise.NewTypedService[Note](svc)
//	doc, err := notes.Get(ctx, chaise.Normal, "my-note")
package chaise
