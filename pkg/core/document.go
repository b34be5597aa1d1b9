// Package core holds the addressing layer of the client: revisions, document
// kinds, the generic document container and the URI builder.
package core

import "encoding/json"

// Document binds an ID and a Revision to decoded content.
// Together ID and Revision identify one exact stored version.
type Document[T any] struct {
	ID       string
	Revision Revision
	Content  T
}

// RawDocument is a document whose content has not been decoded yet.
type RawDocument = Document[json.RawMessage]

// DocumentRef names a document version without its content.
type DocumentRef struct {
	ID       string   `json:"id"`
	Revision Revision `json:"rev"`
}

// Ref returns the reference for d.
func (d Document[T]) Ref() DocumentRef {
	return DocumentRef{ID: d.ID, Revision: d.Revision}
}
