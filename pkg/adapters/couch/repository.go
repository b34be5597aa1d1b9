// Package couch implements core.Repository over HTTP using CouchDB conventions.
package couch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/aretw0/chaise/pkg/core"
)

// Repository implements core.Repository against a single database.
type Repository struct {
	base   *url.URL
	client *http.Client
	logger *slog.Logger
	config Config

	mu         sync.RWMutex
	requests   int
	lastStatus int
}

var _ core.Repository = (*Repository)(nil)

// NewRepository validates config and creates a repository for config.Database.
// No request is made until Initialize or the first operation.
func NewRepository(config Config) (*Repository, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid couch config: %w", err)
	}
	base, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if config.Username != "" {
		base.User = url.UserPassword(config.Username, config.Password)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Repository{
		base:   base,
		client: config.httpClient(),
		logger: logger,
		config: config,
	}, nil
}

// Database returns the database name this repository targets.
func (r *Repository) Database() string {
	return r.config.Database
}

// DocumentURI returns the address of a document in this repository's database.
func (r *Repository) DocumentURI(kind core.DocumentKind, id string) *url.URL {
	return core.BuildURI(r.base, r.config.Database, id, kind)
}

// Initialize checks that the database exists, creating it when AutoInit is set.
//
// Workflow:
//  1. HEAD /db.
//  2. On 404: fail if MustExist or ReadOnly, otherwise PUT /db when AutoInit.
//  3. A 412 on creation means another client won the race; it is not an error.
func (r *Repository) Initialize(ctx context.Context) error {
	dbURI := core.BuildDatabaseURI(r.base, r.config.Database)

	resp, err := r.do(ctx, http.MethodHead, dbURI, nil, "")
	if err == nil {
		resp.Body.Close()
		return nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("failed to check database %q: %w", r.config.Database, err)
	}

	if r.config.MustExist || r.config.ReadOnly || !r.config.AutoInit {
		return fmt.Errorf("%w: %s", core.ErrDatabaseNotFound, r.config.Database)
	}

	resp, err = r.do(ctx, http.MethodPut, dbURI, nil, "")
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusPreconditionFailed {
			return nil
		}
		return fmt.Errorf("failed to create database %q: %w", r.config.Database, err)
	}
	resp.Body.Close()
	r.logger.Info("database created", "db", r.config.Database)
	return nil
}

// Get fetches a document. The revision comes from the "_rev" field, or from the
// ETag header when the body has none.
func (r *Repository) Get(ctx context.Context, kind core.DocumentKind, id string) (core.RawDocument, error) {
	resp, err := r.do(ctx, http.MethodGet, r.DocumentURI(kind, id), nil, "")
	if err != nil {
		return core.RawDocument{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.RawDocument{}, fmt.Errorf("failed to read document %q: %w", id, err)
	}

	var meta struct {
		Rev core.Revision `json:"_rev"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return core.RawDocument{}, fmt.Errorf("invalid document %q: %w", id, err)
	}
	rev := meta.Rev
	if rev.IsZero() {
		rev = revisionFromETag(resp.Header)
	}

	return core.RawDocument{
		ID:       id,
		Revision: rev,
		Content:  json.RawMessage(data),
	}, nil
}

// Head returns the current revision of a document from its ETag.
func (r *Repository) Head(ctx context.Context, kind core.DocumentKind, id string) (core.Revision, error) {
	resp, err := r.do(ctx, http.MethodHead, r.DocumentURI(kind, id), nil, "")
	if err != nil {
		return core.Revision{}, err
	}
	resp.Body.Close()
	return revisionFromETag(resp.Header), nil
}

// Save writes a document with PUT. "_id" and "_rev" are set in the body from
// doc; a zero doc.Revision creates the document.
func (r *Repository) Save(ctx context.Context, kind core.DocumentKind, doc core.RawDocument) (core.Revision, error) {
	if r.config.ReadOnly {
		return core.Revision{}, core.ErrReadOnly
	}
	if doc.ID == "" {
		return core.Revision{}, core.ErrEmptyID
	}

	body, err := encodeBody(kind, doc)
	if err != nil {
		return core.Revision{}, err
	}

	resp, err := r.do(ctx, http.MethodPut, r.DocumentURI(kind, doc.ID), body, "application/json")
	if err != nil {
		return core.Revision{}, err
	}
	defer resp.Body.Close()
	return decodeWriteResult(resp.Body)
}

// Delete removes a document at rev and returns the tombstone revision.
func (r *Repository) Delete(ctx context.Context, kind core.DocumentKind, id string, rev core.Revision) (core.Revision, error) {
	if r.config.ReadOnly {
		return core.Revision{}, core.ErrReadOnly
	}

	u := r.DocumentURI(kind, id)
	q := u.Query()
	q.Set("rev", rev.String())
	u.RawQuery = q.Encode()

	resp, err := r.do(ctx, http.MethodDelete, u, nil, "")
	if err != nil {
		return core.Revision{}, err
	}
	defer resp.Body.Close()
	return decodeWriteResult(resp.Body)
}

// List reads /db/_all_docs.
func (r *Repository) List(ctx context.Context) ([]core.DocumentRef, error) {
	resp, err := r.do(ctx, http.MethodGet, core.BuildURI(r.base, r.config.Database, "_all_docs", core.Normal), nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Rows []struct {
			ID    string `json:"id"`
			Value struct {
				Rev core.Revision `json:"rev"`
			} `json:"value"`
		} `json:"rows"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid _all_docs response: %w", err)
	}

	refs := make([]core.DocumentRef, 0, len(payload.Rows))
	for _, row := range payload.Rows {
		refs = append(refs, core.DocumentRef{ID: row.ID, Revision: row.Value.Rev})
	}
	return refs, nil
}

// do sends a request and converts any status >= 400 into a *StatusError.
// On success the caller owns resp.Body.
func (r *Repository) do(ctx context.Context, method string, u *url.URL, body []byte, contentType string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	r.logger.Debug("couch request", "method", method, "url", u.Redacted())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, u.Redacted(), err)
	}
	r.record(resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		return nil, newStatusError(resp, method, u.Redacted())
	}
	return resp, nil
}

func (r *Repository) record(status int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests++
	r.lastStatus = status
}

// encodeBody merges "_id" and "_rev" into the JSON object held by doc.Content.
func encodeBody(kind core.DocumentKind, doc core.RawDocument) ([]byte, error) {
	var fields map[string]json.RawMessage
	if len(bytes.TrimSpace(doc.Content)) > 0 {
		if err := json.Unmarshal(doc.Content, &fields); err != nil {
			return nil, fmt.Errorf("document %q content must be a JSON object: %w", doc.ID, err)
		}
	}
	// Empty content and a JSON null both mean an empty body.
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}

	fullID := doc.ID
	if c, ok := kind.PathComponent(); ok {
		fullID = c + "/" + doc.ID
	}
	idJSON, err := json.Marshal(fullID)
	if err != nil {
		return nil, err
	}
	fields["_id"] = idJSON

	delete(fields, "_rev")
	if !doc.Revision.IsZero() {
		revJSON, err := json.Marshal(doc.Revision)
		if err != nil {
			return nil, err
		}
		fields["_rev"] = revJSON
	}

	return json.Marshal(fields)
}

func decodeWriteResult(body io.Reader) (core.Revision, error) {
	var result struct {
		OK  bool          `json:"ok"`
		ID  string        `json:"id"`
		Rev core.Revision `json:"rev"`
	}
	if err := json.NewDecoder(body).Decode(&result); err != nil {
		return core.Revision{}, fmt.Errorf("invalid write response: %w", err)
	}
	if !result.OK {
		return core.Revision{}, fmt.Errorf("write of %q not acknowledged", result.ID)
	}
	return result.Rev, nil
}

func revisionFromETag(h http.Header) core.Revision {
	etag := strings.TrimPrefix(h.Get("ETag"), "W/")
	return core.NewRevision(strings.Trim(etag, `"`))
}
