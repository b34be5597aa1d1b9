package chaise

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/aretw0/chaise/internal/platform"
	"github.com/aretw0/chaise/pkg/core"
)

// --- Types ---

// Revision is a public alias for the revision token.
type Revision = core.Revision

// DocumentKind is a public alias for the document kind.
type DocumentKind = core.DocumentKind

// Document is a public alias for the generic document container.
type Document[T any] = core.Document[T]

// RawDocument is a public alias for an undecoded document.
type RawDocument = core.RawDocument

// Document kinds.
const (
	Normal = core.Normal
	Design = core.Design
)

// NewRevision wraps a revision token received from the server.
func NewRevision(s string) Revision {
	return core.NewRevision(s)
}

// BuildURI composes the address of a document from a server base address.
func BuildURI(base *url.URL, db, id string, kind DocumentKind) *url.URL {
	return core.BuildURI(base, db, id, kind)
}

// --- Configuration ---

// Option defines a functional option for configuring the client.
type Option = platform.Option

// WithDatabase sets the database every document operation targets.
func WithDatabase(name string) Option {
	return platform.WithDatabase(name)
}

// WithCredentials enables HTTP basic authentication.
func WithCredentials(username, password string) Option {
	return platform.WithCredentials(username, password)
}

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return platform.WithTimeout(d)
}

// WithHTTPClient injects the *http.Client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// WithAutoInit creates the database when it is missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the database must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly rejects writes with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// --- Factory ---

// New creates a Service and checks (or creates) the database.
func New(uri string, opts ...Option) (*core.Service, error) {
	return platform.New(uri, opts...)
}

// Connect creates a Service without contacting the server.
func Connect(uri string, opts ...Option) (*core.Service, error) {
	return platform.Connect(uri, opts...)
}

// Init initializes a repository explicitly.
func Init(uri string, opts ...Option) (core.Repository, error) {
	return platform.Init(uri, opts...)
}
