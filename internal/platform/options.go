package platform

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/chaise/pkg/core"
)

// options holds the internal configuration for the chaise client.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	httpClient *http.Client
	config     map[string]interface{}
}

// Option defines a functional option for configuring the client.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		adapter:    "couch",
		config:     make(map[string]interface{}),
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithDatabase sets the database every document operation targets.
func WithDatabase(name string) Option {
	return func(o *options) {
		o.config["database"] = name
	}
}

// WithCredentials enables HTTP basic authentication.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.config["username"] = username
		o.config["password"] = password
	}
}

// WithTimeout bounds each request. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.config["timeout"] = d
	}
}

// WithHTTPClient injects the *http.Client used for every request.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithAutoInit creates the database during initialization when it is missing.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist makes initialization fail when the database is missing,
// even if WithAutoInit is set.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithReadOnly enables read-only mode.
// In this mode:
// 1. Save and Delete return ErrReadOnly without contacting the server.
// 2. Initialization never creates the database.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.config["read_only"] = enabled
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default HTTP adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name.
// Defaults to "couch".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}
