package couch

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultTimeout bounds a single request when no HTTPClient is supplied.
const DefaultTimeout = 30 * time.Second

// Config holds the configuration for the HTTP-backed repository.
type Config struct {
	BaseURL   string // Server address, e.g. "http://127.0.0.1:5984". Its path is ignored.
	Database  string
	Username  string
	Password  string
	Timeout   time.Duration
	AutoInit  bool // Create the database when it does not exist.
	MustExist bool // Fail Initialize when the database does not exist, even with AutoInit.
	ReadOnly  bool
	Logger    *slog.Logger

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Validate checks that the configuration can address a database.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Database, validation.Required, validation.Length(1, 238)),
		validation.Field(&c.Password, validation.When(c.Username == "", validation.Empty.Error("requires a username"))),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
