package couch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aretw0/chaise/pkg/core"
)

// StatusError is returned for any non-success HTTP response.
// It unwraps to the matching core sentinel (ErrNotFound, ErrConflict, ...) when one exists.
type StatusError struct {
	StatusCode int
	Method     string
	URL        string
	Kind       string // server "error" field, e.g. "conflict"
	Reason     string // server "reason" field
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
	if e.Kind != "" {
		msg += ": " + e.Kind
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap maps the status code onto the core error taxonomy.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return core.ErrNotFound
	case http.StatusConflict, http.StatusPreconditionFailed:
		return core.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return core.ErrUnauthorized
	default:
		return nil
	}
}

func newStatusError(resp *http.Response, method, redactedURL string) *StatusError {
	e := &StatusError{
		StatusCode: resp.StatusCode,
		Method:     method,
		URL:        redactedURL,
	}

	// HEAD responses carry no body.
	var body struct {
		Error  string `json:"error"`
		Reason string `json:"reason"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 && json.Unmarshal(data, &body) == nil {
		e.Kind = body.Error
		e.Reason = body.Reason
	}
	return e
}
