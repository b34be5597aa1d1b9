package core

import (
	"strconv"
	"strings"
)

// Revision is an opaque token identifying one stored version of a document.
// The database assigns revisions; the client only re-wraps strings it received.
//
// Ordering is byte-wise lexicographic on the token. The conventional
// "<generation>-<hash>" layout is not interpreted, so "10-a" sorts before "2-b".
type Revision struct {
	token string
}

// NewRevision wraps s without validating it.
func NewRevision(s string) Revision {
	return Revision{token: s}
}

// String returns the token exactly as it was received.
func (r Revision) String() string {
	return r.token
}

// Clone returns an independent Revision holding a copy of the token.
func (r Revision) Clone() Revision {
	return NewRevision(strings.Clone(r.token))
}

// IsZero reports whether the revision carries no token.
func (r Revision) IsZero() bool {
	return r.token == ""
}

// Compare returns -1, 0 or +1 comparing the tokens byte by byte.
func (r Revision) Compare(other Revision) int {
	return strings.Compare(r.token, other.token)
}

// Equal reports whether both revisions hold the same token.
func (r Revision) Equal(other Revision) bool {
	return r.token == other.token
}

// Less reports whether r sorts strictly before other.
func (r Revision) Less(other Revision) bool {
	return r.Compare(other) < 0
}

// LessOrEqual reports whether r sorts before or equal to other.
func (r Revision) LessOrEqual(other Revision) bool {
	return r.Compare(other) <= 0
}

// Generation parses the numeric prefix of a "<n>-<hash>" token.
// It is informational only: Compare never uses it.
func (r Revision) Generation() (int, bool) {
	prefix, _, found := strings.Cut(r.token, "-")
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// MarshalText implements encoding.TextMarshaler.
func (r Revision) MarshalText() ([]byte, error) {
	return []byte(r.token), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Revision) UnmarshalText(text []byte) error {
	r.token = string(text)
	return nil
}
