package core

import "fmt"

// DocumentKind selects how a document is addressed inside a database.
type DocumentKind int

const (
	// Normal documents live directly under the database path.
	Normal DocumentKind = iota
	// Design documents live under the "_design" segment.
	Design
)

const designSegment = "_design"

// PathComponent returns the extra path segment contributed by the kind, if any.
func (k DocumentKind) PathComponent() (string, bool) {
	switch k {
	case Design:
		return designSegment, true
	default:
		return "", false
	}
}

func (k DocumentKind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Design:
		return "design"
	default:
		return fmt.Sprintf("DocumentKind(%d)", int(k))
	}
}

// ParseDocumentKind maps "normal" or "design" to a DocumentKind.
func ParseDocumentKind(s string) (DocumentKind, error) {
	switch s {
	case "", "normal":
		return Normal, nil
	case "design":
		return Design, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
