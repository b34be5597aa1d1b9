package core

import (
	"net/url"
	"strings"
)

// BuildURI returns the address of a document: base with its path replaced by
// /db[/_design]/id. Scheme, user info, host, query and fragment come from base.
//
// base is never modified. db and id are used as-is; escaping is left to url.URL
// when the result is rendered.
func BuildURI(base *url.URL, db, id string, kind DocumentKind) *url.URL {
	segments := make([]string, 0, 3)
	segments = append(segments, db)
	if c, ok := kind.PathComponent(); ok {
		segments = append(segments, c)
	}
	segments = append(segments, id)
	return withPath(base, segments)
}

// BuildDatabaseURI returns the address of the database itself (/db).
func BuildDatabaseURI(base *url.URL, db string) *url.URL {
	return withPath(base, []string{db})
}

func withPath(base *url.URL, segments []string) *url.URL {
	u := *base
	u.Path = "/" + strings.Join(segments, "/")
	u.RawPath = ""
	return &u
}
