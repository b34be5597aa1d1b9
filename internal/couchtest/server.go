// Package couchtest provides an in-memory HTTP server speaking the subset of
// the CouchDB document API used by chaise.
package couchtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
)

// Server is a fake database server bound to one database name.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	db       string
	exists   bool
	docs     map[string]map[string]any // key: path below /db, e.g. "doc1" or "_design/views"
	gens     map[string]int
	seq      int
	requests []string
	auth     []string
}

// New starts a server holding an existing, empty database named db.
// The server is closed when the test ends.
func New(t testing.TB, db string) *Server {
	t.Helper()
	s := Start(db)
	t.Cleanup(s.Close)
	return s
}

// Start is New for callers without a testing.TB; they must call Close.
func Start(db string) *Server {
	s := &Server{
		db:     db,
		exists: true,
		docs:   make(map[string]map[string]any),
		gens:   make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// DropDatabase makes the database disappear.
func (s *Server) DropDatabase() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exists = false
	s.docs = make(map[string]map[string]any)
}

// DatabaseExists reports whether the database has been created.
func (s *Server) DatabaseExists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exists
}

// Seed stores doc under key and returns its revision.
func (s *Server) Seed(key string, doc map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(key, doc)
}

// Requests returns "METHOD /path" for every request received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Authorizations returns the Authorization header of every request.
func (s *Server) Authorizations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.auth...)
}

func (s *Server) store(key string, doc map[string]any) string {
	s.seq++
	s.gens[key]++
	rev := fmt.Sprintf("%d-%08x", s.gens[key], s.seq)
	doc["_id"] = key
	doc["_rev"] = rev
	s.docs[key] = doc
	return rev
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := r.URL.Path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	s.requests = append(s.requests, r.Method+" "+target)
	s.auth = append(s.auth, r.Header.Get("Authorization"))

	dbPath := "/" + s.db
	if r.URL.Path == dbPath {
		s.handleDatabase(w, r)
		return
	}
	if !strings.HasPrefix(r.URL.Path, dbPath+"/") || !s.exists {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "Database does not exist."})
		return
	}

	key := strings.TrimPrefix(r.URL.Path, dbPath+"/")
	if key == "_all_docs" && r.Method == http.MethodGet {
		s.handleAllDocs(w)
		return
	}

	switch r.Method {
	case http.MethodGet, http.MethodHead:
		doc, ok := s.docs[key]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "missing"})
			return
		}
		w.Header().Set("ETag", fmt.Sprintf("%q", doc["_rev"]))
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusOK)
			return
		}
		writeJSON(w, http.StatusOK, doc)

	case http.MethodPut:
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad_request", "reason": "invalid UTF-8 JSON"})
			return
		}
		if id, _ := body["_id"].(string); id != key {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "bad_request", "reason": "_id does not match path"})
			return
		}
		current, exists := s.docs[key]
		rev, _ := body["_rev"].(string)
		if (exists && current["_rev"] != rev) || (!exists && rev != "") {
			writeJSON(w, http.StatusConflict, map[string]any{"error": "conflict", "reason": "Document update conflict."})
			return
		}
		newRev := s.store(key, body)
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": key, "rev": newRev})

	case http.MethodDelete:
		current, exists := s.docs[key]
		if !exists {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "missing"})
			return
		}
		if current["_rev"] != r.URL.Query().Get("rev") {
			writeJSON(w, http.StatusConflict, map[string]any{"error": "conflict", "reason": "Document update conflict."})
			return
		}
		delete(s.docs, key)
		s.seq++
		s.gens[key]++
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": key, "rev": fmt.Sprintf("%d-%08x", s.gens[key], s.seq)})

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method_not_allowed"})
	}
}

func (s *Server) handleDatabase(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodHead, http.MethodGet:
		if !s.exists {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "not_found", "reason": "Database does not exist."})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"db_name": s.db, "doc_count": len(s.docs)})
	case http.MethodPut:
		if s.exists {
			writeJSON(w, http.StatusPreconditionFailed, map[string]any{"error": "file_exists", "reason": "The database could not be created, the file already exists."})
			return
		}
		s.exists = true
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method_not_allowed"})
	}
}

func (s *Server) handleAllDocs(w http.ResponseWriter) {
	keys := make([]string, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, map[string]any{
			"id":    k,
			"key":   k,
			"value": map[string]any{"rev": s.docs[k]["_rev"]},
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"total_rows": len(rows), "offset": 0, "rows": rows})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
