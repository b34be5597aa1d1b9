package platform_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/chaise/internal/couchtest"
	"github.com/aretw0/chaise/internal/platform"
	"github.com/aretw0/chaise/pkg/adapters/couch"
	"github.com/aretw0/chaise/pkg/core"
)

func TestInit(t *testing.T) {
	t.Run("AutoInit creates the database", func(t *testing.T) {
		srv := couchtest.New(t, "notes")
		srv.DropDatabase()

		repo, err := platform.Init(srv.URL, platform.WithDatabase("notes"), platform.WithAutoInit(true))
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if _, ok := repo.(*couch.Repository); !ok {
			t.Fatalf("Expected couch repository, got %T", repo)
		}
		if !srv.DatabaseExists() {
			t.Errorf("database was not created")
		}
	})

	t.Run("Missing database fails without AutoInit", func(t *testing.T) {
		srv := couchtest.New(t, "notes")
		srv.DropDatabase()

		_, err := platform.Init(srv.URL, platform.WithDatabase("notes"))
		if !errors.Is(err, core.ErrDatabaseNotFound) {
			t.Fatalf("expected ErrDatabaseNotFound, got %v", err)
		}
	})

	t.Run("Unknown adapter", func(t *testing.T) {
		_, err := platform.Init("http://localhost", platform.WithAdapter("s3"))
		if err == nil {
			t.Fatal("expected error for unknown adapter")
		}
	})

	t.Run("Invalid config", func(t *testing.T) {
		_, err := platform.Init("not a url", platform.WithDatabase("notes"))
		if err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestNew_ReadOnly(t *testing.T) {
	srv := couchtest.New(t, "notes")

	svc, err := platform.New(srv.URL, platform.WithDatabase("notes"), platform.WithReadOnly(true))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = svc.SaveDocument(context.Background(), core.Normal, core.RawDocument{ID: "x"})
	if !errors.Is(err, core.ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
}

func TestConnect_NoRequests(t *testing.T) {
	srv := couchtest.New(t, "notes")

	if _, err := platform.Connect(srv.URL, platform.WithDatabase("notes")); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if n := len(srv.Requests()); n != 0 {
		t.Errorf("Connect made %d requests, want 0", n)
	}
}

func TestWithRepository(t *testing.T) {
	srv := couchtest.New(t, "notes")
	injected, err := couch.NewRepository(couch.Config{BaseURL: srv.URL, Database: "notes"})
	if err != nil {
		t.Fatal(err)
	}

	repo, err := platform.Init("ignored", platform.WithRepository(injected))
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if repo != injected {
		t.Errorf("injected repository was not returned")
	}
}
