package jobsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cv-match/internal/domain/job"
)

const searchFixture = `{
	"hits": [
		{
			"id": "ad-1",
			"headline": "Backend developer",
			"description": {"text": "C# and Docker work"},
			"employer": {"name": "Acme"},
			"workplace_address": {"municipality": "Stockholm"},
			"publication_date": "2024-03-01T08:00:00",
			"application_deadline": "2024-04-01"
		},
		{
			"id": "ad-2",
			"headline": "Data engineer",
			"description": {"text": "Python pipelines"},
			"employer": {"name": "Globex"},
			"workplace_address": {"municipality": "Uppsala"},
			"publication_date": "2024-03-02",
			"application_deadline": ""
		}
	]
}`

func TestClient_Search(t *testing.T) {
	var gotPath, gotQuery, gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	got, err := c.Search(context.Background(), "developer", 30)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/search" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotQuery != "developer" || gotLimit != "30" {
		t.Fatalf("expected q=developer limit=30, got q=%s limit=%s", gotQuery, gotLimit)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}
	if got[0].ID != "ad-1" || got[0].Employer != "Acme" || got[0].Location != "Stockholm" {
		t.Fatalf("unexpected first posting: %+v", got[0])
	}
	if got[0].PublishedAt.IsZero() {
		t.Fatalf("expected parsed publication date")
	}
	if got[1].Deadline != job.DeadlineNotSpecified {
		t.Fatalf("expected deadline sentinel, got %q", got[1].Deadline)
	}
}

func TestClient_NonOKStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	_, err := c.Search(context.Background(), "developer", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_MalformedPayloadIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	_, err := c.Search(context.Background(), "developer", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Search(context.Background(), "developer", 10)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestClient_EmptyHitsIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hits": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second, nil)
	got, err := c.Search(context.Background(), "developer", 10)
	if err != nil {
		t.Fatalf("zero hits must be success, got err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected 0 postings, got %d", len(got))
	}
}
