package blogapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchPostsParsesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posts" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "6" {
			t.Fatalf("limit want 6 got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"posts":[{"id":9,"title":"Remote","author":"Thompson P.","date":"2024-12-01T00:00:00.000Z","category":"Cat","likes":3}],"currentPage":1,"totalPages":2,"totalPosts":7}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	page, err := client.FetchPosts(context.Background(), FetchOptions{Page: 1, Limit: 6})
	if err != nil {
		t.Fatalf("fetch posts failed: %v", err)
	}
	if len(page.Posts) != 1 || page.Posts[0].ID != 9 {
		t.Fatalf("unexpected posts: %+v", page.Posts)
	}
	if page.TotalPages != 2 || page.TotalPosts != 7 {
		t.Fatalf("unexpected pagination: %+v", page)
	}
	if got := page.Posts[0].ParsedDate(); got.Year() != 2024 || got.Month() != time.December {
		t.Fatalf("unexpected parsed date: %v", got)
	}
}

func TestFetchPostsBareArrayResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"one"},{"id":2,"title":"two"}]`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	page, err := client.FetchPosts(context.Background(), FetchOptions{Page: 1, Limit: 6})
	if err != nil {
		t.Fatalf("fetch posts failed: %v", err)
	}
	if len(page.Posts) != 2 || page.TotalPosts != 2 || page.TotalPages != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestFetchPostsServerErrorWithoutFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	if _, err := client.FetchPosts(context.Background(), FetchOptions{}); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestFetchPostsDemoFallbackFiltersCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, DemoFallback: true})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	page, err := client.FetchPosts(context.Background(), FetchOptions{Page: 1, Limit: 6, Category: "inspiration"})
	if err != nil {
		t.Fatalf("expected demo fallback, got error: %v", err)
	}
	if len(page.Posts) == 0 {
		t.Fatal("expected demo posts")
	}
	for _, post := range page.Posts {
		if post.Category != "Inspiration" {
			t.Fatalf("category filter leaked: %+v", post)
		}
	}
}

func TestFetchAllPostsReportsTruncation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"posts":[{"id":1}],"currentPage":1,"totalPages":3,"totalPosts":250}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, FetchLimit: 100})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	_, truncated, err := client.FetchAllPosts(context.Background())
	if err != nil {
		t.Fatalf("fetch all failed: %v", err)
	}
	if !truncated {
		t.Fatal("expected truncation flag")
	}
}

func TestFetchPostNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	if _, err := client.FetchPost(context.Background(), 42); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
