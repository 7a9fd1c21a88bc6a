package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"a","title":"First","size":"1 GB","seeds":10,"leeches":2,"magnet":"magnet:?xt=urn:btih:A"},
			{"id":"b","title":"Second","size":"500 MB","seeds":5,"leeches":1,"magnet":"magnet:?xt=urn:btih:B","verified":true}
		]`))
	}))
	defer server.Close()

	fetcher := NewFetcher(DefaultFetchTimeout)
	records, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "a" || records[1].ID != "b" {
		t.Errorf("Expected document order preserved, got %s, %s", records[0].ID, records[1].ID)
	}
	if records[0].Verified {
		t.Error("Expected verified to default to false")
	}
	if !records[1].Verified {
		t.Error("Expected second record to be verified")
	}
}

func TestFetch_EmptyArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	fetcher := NewFetcher(DefaultFetchTimeout)
	records, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty catalog, got %d records", len(records))
	}
}

func TestFetch_InvalidShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"object root", `{"uploads": []}`},
		{"scalar root", `42`},
		{"string root", `"uploads"`},
		{"malformed json", `[{"id": "a"`},
	}

	for _, test := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(test.body))
		}))

		fetcher := NewFetcher(DefaultFetchTimeout)
		_, err := fetcher.Fetch(context.Background(), server.URL)
		server.Close()

		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("%s: expected ErrInvalidShape, got %v", test.name, err)
		}
	}
}

func TestFetch_RecordsWithoutRequiredFieldsFlowThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"size":"1 GB"}, {"id":"b","title":"Named"}]`))
	}))
	defer server.Close()

	fetcher := NewFetcher(DefaultFetchTimeout)
	records, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "" || records[0].Title != "" {
		t.Errorf("Expected first record to keep empty display fields, got %+v", records[0])
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(DefaultFetchTimeout)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable for 404, got %v", err)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // close immediately so the port refuses connections

	fetcher := NewFetcher(DefaultFetchTimeout)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable for refused connection, got %v", err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	fetcher := NewFetcher(50 * time.Millisecond)
	_, err := fetcher.Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable for timeout, got %v", err)
	}
}
