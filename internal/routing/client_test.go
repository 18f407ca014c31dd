package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NextRouter/routingFlow/internal/model"
)

func TestClientFetchSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"config": {"lan": "eth2", "wan0": "eth0", "wan1": "eth1"},
			"mappings": {"10.0.0.2": "wan1", "10.0.0.3": "wan0"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	records, err := client.FetchSnapshot(context.Background())
	if err != nil {
		t.Fatalf("FetchSnapshot failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	byIP := make(map[string]model.Role)
	for _, rec := range records {
		byIP[rec.IP] = rec.Role
	}
	if byIP["10.0.0.2"] != model.RoleWAN1 {
		t.Errorf("Expected wan1 for 10.0.0.2, got %s", byIP["10.0.0.2"])
	}
	if byIP["10.0.0.3"] != model.RoleWAN0 {
		t.Errorf("Expected wan0 for 10.0.0.3, got %s", byIP["10.0.0.3"])
	}
}

func TestClientFetchSnapshotServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchSnapshot(context.Background()); err == nil {
		t.Errorf("Expected error on 500 response, got nil")
	}
}

func TestClientFetchSnapshotMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := client.FetchSnapshot(context.Background()); err == nil {
		t.Errorf("Expected error on malformed body, got nil")
	}
}

func TestClientFetchSnapshotUnreachable(t *testing.T) {
	// Port 0 is never listening.
	client := NewClient("http://127.0.0.1:0/status", 200*time.Millisecond)
	if _, err := client.FetchSnapshot(context.Background()); err == nil {
		t.Errorf("Expected error for unreachable endpoint, got nil")
	}
}

func TestClientFetchSnapshotTimeout(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	client := NewClient(server.URL, 50*time.Millisecond)
	start := time.Now()
	_, err := client.FetchSnapshot(context.Background())
	if err == nil {
		t.Fatalf("Expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Fetch did not respect timeout, took %v", elapsed)
	}
}
