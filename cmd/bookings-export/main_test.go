package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunWritesExport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trips/bookings" || r.Header.Get("Authorization") != "Bearer tok" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"bookings":[
			{"bookingCode":"A","passengerEmail":"a@x.com","tripDetails":{"pickup":{"city":"Lagos"},"dropoff":{"city":"Abuja"}}},
			{"bookingCode":"B","passengerEmail":"b@x.com","tripDetails":{"pickup":{"city":"Enugu"},"dropoff":{"city":"Owerri"}}}
		]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	path, n, err := run(context.Background(), options{
		backend: srv.URL,
		token:   "tok",
		search:  "b@x",
		outDir:  filepath.Join(dir, "out"),
		prefix:  "bookings-export",
		timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if n != 1 || !strings.HasPrefix(filepath.Base(path), "bookings-export-") {
		t.Fatalf("unexpected result %s %d", path, n)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc struct {
		Bookings []struct {
			BookingCode string `json:"bookingCode"`
		} `json:"bookings"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(doc.Bookings) != 1 || doc.Bookings[0].BookingCode != "B" {
		t.Fatalf("unexpected export %+v", doc)
	}
}

func TestRunNeedsToken(t *testing.T) {
	if _, _, err := run(context.Background(), options{outDir: t.TempDir()}); err == nil {
		t.Fatalf("expected error without token")
	}
}
