package source

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"labelpress/internal/services"
	"labelpress/internal/services/homebox"
)

func newInventoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		case "/assets/000-042":
			if r.Header.Get("Authorization") != "tok-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]string{{"id": "id-1", "name": "Soldering iron", "assetId": "000-042"}},
				"total": 1,
			})
		case "/items/id-1":
			_, _ = w.Write([]byte(`{
				"id": "id-1",
				"assetId": "000-042",
				"name": "Soldering iron",
				"description": "60W adjustable soldering iron",
				"serialNumber": "SN-1234567890123",
				"modelNumber": "TS100",
				"purchaseFrom": "Shop",
				"purchasePrice": "59.99",
				"purchaseTime": "2024-03-01T00:00:00Z",
				"location": {"name": "Workbench"}
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestRemoteResolvesFullRecord(t *testing.T) {
	server := newInventoryServer(t)
	defer server.Close()

	client := homebox.NewClient(server.URL, 5*time.Second)
	rec, err := NewRemote(client, "printer", "secret", "000-042").Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	want := Record{
		"id":             "id-1",
		"tag":            "000-042",
		"name":           "Soldering iron",
		"description":    "60W adjustable soldering iron",
		"location_name":  "Workbench",
		"model_number":   "TS100",
		"serial_number":  "SN-1234567890123",
		"purchase_from":  "Shop",
		"purchase_price": "59.99",
		"purchase_date":  "2024-03-01",
	}
	for key, value := range want {
		if rec[key] != value {
			t.Fatalf("field %q = %q, want %q", key, rec[key], value)
		}
	}
}

func TestRemoteUnknownTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{"items": []any{}, "total": 0})
		}
	}))
	defer server.Close()

	client := homebox.NewClient(server.URL, 5*time.Second)
	_, err := NewRemote(client, "printer", "secret", "nope").Resolve(context.Background())
	if !errors.Is(err, services.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestRemoteBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := homebox.NewClient(server.URL, 5*time.Second)
	_, err := NewRemote(client, "printer", "wrong", "000-042").Resolve(context.Background())
	if !errors.Is(err, services.ErrAuthentication) {
		t.Fatalf("expected ErrAuthentication, got %v", err)
	}
}
