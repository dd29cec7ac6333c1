package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Iron-Ham/sheetbook/internal/contact"
	sberrors "github.com/Iron-Ham/sheetbook/internal/errors"
)

func TestNew_EmptyURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Error("expected error for empty collection URL")
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("https://example.com/api", WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", client.httpClient.Timeout)
	}
}

func TestHTTPClient_List(t *testing.T) {
	contacts := []contact.Contact{
		{ID: "0", FullName: "Amy", Email: "a@x.com", Phone: "5551234567"},
		{ID: "1", FullName: "Bob", Email: "b@x.com", Phone: "5559876543"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/contacts" {
			t.Errorf("expected /contacts, got %s", r.URL.Path)
		}
		if err := json.NewEncoder(w).Encode(contacts); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer server.Close()

	client, err := New(server.URL + "/contacts")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d contacts, want 2", len(got))
	}
	if got[0] != contacts[0] || got[1] != contacts[1] {
		t.Errorf("contacts not returned verbatim: %+v", got)
	}
}

func TestHTTPClient_List_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.List(context.Background())
	if !sberrors.IsRemote(err) {
		t.Fatalf("expected RemoteError, got %v", err)
	}
	var remote *sberrors.RemoteError
	sberrors.As(err, &remote)
	if remote.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", remote.StatusCode)
	}
}

func TestHTTPClient_List_NetworkError(t *testing.T) {
	// Point at a server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = client.List(context.Background())
	if !sberrors.IsNetwork(err) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestHTTPClient_Create_SendsBatchEnvelope(t *testing.T) {
	var gotBody map[string][]contact.Contact

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	record := contact.Contact{ID: "3", FullName: "Amy", Email: "a@x.com", Phone: "5551234567"}
	if err := client.Create(context.Background(), record); err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, ok := gotBody["data"]
	if !ok {
		t.Fatal("request body missing the data envelope")
	}
	if len(data) != 1 || data[0] != record {
		t.Errorf("envelope = %+v, want single record %+v", data, record)
	}
}

func TestHTTPClient_Update_AddressesRowByID(t *testing.T) {
	var gotPath, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		var env map[string][]contact.Contact
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if len(env["data"]) != 1 {
			t.Errorf("envelope holds %d records, want 1", len(env["data"]))
		}
	}))
	defer server.Close()

	client, err := New(server.URL + "/sheet")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	record := contact.Contact{ID: "7", FullName: "Bob", Phone: "5559876543"}
	if err := client.Update(context.Background(), "7", record); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Errorf("method = %s, want PUT", gotMethod)
	}
	if gotPath != "/sheet/id/7" {
		t.Errorf("path = %s, want /sheet/id/7", gotPath)
	}
}

func TestHTTPClient_Delete(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
	}))
	defer server.Close()

	client, err := New(server.URL + "/sheet")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := client.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if gotMethod != http.MethodDelete {
		t.Errorf("method = %s, want DELETE", gotMethod)
	}
	if gotPath != "/sheet/id/2" {
		t.Errorf("path = %s, want /sheet/id/2", gotPath)
	}
	if len(gotBody) != 0 {
		t.Errorf("delete sent a body: %q", gotBody)
	}
}

func TestHTTPClient_Write_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "row not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(server.URL)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	record := contact.Contact{ID: "9", Phone: "5551234567"}

	if err := client.Update(context.Background(), "9", record); !sberrors.IsRemote(err) {
		t.Errorf("Update: expected RemoteError, got %v", err)
	}
	if err := client.Delete(context.Background(), "9"); !sberrors.IsRemote(err) {
		t.Errorf("Delete: expected RemoteError, got %v", err)
	}
	if err := client.Create(context.Background(), record); !sberrors.IsRemote(err) {
		t.Errorf("Create: expected RemoteError, got %v", err)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"200 OK", 200, false},
		{"201 Created", 201, false},
		{"204 No Content", 204, false},
		{"301 redirect is a failure", 301, true},
		{"400 Bad Request", 400, true},
		{"500 Internal Server Error", 500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus("list contacts", tt.statusCode, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkStatus(%d) error = %v, wantErr %v", tt.statusCode, err, tt.wantErr)
			}
		})
	}
}
