package service

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"crust-connect/internal/client"
	"crust-connect/internal/config"
	"crust-connect/internal/model"
)

// fakeBackend is an httptest server speaking the backend's envelope
// protocol, recording every call it receives.
type fakeBackend struct {
	mux *http.ServeMux
	srv *httptest.Server

	mu    sync.Mutex
	calls []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	f := &fakeBackend{mux: http.NewServeMux()}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeBackend) handle(pattern string, h http.HandlerFunc) {
	f.mux.HandleFunc(pattern, h)
}

func (f *fakeBackend) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeBackend) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func writeData(w http.ResponseWriter, data any) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"timestamp": "2025-06-01T12:00:00",
		"status":    200,
		"message":   "Success",
		"data":      data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"timestamp": "2025-06-01T12:00:00",
		"status":    status,
		"message":   message,
		"data":      nil,
	})
}

// memStorage is an in-memory CredentialStorage / client.CredentialStore.
type memStorage struct {
	token string
	user  *model.User
}

func (m *memStorage) SaveAuth(token string, user model.User) error {
	m.token = token
	m.user = &user
	return nil
}

func (m *memStorage) Token() string { return m.token }

func (m *memStorage) User() (model.User, bool) {
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

func (m *memStorage) Clear() error {
	m.token = ""
	m.user = nil
	return nil
}

type captureNotifier struct {
	titles   []string
	messages []string
}

func (n *captureNotifier) Notify(title, message string) {
	n.titles = append(n.titles, title)
	n.messages = append(n.messages, message)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(baseURL string, creds client.CredentialStore) *client.Client {
	return client.New(config.API{BaseURL: baseURL, TimeoutSeconds: 5}, creds, discardLogger())
}

// cartPayload is the canonical two-item cart used across tests:
// 2x Margherita @ 12.99 and 1x Pepperoni @ 15.99.
func cartPayload() map[string]any {
	margherita := map[string]any{
		"id": 1, "name": "Margherita", "description": "Classic",
		"price": 12.99, "category": "VEG", "imageUrl": "", "available": true,
	}
	pepperoni := map[string]any{
		"id": 2, "name": "Pepperoni", "description": "Spicy",
		"price": 15.99, "category": "NON_VEG", "imageUrl": "", "available": true,
	}
	return map[string]any{
		"id": 7,
		"items": []map[string]any{
			{"id": 11, "pizza": margherita, "quantity": 2, "subtotal": 25.98},
			{"id": 12, "pizza": pepperoni, "quantity": 1, "subtotal": 15.99},
		},
		"totalItems": 3,
		"totalPrice": 41.97,
	}
}
