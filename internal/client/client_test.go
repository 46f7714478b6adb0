package client_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crust-connect/internal/client"
	"crust-connect/internal/config"
	"crust-connect/internal/model"
)

type fakeCreds struct {
	token   string
	cleared bool
}

func (f *fakeCreds) Token() string { return f.token }

func (f *fakeCreds) Clear() error {
	f.token = ""
	f.cleared = true
	return nil
}

func newClient(srv *httptest.Server, creds client.CredentialStore) *client.Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return client.New(config.API{BaseURL: srv.URL, TimeoutSeconds: 5}, creds, log)
}

func envelope(data any) []byte {
	raw, _ := json.Marshal(map[string]any{
		"timestamp": "2025-06-01T12:00:00",
		"status":    200,
		"message":   "Success",
		"data":      data,
	})
	return raw
}

func TestBearerInjectedFromStorage(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write(envelope([]any{}))
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{token: "tok-123"})
	_, err := c.Pizzas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerWhileAnonymous(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(envelope([]any{}))
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{})
	_, err := c.Pizzas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestEnvelopeUnwrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pizzas", r.URL.Path)
		_, _ = w.Write(envelope([]map[string]any{{
			"id": 1, "name": "Margherita", "price": 12.99,
			"category": "VEG", "available": true,
		}}))
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{})
	pizzas, err := c.Pizzas(context.Background())
	require.NoError(t, err)

	require.Len(t, pizzas, 1)
	assert.Equal(t, "Margherita", pizzas[0].Name)
	assert.Equal(t, model.CategoryVeg, pizzas[0].Category)
	assert.Equal(t, "12.99", pizzas[0].Price.String())
}

func TestUnauthorizedClearsCredentialAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale"}
	c := newClient(srv, creds)

	hookFired := false
	c.OnUnauthorized(func() { hookFired = true })

	_, err := c.Orders(context.Background())
	require.Error(t, err)

	assert.True(t, client.IsUnauthorized(err))
	assert.True(t, creds.cleared)
	assert.True(t, hookFired)
	assert.Empty(t, creds.token)
}

func TestUnauthorizedKeepsEnvelopeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": "2025-06-01T12:00:00",
			"status":    401,
			"message":   "Invalid email or password",
			"data":      nil,
		})
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale"}
	c := newClient(srv, creds)

	_, err := c.Login(context.Background(), client.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	require.Error(t, err)

	// teardown still happens, but the server's message wins over the
	// generic session-expired text
	assert.True(t, client.IsUnauthorized(err))
	assert.True(t, creds.cleared)
	assert.Equal(t, "Invalid email or password", client.Message(err))
}

func TestUnauthorizedWithoutBodyGetsSessionMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{token: "stale"})
	_, err := c.Orders(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Your session has expired, please log in again", client.Message(err))
}

func TestErrorMessageExtractedFromEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"timestamp": "2025-06-01T12:00:00",
			"status":    400,
			"message":   "Pizza is not available",
			"data":      nil,
		})
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{})
	_, err := c.AddCartItem(context.Background(), 9)
	require.Error(t, err)

	assert.Equal(t, client.KindValidation, client.Kind(err))
	assert.Equal(t, "Pizza is not available", client.Message(err))
}

func TestErrorKindsByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   client.ErrorKind
	}{
		{"validation", http.StatusBadRequest, client.KindValidation},
		{"forbidden", http.StatusForbidden, client.KindValidation},
		{"not found", http.StatusNotFound, client.KindNotFound},
		{"server error", http.StatusInternalServerError, client.KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			c := newClient(srv, &fakeCreds{})
			_, err := c.Order(context.Background(), 1)
			require.Error(t, err)
			assert.Equal(t, tc.kind, client.Kind(err))
			// no envelope body: the generic fallback message applies
			assert.Equal(t, "An error occurred", client.Message(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := newClient(srv, &fakeCreds{})
	_, err := c.Cart(context.Background())
	require.Error(t, err)
	assert.Equal(t, client.KindTransport, client.Kind(err))
}

func TestMessageFallbackForUnknownErrors(t *testing.T) {
	assert.Equal(t, "An error occurred", client.Message(io.EOF))
}

func TestQueryParametersEncoded(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write(envelope(map[string]any{"content": []any{}}))
	}))
	defer srv.Close()

	c := newClient(srv, &fakeCreds{})
	_, err := c.AdminOrders(context.Background(), 2, 50, model.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, "page=2&size=50&status=PREPARING", gotQuery)
}
