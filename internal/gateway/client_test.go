package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackinhq/trackin/internal/model"
)

type staticCreds string

func (c staticCreds) AccessToken() string { return string(c) }

func TestClient_NotAuthenticated(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds(""))

	_, err := client.ListOrders(context.Background(), ListScope{Business: "all"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Equal(t, 0, requests, "no request should be issued without a token")
}

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds("tok-123"))

	_, err := client.ListBusinesses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds("stale"))

	_, err := client.ListProducts(context.Background(), "all")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_ListScopeParams(t *testing.T) {
	tests := []struct {
		name         string
		scope        ListScope
		wantBusiness string
		wantDate     string
		wantHasDate  bool
	}{
		{
			name:         "all businesses still sends the parameter",
			scope:        ListScope{Business: "all", Date: "2024-03-15"},
			wantBusiness: "all",
			wantDate:     "2024-03-15",
			wantHasDate:  true,
		},
		{
			name:         "specific business",
			scope:        ListScope{Business: "7", Date: "2024-03-15"},
			wantBusiness: "7",
			wantDate:     "2024-03-15",
			wantHasDate:  true,
		},
		{
			name:         "empty date is omitted",
			scope:        ListScope{Business: "7"},
			wantBusiness: "7",
			wantHasDate:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				_, _ = w.Write([]byte(`[]`))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticCreds("tok"))
			_, err := client.ListOrders(context.Background(), tt.scope)
			require.NoError(t, err)

			assert.Equal(t, []string{tt.wantBusiness}, gotQuery["business"])
			if tt.wantHasDate {
				assert.Equal(t, []string{tt.wantDate}, gotQuery["date"])
			} else {
				assert.NotContains(t, gotQuery, "date")
			}
		})
	}
}

func TestClient_MutationScopeParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds("tok"))
	draft := model.OrderDraft{OrderID: "ORD-1", Quantity: 1}

	// "all" scope mutations are unscoped.
	require.NoError(t, client.CreateOrder(context.Background(), draft, "all"))
	assert.NotContains(t, gotQuery, "business")

	// Specific business mutations carry the scope.
	require.NoError(t, client.CreateOrder(context.Background(), draft, "12"))
	assert.Equal(t, []string{"12"}, gotQuery["business"])
}

func TestClient_DeleteOrder(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:   "204 is the only success",
			status: http.StatusNoContent,
		},
		{
			name:    "200 with a body is still a failure",
			status:  http.StatusOK,
			body:    `{"message": "order archived"}`,
			wantErr: "order archived",
		},
		{
			name:    "server error surfaces its message",
			status:  http.StatusConflict,
			body:    `{"error": "order already returned"}`,
			wantErr: "order already returned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/orders/5/delete/", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticCreds("tok"))
			err := client.DeleteOrder(context.Background(), 5)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestClient_RemoveReturn_FallbackChain(t *testing.T) {
	t.Run("first shape wins", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.Method+" "+r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, staticCreds("tok"))
		require.NoError(t, client.RemoveReturn(context.Background(), 3, "all"))
		assert.Equal(t, []string{"POST /returns/remove/3/"}, paths)
	})

	t.Run("405 advances the chain in order", func(t *testing.T) {
		var paths []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.Method+" "+r.URL.Path)
			if len(paths) < 3 {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			assert.Equal(t, "3", r.URL.Query().Get("id"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL, staticCreds("tok"))
		require.NoError(t, client.RemoveReturn(context.Background(), 3, "all"))
		assert.Equal(t, []string{
			"POST /returns/remove/3/",
			"POST /returns/3/delete/",
			"DELETE /returns/",
		}, paths)
	})

	t.Run("non-405 failure stops the chain", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "return not found"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, staticCreds("tok"))
		err := client.RemoveReturn(context.Background(), 3, "all")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "return not found")
		assert.Equal(t, 1, requests)
	})
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "alice", payload["username"])

		_, _ = w.Write([]byte(`{"access_token": "a", "refresh_token": "r", "username": "alice"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds(""))
	creds, err := client.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "a", creds.AccessToken)
	assert.Equal(t, "r", creds.RefreshToken)
	assert.Equal(t, "alice", creds.Username)
}

func TestClient_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, staticCreds("tok"))
	_, err := client.ListOrders(context.Background(), ListScope{Business: "all"})

	var requestErr *RequestError
	require.True(t, errors.As(err, &requestErr))
	assert.Equal(t, "failed to connect to server", err.Error())
}

func TestParseErrorBody(t *testing.T) {
	t.Run("field errors beat message", func(t *testing.T) {
		err := parseErrorBody(http.StatusBadRequest,
			[]byte(`{"errors": {"quantity": ["Not enough stock"]}, "message": "bad request"}`))

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{"Not enough stock"}, validationErr.Fields["quantity"])
	})

	t.Run("single string field error", func(t *testing.T) {
		err := parseErrorBody(http.StatusBadRequest,
			[]byte(`{"errors": {"sku": "SKU already exists!"}}`))

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, []string{"SKU already exists!"}, validationErr.Fields["sku"])
	})

	t.Run("message", func(t *testing.T) {
		err := parseErrorBody(http.StatusConflict, []byte(`{"message": "nope"}`))
		assert.Equal(t, "nope", err.Error())
	})

	t.Run("raw body fallback", func(t *testing.T) {
		err := parseErrorBody(http.StatusBadGateway, []byte("  upstream exploded\n"))
		assert.Equal(t, "upstream exploded", err.Error())
	})
}
