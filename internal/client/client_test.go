package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "zoe@example.com", creds["email"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Login successful",
			"token":   "jwt-token",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	token, err := c.Login("zoe@example.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_BearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	raw, err := c.Inventories()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

// Non-2xx responses surface the server's message.
func TestClient_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Item ID already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	_, err := c.AddItem("inv1", "SKU1", "Hammer", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Item ID already exists")
	assert.Contains(t, err.Error(), "409")
}

func TestClient_ServerErrorWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Stats()
	assert.EqualError(t, err, "server returned 502")
}

func TestClient_SearchQueryEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inventories/search", r.URL.Path)
		assert.Equal(t, "garage tools", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := New(srv.URL, "jwt-token")
	_, err := c.SearchInventories("garage tools")
	assert.NoError(t, err)
}

func TestClient_LoginNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Login successful"})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Login("zoe@example.com", "secret1")
	assert.Error(t, err)
}
