package sdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// memStore is an in-memory CredentialStore for session tests.
type memStore struct {
	creds *sdk.Credentials
}

func (s *memStore) SaveCredentials(creds *sdk.Credentials) error {
	s.creds = creds
	return nil
}

func (s *memStore) LoadCredentials() (*sdk.Credentials, error) {
	if s.creds == nil {
		return nil, errors.New("not logged in")
	}
	return s.creds, nil
}

func (s *memStore) DeleteCredentials() error {
	s.creds = nil
	return nil
}

// authBackend fakes the auth endpoints: one known token and one known
// username/password pair.
func authBackend(t *testing.T, validToken string, admin bool) *httptest.Server {
	t.Helper()
	user := sdk.User{
		UserID:   1,
		Username: "secretary",
		FullName: "Office Secretary",
		Email:    "secretary@example.org",
		IsActive: true,
		IsStaff:  admin,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check_auth/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Token "+validToken {
			json.NewEncoder(w).Encode(sdk.CheckAuthResponse{IsAuthenticated: true, User: &user})
			return
		}
		json.NewEncoder(w).Encode(sdk.CheckAuthResponse{IsAuthenticated: false})
	})
	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var req sdk.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != "secretary" || req.Password != "open-sesame" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"detail": "Unable to log in with provided credentials."})
			return
		}
		json.NewEncoder(w).Encode(sdk.AuthResponse{Token: validToken, User: user})
	})
	mux.HandleFunc("POST /auth/register/", func(w http.ResponseWriter, r *http.Request) {
		var req sdk.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username == "secretary" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"username": []string{"A user with that username already exists."}})
			return
		}
		json.NewEncoder(w).Encode(sdk.AuthResponse{Token: validToken, User: user})
	})
	mux.HandleFunc("POST /auth/logout/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux)
}

func TestSession_CheckAuth(t *testing.T) {
	t.Run("valid persisted token resolves authenticated", func(t *testing.T) {
		server := authBackend(t, "tok-123", true)
		defer server.Close()

		store := &memStore{creds: &sdk.Credentials{Token: "tok-123"}}
		session := sdk.NewSession(server.URL, store)
		require.Equal(t, sdk.AuthChecking, session.State())

		session.CheckAuth(context.Background())

		assert.Equal(t, sdk.AuthAuthenticated, session.State())
		require.NotNil(t, session.Principal())
		assert.Equal(t, "secretary", session.Principal().Username)
	})

	t.Run("stale token resolves anonymous and clears the store", func(t *testing.T) {
		server := authBackend(t, "tok-123", true)
		defer server.Close()

		store := &memStore{creds: &sdk.Credentials{Token: "expired"}}
		session := sdk.NewSession(server.URL, store)
		session.CheckAuth(context.Background())

		assert.Equal(t, sdk.AuthAnonymous, session.State())
		assert.Nil(t, session.Principal())
		assert.Nil(t, store.creds)
	})

	t.Run("unreachable server still settles", func(t *testing.T) {
		store := &memStore{creds: &sdk.Credentials{Token: "tok-123"}}
		session := sdk.NewSession("http://127.0.0.1:1", store)
		session.CheckAuth(context.Background())

		assert.Equal(t, sdk.AuthAnonymous, session.State())
		assert.Nil(t, store.creds)
	})
}

func TestSession_Gate(t *testing.T) {
	server := authBackend(t, "tok-123", true)
	defer server.Close()

	t.Run("pending never redirects", func(t *testing.T) {
		session := sdk.NewSession(server.URL, &memStore{})
		assert.Equal(t, sdk.DecisionPending, session.Gate(false))
		assert.Equal(t, sdk.DecisionPending, session.Gate(true))
	})

	t.Run("anonymous redirects once resolved", func(t *testing.T) {
		session := sdk.NewSession(server.URL, &memStore{})
		session.CheckAuth(context.Background())
		assert.Equal(t, sdk.DecisionRedirect, session.Gate(false))
	})

	t.Run("staff passes the admin gate", func(t *testing.T) {
		store := &memStore{creds: &sdk.Credentials{Token: "tok-123"}}
		session := sdk.NewSession(server.URL, store)
		session.CheckAuth(context.Background())
		assert.Equal(t, sdk.DecisionAllow, session.Gate(true))
	})

	t.Run("plain user fails the admin gate", func(t *testing.T) {
		plain := authBackend(t, "tok-456", false)
		defer plain.Close()

		store := &memStore{creds: &sdk.Credentials{Token: "tok-456"}}
		session := sdk.NewSession(plain.URL, store)
		session.CheckAuth(context.Background())
		assert.True(t, session.IsAuthenticated())
		assert.False(t, session.IsAdmin())
		assert.Equal(t, sdk.DecisionAllow, session.Gate(false))
		assert.Equal(t, sdk.DecisionRedirect, session.Gate(true))
	})
}

func TestSession_Login(t *testing.T) {
	t.Run("empty fields rejected before any network call", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		session := sdk.NewSession(server.URL, &memStore{})
		result := session.Login(context.Background(), sdk.LoginRequest{Username: "", Password: "x"})
		assert.False(t, result.OK)
		assert.Equal(t, "Username and password are required", result.Error)
		assert.Zero(t, hits.Load())
	})

	t.Run("success persists token and sets principal", func(t *testing.T) {
		server := authBackend(t, "tok-123", true)
		defer server.Close()

		store := &memStore{}
		session := sdk.NewSession(server.URL, store)
		result := session.Login(context.Background(), sdk.LoginRequest{Username: "secretary", Password: "open-sesame"})
		require.True(t, result.OK)

		require.NotNil(t, store.creds)
		assert.Equal(t, "tok-123", store.creds.Token)
		assert.True(t, session.IsAuthenticated())
		assert.True(t, session.IsAdmin())
	})

	t.Run("bad credentials surface the backend detail", func(t *testing.T) {
		server := authBackend(t, "tok-123", true)
		defer server.Close()

		session := sdk.NewSession(server.URL, &memStore{})
		result := session.Login(context.Background(), sdk.LoginRequest{Username: "secretary", Password: "wrong"})
		assert.False(t, result.OK)
		assert.Equal(t, "Unable to log in with provided credentials.", result.Error)
	})

	t.Run("transport failure maps to a connectivity message", func(t *testing.T) {
		session := sdk.NewSession("http://127.0.0.1:1", &memStore{})
		result := session.Login(context.Background(), sdk.LoginRequest{Username: "secretary", Password: "open-sesame"})
		assert.False(t, result.OK)
		assert.Equal(t, "Unable to connect to server. Please check your connection.", result.Error)
	})
}

func TestSession_Register(t *testing.T) {
	server := authBackend(t, "tok-123", true)
	defer server.Close()

	t.Run("field error surfaces first message", func(t *testing.T) {
		session := sdk.NewSession(server.URL, &memStore{})
		result := session.Register(context.Background(), sdk.RegisterRequest{
			Username: "secretary", Email: "s@example.org", Password: "pw",
		})
		assert.False(t, result.OK)
		assert.Equal(t, "A user with that username already exists.", result.Error)
	})

	t.Run("success signs the account in", func(t *testing.T) {
		store := &memStore{}
		session := sdk.NewSession(server.URL, store)
		result := session.Register(context.Background(), sdk.RegisterRequest{
			Username: "clerk", Email: "clerk@example.org", Password: "pw",
		})
		require.True(t, result.OK)
		assert.True(t, session.IsAuthenticated())
		require.NotNil(t, store.creds)
	})
}

func TestSession_Logout(t *testing.T) {
	t.Run("clears state even when the backend call fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		store := &memStore{creds: &sdk.Credentials{Token: "tok-123"}}
		session := sdk.NewSession(server.URL, store)
		session.Logout(context.Background())

		assert.Equal(t, sdk.AuthAnonymous, session.State())
		assert.Nil(t, session.Principal())
		assert.Nil(t, store.creds)
	})
}

func TestSession_HandleUnauthorized(t *testing.T) {
	server := authBackend(t, "tok-123", true)
	defer server.Close()

	store := &memStore{creds: &sdk.Credentials{Token: "tok-123"}}
	session := sdk.NewSession(server.URL, store)
	session.CheckAuth(context.Background())
	require.True(t, session.IsAuthenticated())

	assert.False(t, session.HandleUnauthorized(errors.New("plain failure")))
	assert.True(t, session.IsAuthenticated())

	err := &sdk.UnauthorizedError{Operation: "GET /notices/"}
	assert.True(t, session.HandleUnauthorized(err))
	assert.False(t, session.IsAuthenticated())
	assert.Equal(t, sdk.AuthAnonymous, session.State())
	assert.Nil(t, store.creds)
}
