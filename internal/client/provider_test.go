package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/auth"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

func fakeBackend(t *testing.T, validToken string, staff bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check_auth/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Token "+validToken {
			json.NewEncoder(w).Encode(sdk.CheckAuthResponse{
				IsAuthenticated: true,
				User:            &sdk.User{UserID: 1, Username: "admin", Email: "a@example.org", IsStaff: staff},
			})
			return
		}
		json.NewEncoder(w).Encode(sdk.CheckAuthResponse{IsAuthenticated: false})
	})
	return httptest.NewServer(mux)
}

func seedCredentials(t *testing.T, token string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if token != "" {
		store, err := auth.NewFileStoreAt(filepath.Join(home, ".npuctl"))
		require.NoError(t, err)
		require.NoError(t, store.SaveCredentials(&sdk.Credentials{Token: token}))
	}
}

func TestProvider_AnonymousIsRedirectedToLogin(t *testing.T) {
	server := fakeBackend(t, "tok-1", true)
	defer server.Close()
	seedCredentials(t, "")

	p := NewProvider(server.URL, nil)
	_, err := p.Client(t.Context())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestProvider_StaffPassesAdminGate(t *testing.T) {
	server := fakeBackend(t, "tok-1", true)
	defer server.Close()
	seedCredentials(t, "tok-1")

	p := NewProvider(server.URL, nil)
	client, err := p.AdminClient(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestProvider_PlainUserFailsAdminGate(t *testing.T) {
	server := fakeBackend(t, "tok-1", false)
	defer server.Close()
	seedCredentials(t, "tok-1")

	p := NewProvider(server.URL, nil)
	_, err := p.Client(t.Context())
	require.NoError(t, err)

	_, err = p.AdminClient(t.Context())
	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestProvider_WrapClearsSessionOn401(t *testing.T) {
	server := fakeBackend(t, "tok-1", true)
	defer server.Close()
	seedCredentials(t, "tok-1")

	p := NewProvider(server.URL, nil)
	session, err := p.Session(t.Context())
	require.NoError(t, err)
	require.True(t, session.IsAuthenticated())

	// Any resource call's 401 triggers the policy.
	wrapped := p.Wrap(&sdk.UnauthorizedError{Operation: "GET /tenders/"})
	assert.ErrorIs(t, wrapped, ErrNotLoggedIn)
	assert.False(t, session.IsAuthenticated())

	// Non-auth failures pass through untouched.
	plain := errors.New("boom")
	assert.Same(t, plain, p.Wrap(plain))
	assert.Nil(t, p.Wrap(nil))
}
