package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// recordingServer captures the last request line for route-shape assertions.
type recordingServer struct {
	method string
	path   string
	query  string
}

func newRecordingServer(t *testing.T, rec *recordingServer, respond any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		if respond != nil {
			json.NewEncoder(w).Encode(respond)
		}
	}))
}

func TestResourceRoutes(t *testing.T) {
	rec := &recordingServer{}
	server := newRecordingServer(t, rec, sdk.Notice{NoticeID: 12, Title: "Water supply", PublishDate: "2026-01-05T00:00:00Z"})
	defer server.Close()

	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Notices().Get(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/notices/12/", rec.path)

	_, err = client.Notices().Update(ctx, 12, sdk.Notice{Title: "Water supply", PublishDate: "2026-01-05T00:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/notices/12/", rec.path)

	require.NoError(t, client.Notices().Delete(ctx, 12))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/notices/12/", rec.path)
	assert.Empty(t, rec.query)
}

func TestRelationDeleteUsesQueryParams(t *testing.T) {
	rec := &recordingServer{}
	server := newRecordingServer(t, rec, nil)
	defer server.Close()

	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.RolePermissions().Delete(ctx, 4, 9))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/role-permissions/", rec.path)
	assert.Equal(t, "permission=9&role=4", rec.query)

	require.NoError(t, client.UserRoles().Delete(ctx, 2, 5))
	assert.Equal(t, "/user-roles/", rec.path)
	assert.Equal(t, "role=5&user=2", rec.query)
}

func TestRolePermissions_ListForRole(t *testing.T) {
	pairs := []sdk.RolePermission{
		{Role: 1, Permission: 10},
		{Role: 2, Permission: 11},
		{Role: 1, Permission: 12},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pairs)
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	ids, err := client.RolePermissions().ListForRole(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, ids)
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid payload")
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	ctx := context.Background()

	_, err := client.Notices().Create(ctx, sdk.Notice{Content: "missing title and date"})
	assert.Error(t, err)

	_, err = client.NewsEvents().Create(ctx, sdk.NewsEvent{Title: "Fair", Type: "Festival"})
	assert.Error(t, err, "type outside the backend's choices must be rejected")

	_, err = client.Users().Create(ctx, sdk.User{Username: "clerk", Email: "not-an-email"})
	assert.Error(t, err)
}

func TestCreateReturnsPersistedEntity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in sdk.Tender
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.TenderID = 77
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL)
	created, err := client.Tenders().Create(context.Background(), sdk.Tender{
		Title:              "Road resurfacing",
		TenderDocumentPath: "/media/tenders/road.pdf",
		SubmissionDeadline: "2026-10-01T17:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 77, created.TenderID)
	assert.Equal(t, "Road resurfacing", created.Title)
}
