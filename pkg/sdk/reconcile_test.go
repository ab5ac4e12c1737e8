package sdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		current    []int
		target     []int
		wantGrant  []int
		wantRevoke []int
	}{
		{
			name:    "both empty",
			current: nil,
			target:  nil,
		},
		{
			name:    "equal sets",
			current: []int{1, 2, 3},
			target:  []int{3, 2, 1},
		},
		{
			name:       "one grant one revoke",
			current:    []int{1, 2, 3},
			target:     []int{2, 3, 4},
			wantGrant:  []int{4},
			wantRevoke: []int{1},
		},
		{
			name:      "grant all from empty",
			current:   nil,
			target:    []int{5, 1, 3},
			wantGrant: []int{1, 3, 5},
		},
		{
			name:       "revoke all to empty",
			current:    []int{2, 7},
			target:     nil,
			wantRevoke: []int{2, 7},
		},
		{
			name:       "duplicates are ignored",
			current:    []int{1, 1, 2},
			target:     []int{2, 2, 3, 3},
			wantGrant:  []int{3},
			wantRevoke: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grant, revoke := sdk.Diff(tt.current, tt.target)
			assert.Equal(t, tt.wantGrant, grant)
			assert.Equal(t, tt.wantRevoke, revoke)

			seen := make(map[int]bool)
			for _, id := range grant {
				seen[id] = true
			}
			for _, id := range revoke {
				assert.False(t, seen[id], "grant and revoke must be disjoint, both contain %d", id)
			}
		})
	}
}

// reconcileBackend records the grant and revoke calls a reconciliation
// issues, optionally failing selected permission ids.
type reconcileBackend struct {
	mu         sync.Mutex
	granted    []int
	revoked    []int
	failGrant  map[int]bool
	failRevoke map[int]bool
}

func (b *reconcileBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /role-permissions/", func(w http.ResponseWriter, r *http.Request) {
		var pair sdk.RolePermission
		if err := json.NewDecoder(r.Body).Decode(&pair); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failGrant[pair.Permission] {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "grant rejected"})
			return
		}
		b.granted = append(b.granted, pair.Permission)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(pair)
	})
	mux.HandleFunc("DELETE /role-permissions/", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.URL.Query().Get("permission"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.failRevoke[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		b.revoked = append(b.revoked, id)
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func TestClient_Reconcile(t *testing.T) {
	t.Run("applies exactly the diff", func(t *testing.T) {
		backend := &reconcileBackend{}
		server := httptest.NewServer(backend.handler())
		defer server.Close()

		client := sdk.NewClient(server.URL)
		results, err := client.Reconcile(context.Background(), 7, []int{1, 2, 3}, []int{2, 3, 4})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, []int{4}, backend.granted)
		assert.Equal(t, []int{1}, backend.revoked)
		for _, r := range results {
			assert.NoError(t, r.Err)
		}
	})

	t.Run("no-op when sets already match", func(t *testing.T) {
		backend := &reconcileBackend{}
		server := httptest.NewServer(backend.handler())
		defer server.Close()

		client := sdk.NewClient(server.URL)
		results, err := client.Reconcile(context.Background(), 7, []int{1, 2}, []int{2, 1})
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Empty(t, backend.granted)
		assert.Empty(t, backend.revoked)
	})

	t.Run("partial failure reports exactly the failed ids", func(t *testing.T) {
		backend := &reconcileBackend{
			failGrant:  map[int]bool{10: true},
			failRevoke: map[int]bool{2: true},
		}
		server := httptest.NewServer(backend.handler())
		defer server.Close()

		client := sdk.NewClient(server.URL)
		results, err := client.Reconcile(context.Background(), 7, []int{1, 2}, []int{1, 10, 11})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "grant 10")
		assert.Contains(t, err.Error(), "revoke 2")
		assert.NotContains(t, err.Error(), "grant 11")

		// The surviving calls still went through.
		assert.Equal(t, []int{11}, backend.granted)
		assert.Empty(t, backend.revoked)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		assert.Equal(t, 2, failed)
	})
}

func TestGroupByModule(t *testing.T) {
	perms := []sdk.Permission{
		{PermissionID: 1, PermissionName: "notices.create"},
		{PermissionID: 2, PermissionName: "notices.delete"},
		{PermissionID: 3, PermissionName: "tenders.create"},
		{PermissionID: 4, PermissionName: "dashboard"},
	}

	groups := sdk.GroupByModule(perms)
	require.Len(t, groups, 3)
	assert.Len(t, groups["notices"], 2)
	assert.Len(t, groups["tenders"], 1)
	assert.Equal(t, "dashboard", groups["other"][0].PermissionName)
}
