package processstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wired-people-backend/lib/apperrors"
	upstreamclient "wired-people-backend/lib/upstream/client"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) Provider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	upstreamclient.NewProvider(server.URL, time.Second)
	return NewInstance(upstreamclient.Instance, "wired-people", 10)
}

func TestStoreGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run(`upstream 404 reads as absence`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		proc, err := store.GetByID(ctx, "token", "missing")
		require.Nil(t, err)
		require.Nil(t, proc)
	})

	t.Run(`foreign tenant reads as absence`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"id": "p-1", "name": "Poached", "companyId": "someone-else"}`)
		})
		proc, err := store.GetByID(ctx, "token", "p-1")
		require.Nil(t, err)
		require.Nil(t, proc)
	})

	t.Run(`tenant-owned process is returned`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/processes/p-1", r.URL.Path)
			require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
			fmt.Fprint(w, `{"id": "p-1", "name": "Ours", "companyId": "wired-people", "status": 1}`)
		})
		proc, err := store.GetByID(ctx, "token", "p-1")
		require.Nil(t, err)
		require.NotNil(t, proc)
		require.Equal(t, "Ours", proc.Name)
	})

	t.Run(`empty token never reaches the backend`, func(t *testing.T) {
		called := false
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		_, err := store.GetByID(ctx, "", "p-1")
		require.NotNil(t, err)
		require.False(t, called)
	})
}

func TestStoreListAll(t *testing.T) {
	ctx := context.Background()

	t.Run(`tenant filter and creation order`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{
				"items": [
					{"id": "b", "companyId": "wired-people", "createdAt": "2026-02-01T00:00:00Z"},
					{"id": "x", "companyId": "someone-else", "createdAt": "2026-01-15T00:00:00Z"},
					{"id": "a", "companyId": "wired-people", "createdAt": "2026-01-01T00:00:00Z"}
				],
				"hasNextPage": false
			}`)
		})
		result, err := store.ListAll(ctx, "token")
		require.Nil(t, err)
		require.Len(t, result, 2)
		require.Equal(t, "a", result[0].ID)
		require.Equal(t, "b", result[1].ID)
	})

	t.Run(`pages are drained until exhausted`, func(t *testing.T) {
		var pagesServed []string
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			page := r.URL.Query().Get("PageNumber")
			pagesServed = append(pagesServed, page)
			if page == "1" {
				fmt.Fprint(w, `{"items": [{"id": "p-1", "companyId": "wired-people"}], "hasNextPage": true}`)
				return
			}
			fmt.Fprint(w, `{"items": [{"id": "p-2", "companyId": "wired-people"}], "hasNextPage": false}`)
		})
		result, err := store.ListAll(ctx, "token")
		require.Nil(t, err)
		require.Len(t, result, 2)
		require.Equal(t, []string{"1", "2"}, pagesServed)
	})

	t.Run(`bare array response`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id": "p-1", "companyId": "wired-people"}]`)
		})
		result, err := store.ListAll(ctx, "token")
		require.Nil(t, err)
		require.Len(t, result, 1)
	})

	t.Run(`unparseable rows are skipped, not fatal`, func(t *testing.T) {
		store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"items": [42, {"id": "p-1", "companyId": "wired-people"}], "hasNextPage": false}`)
		})
		result, err := store.ListAll(ctx, "token")
		require.Nil(t, err)
		require.Len(t, result, 1)
	})
}

func TestStoreAddCandidates(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.Nil(t, json.Unmarshal(raw, &gotBody))
	})

	require.Nil(t, store.AddCandidates(context.Background(), "token", "p-1", []string{"s1", "s2"}))
	require.Equal(t, "/v1/processes/p-1/students", gotPath)
	require.Equal(t, []interface{}{"s1", "s2"}, gotBody["studentIds"])
}

func TestStoreUpdateConflict(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		w.WriteHeader(http.StatusConflict)
	})
	_, err := store.Update(context.Background(), "token",
		mustMapProcess(t, `{"id": "p-1", "companyId": "wired-people"}`))
	require.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}
