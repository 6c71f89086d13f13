package jsonbin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/userbinhq/userbin/internal/model"
	"github.com/userbinhq/userbin/internal/testutil"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := New(Config{
		BaseURL:   srv.URL,
		BinID:     "bin123",
		MasterKey: "master-key",
		AccessKey: "access-key",
	}, testutil.NopLogger())
	require.NoError(t, err)
	return store
}

func TestNewRequiresBinID(t *testing.T) {
	_, err := New(Config{}, testutil.NopLogger())
	assert.Error(t, err)
}

func TestFetchUnwrapsRecordWrapper(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/b/bin123/latest", r.URL.Path)
		assert.Equal(t, "master-key", r.Header.Get("X-Master-Key"))
		assert.Equal(t, "access-key", r.Header.Get("X-Access-Key"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"record": model.UserDocument{Users: []model.User{
				{Username: "alice", PasswordHash: "hash", CreatedAt: created},
			}},
		})
	})

	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "alice", doc.Users[0].Username)
	assert.True(t, doc.Users[0].CreatedAt.Equal(created))
}

func TestFetchAcceptsUnwrappedDocument(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.UserDocument{Users: []model.User{
			{Username: "bob"},
		}})
	})

	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.Equal(t, "bob", doc.Users[0].Username)
}

func TestFetchNotFoundYieldsEmptyDocument(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
}

func TestFetchMissingUsersFieldYieldsEmptySlice(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"record":{}}`))
	})

	doc, err := store.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, doc.Users)
	assert.Empty(t, doc.Users)
}

func TestFetchServerErrorIsStoreUnavailable(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := store.Fetch(context.Background())
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestFetchUnreachableHostIsStoreUnavailable(t *testing.T) {
	store, err := New(Config{
		BaseURL: "http://127.0.0.1:1",
		BinID:   "bin123",
		Timeout: time.Second,
	}, testutil.NopLogger())
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	assert.ErrorIs(t, err, model.ErrStoreUnavailable)
}

func TestStoreOverwritesDocument(t *testing.T) {
	var gotBody model.UserDocument
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/b/bin123", r.URL.Path)
		assert.Equal(t, "master-key", r.Header.Get("X-Master-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	doc := &model.UserDocument{Users: []model.User{{Username: "alice"}}}
	err := store.Store(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, gotBody.Users, 1)
	assert.Equal(t, "alice", gotBody.Users[0].Username)
}

func TestStoreNon2xxIsStoreWriteFailed(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	err := store.Store(context.Background(), model.NewUserDocument())
	assert.ErrorIs(t, err, model.ErrStoreWriteFailed)
}

func TestAccessKeyHeaderOmittedWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Access-Key"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`{"record":{"users":[]}}`))
	}))
	t.Cleanup(srv.Close)

	store, err := New(Config{BaseURL: srv.URL, BinID: "bin123", MasterKey: "mk"}, testutil.NopLogger())
	require.NoError(t, err)

	_, err = store.Fetch(context.Background())
	require.NoError(t, err)
}
