package postgrest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"employee-directory/config"
	"employee-directory/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T, url string) *PostgREST {
	t.Helper()

	repo := New(zap.NewNop().Sugar(), &config.Config{
		Source:    config.SourceConfig{Table: "employees"},
		PostgREST: config.PostgRESTConfig{URL: url, Key: "anon-key", Timeout: 2 * time.Second},
	})
	require.NoError(t, repo.OnStart(context.Background()))
	t.Cleanup(func() { _ = repo.OnStop(context.Background()) })
	return repo
}

func TestListEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rest/v1/employees", r.URL.Path)
		require.Equal(t, "*", r.URL.Query().Get("select"))
		require.True(t, strings.HasPrefix(r.URL.Query().Get("order"), "id.asc"))
		require.Empty(t, r.URL.Query().Get("limit"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 2, "full_name": "Ada Lovelace", "email": "ada@example.com"},
			{"id": 1, "first_name": "Grace", "last_name": "Hopper", "email": null}
		]`))
	}))
	t.Cleanup(srv.Close)

	repo := newTestRepo(t, srv.URL+"/")

	records, err := repo.ListEmployees(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, json.Number("2"), records[0]["id"])
	require.Equal(t, "Ada Lovelace", records[0]["full_name"])

	_, ok := records[1].Field("email")
	require.False(t, ok)
}

func TestListEmployeesLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	}))
	t.Cleanup(srv.Close)

	records, err := newTestRepo(t, srv.URL).ListEmployees(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestListEmployeesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	records, err := newTestRepo(t, srv.URL).ListEmployees(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestListEmployeesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","details":null,"hint":null,"message":"relation \"public.employees\" does not exist"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestRepo(t, srv.URL).ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
	require.Equal(t, `relation "public.employees" does not exist`, entities.FetchMessage(err))
}

func TestListEmployeesNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestRepo(t, srv.URL).ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
	require.NotEmpty(t, entities.FetchMessage(err))
}

func TestListEmployeesTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	repo := New(zap.NewNop().Sugar(), &config.Config{
		Source:    config.SourceConfig{Table: "employees"},
		PostgREST: config.PostgRESTConfig{URL: srv.URL, Key: "anon-key", Timeout: 50 * time.Millisecond},
	})
	require.NoError(t, repo.OnStart(context.Background()))

	_, err := repo.ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, "timed out waiting for employees", entities.FetchMessage(err))
}

func TestListEmployeesMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	t.Cleanup(srv.Close)

	_, err := newTestRepo(t, srv.URL).ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
	require.Contains(t, entities.FetchMessage(err), "decode employees")
}

func TestListEmployeesConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestRepo(t, url).ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
	require.Contains(t, entities.FetchMessage(err), "connection refused")
}

func TestListEmployeesNotStarted(t *testing.T) {
	repo := New(zap.NewNop().Sugar(), &config.Config{Source: config.SourceConfig{Table: "employees"}})

	_, err := repo.ListEmployees(context.Background(), 0)
	require.ErrorIs(t, err, entities.ErrFetchFailed)
}

func TestOnStartRejectsBadURL(t *testing.T) {
	repo := New(zap.NewNop().Sugar(), &config.Config{
		Source:    config.SourceConfig{Table: "employees"},
		PostgREST: config.PostgRESTConfig{URL: "ftp://example.com", Key: "k"},
	})
	require.Error(t, repo.OnStart(context.Background()))
}
