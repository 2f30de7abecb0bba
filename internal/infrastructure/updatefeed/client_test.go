package updatefeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melovue/shell/internal/application/port"
)

func TestFetchUpdateInfo_NormalizesRequiredVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/client/update", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"requiredVersion":"1.3.0","apkUrl":"https://cdn.melovue.com/shell.pkg"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	info, err := client.FetchUpdateInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.3.0", info.RequiredVersion)
	assert.Equal(t, "https://cdn.melovue.com/shell.pkg", info.InstallerURL)
}

func TestFetchUpdateInfo_SendsClientCredential(t *testing.T) {
	var gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("x-mv-client")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "s3cret")
	_, err := client.FetchUpdateInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", gotSecret)
}

func TestFetchUpdateInfo_OmitsHeaderWithoutCredential(t *testing.T) {
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["X-Mv-Client"]
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchUpdateInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, hadHeader)
}

func TestFetchUpdateInfo_AbsentVersionStaysAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"apkUrl":"https://cdn.melovue.com/shell.pkg"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	info, err := client.FetchUpdateInfo(context.Background())
	require.NoError(t, err)
	assert.Empty(t, info.RequiredVersion)
}

func TestFetchUpdateInfo_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchUpdateInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrUpdateCheckFailed))
	assert.Contains(t, err.Error(), "500")
}

func TestFetchUpdateInfo_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchUpdateInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrUpdateCheckFailed))
}

func TestFetchUpdateInfo_UnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, "")
	_, err := client.FetchUpdateInfo(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrUpdateCheckFailed))
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://app.melovue.com/", "")
	assert.Equal(t, "https://app.melovue.com/api/client/update", client.endpoint)
}
