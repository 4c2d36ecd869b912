package http_test

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	coldemail "github.com/thakurdishanttt/cold-email-gen"
	coldhttp "github.com/thakurdishanttt/cold-email-gen/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements coldemail.Fetcher at compile time.
var _ coldemail.Fetcher = (*coldhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the status and body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		f := coldhttp.NewFetcher()
		status, body, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusOK, status)
		assert.Equal(t, "<html><body>ok</body></html>", body)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept string
		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
		}))
		defer srv.Close()

		f := coldhttp.NewFetcher()
		_, _, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("returns non-200 statuses without an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
			nethttp.Error(w, "gone", nethttp.StatusNotFound)
		}))
		defer srv.Close()

		f := coldhttp.NewFetcher()
		status, _, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, nethttp.StatusNotFound, status)
	})

	t.Run("rejects malformed URLs with EINVALID", func(t *testing.T) {
		t.Parallel()

		f := coldhttp.NewFetcher()
		_, _, err := f.Fetch(context.Background(), "http://%zz")

		require.Error(t, err)
		assert.Equal(t, coldemail.EINVALID, coldemail.ErrorCode(err))
	})

	t.Run("a cancelled context aborts a rate-limited fetch", func(t *testing.T) {
		t.Parallel()

		f := coldhttp.NewFetcher(coldhttp.WithRateLimit(0.001, 1))
		ctx, cancel := context.WithCancel(context.Background())

		// Exhaust the single burst token, then cancel.
		srv := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
		defer srv.Close()
		_, _, err := f.Fetch(ctx, srv.URL)
		require.NoError(t, err)

		cancel()
		_, _, err = f.Fetch(ctx, srv.URL)
		assert.Error(t, err)
	})
}
