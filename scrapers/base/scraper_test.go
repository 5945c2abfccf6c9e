package base

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraper(fallback bool, rendered string, renderErr error) (*BaseScraper, *int) {
	calls := 0
	b := NewBaseScraper(2*time.Second, fallback)
	b.fetchChromeDP = func(ctx context.Context, url string) (string, error) {
		calls++
		return rendered, renderErr
	}
	b.fetchSelenium = func(ctx context.Context, url string) (string, error) {
		calls++
		return "", errors.New("selenium unavailable")
	}
	return b, &calls
}

func hasProduct(html string) bool { return strings.Contains(html, "product") }

func TestFetchDocumentHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "text/html", r.Header.Get("Accept"))
		fmt.Fprint(w, "<html><body>product</body></html>")
	}))
	defer srv.Close()

	b, calls := newTestScraper(true, "", nil)
	html, err := b.FetchDocument(context.Background(), srv.URL, hasProduct)
	require.NoError(t, err)
	assert.Contains(t, html, "product")
	assert.Equal(t, 0, *calls, "browsers must not run when HTTP succeeds")
}

func TestFetchDocumentFallsBackToBrowser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>loading...</body></html>")
	}))
	defer srv.Close()

	b, calls := newTestScraper(true, "<html><body>product</body></html>", nil)
	html, err := b.FetchDocument(context.Background(), srv.URL, hasProduct)
	require.NoError(t, err)
	assert.Contains(t, html, "product")
	assert.Equal(t, 1, *calls)
}

func TestFetchDocumentReturnsHTTPBodyWhenNothingValidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>loading...</body></html>")
	}))
	defer srv.Close()

	b, calls := newTestScraper(true, "", errors.New("no chrome"))
	html, err := b.FetchDocument(context.Background(), srv.URL, hasProduct)
	require.NoError(t, err)
	assert.Contains(t, html, "loading...")
	assert.Equal(t, 2, *calls)
}

func TestFetchDocumentHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	t.Run("without fallback", func(t *testing.T) {
		b, calls := newTestScraper(false, "", nil)
		_, err := b.FetchDocument(context.Background(), srv.URL, hasProduct)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
		assert.Equal(t, 0, *calls)
	})

	t.Run("with failing fallback", func(t *testing.T) {
		b, _ := newTestScraper(true, "", errors.New("no chrome"))
		_, err := b.FetchDocument(context.Background(), srv.URL, hasProduct)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all strategies failed")
	})
}

func TestIsBlockedPage(t *testing.T) {
	assert.True(t, IsBlockedPage("<title>Robot Check</title>"))
	assert.True(t, IsBlockedPage("<html><head><title>Access Denied</title></head></html>"))
	assert.False(t, IsBlockedPage("<title>tonies® | Gruffalo</title>"))
	assert.False(t, IsBlockedPage(""))
}

func TestPortPool(t *testing.T) {
	pool := NewPortPool(5000, 2)

	a, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	b, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{5000, 5001}, []int{a, b})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	pool.Release(a)
	got, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a, got)

	pool.Release(a)
	pool.Release(b)
	pool.Release(b)
}
