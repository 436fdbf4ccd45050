package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countingHandler(calls *int, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintf(w, "render %d", *calls)
	})
}

func TestPageCacheReplaysWithinTTL(t *testing.T) {
	cache := newPageCache(dashboardCacheKey, time.Minute)

	var calls int
	handler := cache.middleware(countingHandler(&calls, http.StatusOK))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, 1, calls)
	require.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	require.Equal(t, "hit", second.Header().Get("X-Page-Cache"))
	require.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
}

func TestPageCacheExpires(t *testing.T) {
	cache := newPageCache(dashboardCacheKey, 10*time.Millisecond)

	var calls int
	handler := cache.middleware(countingHandler(&calls, http.StatusOK))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	time.Sleep(25 * time.Millisecond)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, 2, calls)
}

func TestPageCacheReset(t *testing.T) {
	cache := newPageCache(dashboardCacheKey, time.Minute)

	var calls int
	handler := cache.middleware(countingHandler(&calls, http.StatusOK))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	cache.Reset()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, 2, calls)
}

func TestPageCacheSkipsErrorResponses(t *testing.T) {
	cache := newPageCache(dashboardCacheKey, time.Minute)

	var calls int
	handler := cache.middleware(countingHandler(&calls, http.StatusInternalServerError))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, 2, calls)
}

func TestPageCacheIgnoresNonGET(t *testing.T) {
	cache := newPageCache(dashboardCacheKey, time.Minute)

	var calls int
	handler := cache.middleware(countingHandler(&calls, http.StatusOK))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/dashboard", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/admin/dashboard", nil))

	require.Equal(t, 2, calls)
}
