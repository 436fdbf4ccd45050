package api

import (
	"net/http"
	"sync"
	"time"
)

// dashboardCacheKey is deliberately a single fixed name: the one-admin design
// shares the same cached snapshot across every viewer.
const dashboardCacheKey = "dashboard_page"

// cachedPage is one stored render.
type cachedPage struct {
	status      int
	contentType string
	body        []byte
	expiresAt   time.Time
}

// pageCache replays a rendered page for repeat GETs within its TTL. Entries
// are never invalidated by writes; a mutation may be invisible on the cached
// page for up to the TTL.
type pageCache struct {
	key string
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]cachedPage
}

func newPageCache(key string, ttl time.Duration) *pageCache {
	return &pageCache{
		key:     key,
		ttl:     ttl,
		entries: make(map[string]cachedPage),
	}
}

func (c *pageCache) get(key string) (cachedPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return cachedPage{}, false
	}
	return entry, true
}

func (c *pageCache) set(key string, page cachedPage) {
	page.expiresAt = time.Now().Add(c.ttl)

	c.mu.Lock()
	c.entries[key] = page
	c.mu.Unlock()
}

// Reset drops every stored render. No handler calls this; it exists for tests.
func (c *pageCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[string]cachedPage)
	c.mu.Unlock()
}

type captureResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        []byte
}

func (w *captureResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *captureResponseWriter) Write(data []byte) (int, error) {
	w.body = append(w.body, data...)
	return w.ResponseWriter.Write(data)
}

// middleware serves GETs from the cache and stores fresh 200 renders under
// the cache's fixed key.
func (c *pageCache) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		if entry, ok := c.get(c.key); ok {
			w.Header().Set("Content-Type", entry.contentType)
			w.Header().Set("X-Page-Cache", "hit")
			w.WriteHeader(entry.status)
			w.Write(entry.body)
			return
		}

		capture := &captureResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(capture, r)

		if capture.status != http.StatusOK || len(capture.body) == 0 {
			return
		}

		c.set(c.key, cachedPage{
			status:      capture.status,
			contentType: capture.Header().Get("Content-Type"),
			body:        append([]byte(nil), capture.body...),
		})
	})
}
