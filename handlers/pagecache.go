package handlers

import (
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
)

const pageCacheTTL = 20 * time.Second

var pageCache = cache.New(pageCacheTTL, 5*time.Minute)

type cachedPage struct {
	status int
	header http.Header
	body   []byte
}

type pageRecorder struct {
	status int
	header http.Header
	body   []byte
}

func newPageRecorder() *pageRecorder {
	return &pageRecorder{status: http.StatusOK, header: http.Header{}}
}

func (rec *pageRecorder) Header() http.Header {
	return rec.header
}

func (rec *pageRecorder) WriteHeader(status int) {
	rec.status = status
}

func (rec *pageRecorder) Write(b []byte) (int, error) {
	rec.body = append(rec.body, b...)
	return len(b), nil
}

// CachePage caches full GET responses for pageCacheTTL, keyed by the request
// URI. Within the window identical requests replay the stored bytes without
// hitting the wrapped handler; expiry is time-based only, so mutations made
// in the meantime don't show up until the entry lapses.
func CachePage(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next(w, r)
			return
		}

		key := r.URL.RequestURI()

		if v, ok := pageCache.Get(key); ok {
			writeCachedPage(w, v.(*cachedPage))
			return
		}

		rec := newPageRecorder()
		next(rec, r)

		page := &cachedPage{
			status: rec.status,
			header: rec.header,
			body:   rec.body,
		}

		pageCache.SetDefault(key, page)
		writeCachedPage(w, page)
	}
}

func writeCachedPage(w http.ResponseWriter, page *cachedPage) {
	for k, vals := range page.header {
		for _, v := range vals {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(page.status)
	w.Write(page.body)
}

// ClearPageCache drops all cached pages. Production relies on TTL expiry
// only; this exists for tests.
func ClearPageCache() {
	pageCache.Flush()
}
