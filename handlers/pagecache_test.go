package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func countingHandler(calls *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "response %d", *calls)
	}
}

func TestCachePageReplaysResponse(t *testing.T) {
	ClearPageCache()

	calls := 0
	h := CachePage(countingHandler(&calls))

	rr1 := httptest.NewRecorder()
	h(rr1, httptest.NewRequest(http.MethodGet, "/replay/?page=1", nil))

	rr2 := httptest.NewRecorder()
	h(rr2, httptest.NewRequest(http.MethodGet, "/replay/?page=1", nil))

	assert.Equal(t, 1, calls, "second request should be served from cache")
	assert.Equal(t, rr1.Body.String(), rr2.Body.String())
	assert.Equal(t, rr1.Header().Get("Content-Type"), rr2.Header().Get("Content-Type"))
}

func TestCachePageKeysByRequestURI(t *testing.T) {
	ClearPageCache()

	calls := 0
	h := CachePage(countingHandler(&calls))

	rr1 := httptest.NewRecorder()
	h(rr1, httptest.NewRequest(http.MethodGet, "/keyed/?page=1", nil))

	rr2 := httptest.NewRecorder()
	h(rr2, httptest.NewRequest(http.MethodGet, "/keyed/?page=2", nil))

	assert.Equal(t, 2, calls)
	assert.NotEqual(t, rr1.Body.String(), rr2.Body.String())
}

func TestClearPageCacheForcesRefresh(t *testing.T) {
	ClearPageCache()

	calls := 0
	h := CachePage(countingHandler(&calls))

	rr1 := httptest.NewRecorder()
	h(rr1, httptest.NewRequest(http.MethodGet, "/refresh/", nil))

	ClearPageCache()

	rr2 := httptest.NewRecorder()
	h(rr2, httptest.NewRequest(http.MethodGet, "/refresh/", nil))

	assert.Equal(t, 2, calls)
	assert.NotEqual(t, rr1.Body.String(), rr2.Body.String())
}

func TestCachePageSkipsNonGet(t *testing.T) {
	ClearPageCache()

	calls := 0
	h := CachePage(countingHandler(&calls))

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodPost, "/post/", nil))
	}

	assert.Equal(t, 2, calls)
}
