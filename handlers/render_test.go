package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAboutAuthorHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	AboutAuthorHandler(rr, httptest.NewRequest(http.MethodGet, "/about/author/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>About the author - Yatube</title>")
	assert.Contains(t, body, "<h1>About the author</h1>")
}

func TestAboutTechHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	AboutTechHandler(rr, httptest.NewRequest(http.MethodGet, "/about/tech/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<title>Technologies - Yatube</title>")
	assert.Contains(t, body, "PostgreSQL")
}

func TestLoginPageCarriesNextField(t *testing.T) {
	rr := httptest.NewRecorder()
	LoginHandler(rr, httptest.NewRequest(http.MethodGet, "/auth/login/?next=/create/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "<h1>Log in</h1>")
	assert.Contains(t, body, `name="next" value="/create/"`)
}

func TestSignupPageRenders(t *testing.T) {
	rr := httptest.NewRecorder()
	SignUpHandler(rr, httptest.NewRequest(http.MethodGet, "/auth/signup/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "<h1>Sign up</h1>")
}

func TestNotFoundPage(t *testing.T) {
	rr := httptest.NewRecorder()
	notFound(rr, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Page not found")
	// anonymous layout shows the login link
	assert.Contains(t, body, `href="/auth/login/"`)
}
