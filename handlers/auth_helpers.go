package handlers

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"yatube-server/db"
	"yatube-server/types"
)

const sessionCookieName = "session_token"
const sessionCookieMaxAge = 90 * 24 * time.Hour

// authenticate resolves the session cookie to a user. On failure it writes a
// redirect to the login page (carrying the original path in ?next=) and
// returns nil, so handlers can bail out immediately.
func authenticate(w http.ResponseWriter, r *http.Request) *types.ServerAuth {
	cookie, err := r.Cookie(sessionCookieName)

	if err != nil || cookie.Value == "" {
		redirectToLogin(w, r)
		return nil
	}

	authToken, err := db.ValidateAuthToken(cookie.Value)

	if err != nil {
		log.Printf("error validating auth token: %v\n", err)
		clearSessionCookie(w)
		redirectToLogin(w, r)
		return nil
	}

	user, err := db.GetUser(authToken.UserId)

	if err != nil {
		log.Printf("error getting user: %v\n", err)
		http.Error(w, "error getting user", http.StatusInternalServerError)
		return nil
	}

	return &types.ServerAuth{
		AuthToken: authToken,
		User:      user,
	}
}

// optionalAuth resolves the session cookie to a user if present. Anonymous
// requests get nil without anything written to the response.
func optionalAuth(r *http.Request) *types.ServerAuth {
	cookie, err := r.Cookie(sessionCookieName)

	if err != nil || cookie.Value == "" {
		return nil
	}

	authToken, err := db.ValidateAuthToken(cookie.Value)

	if err != nil {
		return nil
	}

	user, err := db.GetUser(authToken.UserId)

	if err != nil {
		log.Printf("error getting user: %v\n", err)
		return nil
	}

	return &types.ServerAuth{
		AuthToken: authToken,
		User:      user,
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	params := url.Values{"next": {r.URL.RequestURI()}}
	http.Redirect(w, r, "/auth/login/?"+params.Encode(), http.StatusFound)
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
