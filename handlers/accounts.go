package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"yatube-server/db"
	"yatube-server/ui"
)

type accountForm struct {
	Username string
	Email    string
	Errors   map[string]string
}

type loginContent struct {
	Form accountForm
	Next string
}

type signupContent struct {
	Form accountForm
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for LoginHandler")

	if r.Method == http.MethodGet {
		renderLogin(w, accountForm{}, r.URL.Query().Get("next"))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	form := accountForm{
		Username: r.FormValue("username"),
		Errors:   map[string]string{},
	}
	next := r.FormValue("next")

	user, err := db.GetUserByUsername(form.Username)
	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	if user == nil || !db.ValidatePassword(user, r.FormValue("password")) {
		form.Errors["credentials"] = "Invalid username or password."
		renderLogin(w, form, next)
		return
	}

	var token string
	err = db.WithTx(r.Context(), "sign in", func(tx *sqlx.Tx) error {
		token, err = db.CreateAuthToken(user.Id, tx)
		return err
	})
	if err != nil {
		log.Printf("Error creating auth token: %v\n", err)
		http.Error(w, "Error signing in", http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

func SignUpHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for SignUpHandler")

	if r.Method == http.MethodGet {
		renderSignup(w, accountForm{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	form := accountForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Errors:   map[string]string{},
	}
	password := r.FormValue("password")

	if form.Username == "" {
		form.Errors["username"] = "This field is required."
	}
	if form.Email == "" || !strings.Contains(form.Email, "@") {
		form.Errors["email"] = "Enter a valid email address."
	}
	if len(password) < 8 {
		form.Errors["password"] = "Password must be at least 8 characters."
	}

	if len(form.Errors) > 0 {
		renderSignup(w, form)
		return
	}

	var token string
	err := db.WithTx(r.Context(), "sign up", func(tx *sqlx.Tx) error {
		user, err := db.CreateUser(form.Username, form.Email, password, tx)
		if err != nil {
			return err
		}

		token, err = db.CreateAuthToken(user.Id, tx)
		return err
	})
	if err != nil {
		// CreateUser maps unique violations to a user-facing message.
		log.Printf("Error creating user: %v\n", err)
		form.Errors["username"] = "Username or email already taken."
		renderSignup(w, form)
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for LogoutHandler")

	auth := optionalAuth(r)
	if auth != nil {
		if err := db.ClearAuthToken(auth.AuthToken.Id); err != nil {
			log.Printf("Error clearing auth token: %v\n", err)
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// safeNext only honors same-site relative redirect targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func renderLogin(w http.ResponseWriter, form accountForm, next string) {
	ui.RenderPage(w, "login.html", ui.PageData{
		Title:   "Log in",
		Content: loginContent{Form: form, Next: next},
	})
}

func renderSignup(w http.ResponseWriter, form accountForm) {
	ui.RenderPage(w, "signup.html", ui.PageData{
		Title:   "Sign up",
		Content: signupContent{Form: form},
	})
}
