package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"yatube-server/db"
)

type commentForm struct {
	Text string
}

// AddCommentHandler attaches a comment to a post. It redirects back to the
// post detail page whether or not the comment was valid; an empty comment is
// dropped without any error surfaced.
func AddCommentHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for AddCommentHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	post, ok := resolvePost(w, r, auth)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	text := r.FormValue("text")

	if strings.TrimSpace(text) != "" {
		if _, err := db.CreateComment(post.Id, auth.User.Id, text); err != nil {
			log.Printf("Error creating comment: %v\n", err)
			http.Error(w, "Error creating comment", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d/", post.Id), http.StatusSeeOther)
}
