package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"yatube-server/db"
	"yatube-server/types"
	"yatube-server/ui"
)

func FollowIndexHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for FollowIndexHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	count, err := db.CountFollowedPosts(auth.User.Id)
	if err != nil {
		log.Printf("Error counting posts: %v\n", err)
		http.Error(w, "Error loading feed", http.StatusInternalServerError)
		return
	}

	content, err := loadPostPage(r, count, func(limit, offset int) ([]db.Post, error) {
		return db.ListFollowedPosts(auth.User.Id, limit, offset)
	})
	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		http.Error(w, "Error loading feed", http.StatusInternalServerError)
		return
	}

	ui.RenderPage(w, "follow.html", ui.PageData{
		Title:     "My feed",
		ActiveNav: "follow",
		User:      auth.User,
		Content:   content,
	})
}

func ProfileFollowHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ProfileFollowHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	author, ok := resolveAuthor(w, r, auth)
	if !ok {
		return
	}

	if err := db.CreateFollow(auth.User.Id, author.Id); err != nil {
		log.Printf("Error creating follow: %v\n", err)
		http.Error(w, "Error following author", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/follow/", http.StatusFound)
}

func ProfileUnfollowHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ProfileUnfollowHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	author, ok := resolveAuthor(w, r, auth)
	if !ok {
		return
	}

	if err := db.DeleteFollow(auth.User.Id, author.Id); err != nil {
		log.Printf("Error deleting follow: %v\n", err)
		http.Error(w, "Error unfollowing author", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/follow/", http.StatusFound)
}

func resolveAuthor(w http.ResponseWriter, r *http.Request, auth *types.ServerAuth) (*db.User, bool) {
	username := mux.Vars(r)["username"]

	author, err := db.GetUserByUsername(username)
	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return nil, false
	}

	if author == nil {
		notFound(w, auth)
		return nil, false
	}

	return author, true
}
