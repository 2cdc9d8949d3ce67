package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"yatube-server/handlers"
)

func InitRoutes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "OK")
	})

	r.HandleFunc("/", handlers.CachePage(handlers.IndexHandler)).Methods("GET")

	r.HandleFunc("/group/{slug}/", handlers.GroupPostsHandler).Methods("GET")

	r.HandleFunc("/profile/{username}/", handlers.ProfileHandler).Methods("GET")
	r.HandleFunc("/profile/{username}/follow/", handlers.ProfileFollowHandler).Methods("GET")
	r.HandleFunc("/profile/{username}/unfollow/", handlers.ProfileUnfollowHandler).Methods("GET")

	r.HandleFunc("/create/", handlers.PostCreateHandler).Methods("GET", "POST")
	r.HandleFunc("/posts/{postId}/", handlers.PostDetailHandler).Methods("GET")
	r.HandleFunc("/posts/{postId}/edit/", handlers.PostEditHandler).Methods("GET", "POST")
	r.HandleFunc("/posts/{postId}/comment/", handlers.AddCommentHandler).Methods("POST")

	r.HandleFunc("/follow/", handlers.FollowIndexHandler).Methods("GET")

	r.HandleFunc("/auth/signup/", handlers.SignUpHandler).Methods("GET", "POST")
	r.HandleFunc("/auth/login/", handlers.LoginHandler).Methods("GET", "POST")
	r.HandleFunc("/auth/logout/", handlers.LogoutHandler).Methods("GET")

	r.HandleFunc("/about/author/", handlers.AboutAuthorHandler).Methods("GET")
	r.HandleFunc("/about/tech/", handlers.AboutTechHandler).Methods("GET")

	r.PathPrefix("/media/").Handler(http.StripPrefix("/media/", http.FileServer(http.Dir(handlers.MediaRoot()))))

	return r
}
