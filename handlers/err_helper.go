package handlers

import (
	"net/http"

	"yatube-server/db"
	"yatube-server/types"
	"yatube-server/ui"
)

func pageUser(auth *types.ServerAuth) *db.User {
	if auth == nil {
		return nil
	}
	return auth.User
}

// notFound renders the 404 page. Lookups by slug, username, or id that miss
// all land here; there is no distinction between never-existed and deleted.
func notFound(w http.ResponseWriter, auth *types.ServerAuth) {
	ui.RenderPageStatus(w, http.StatusNotFound, "404.html", ui.PageData{
		Title: "Not found",
		User:  pageUser(auth),
	})
}
