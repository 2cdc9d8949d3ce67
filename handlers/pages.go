package handlers

import (
	"net/http"

	"yatube-server/ui"
)

func AboutAuthorHandler(w http.ResponseWriter, r *http.Request) {
	ui.RenderPage(w, "about_author.html", ui.PageData{
		Title:     "About the author",
		ActiveNav: "about_author",
		User:      pageUser(optionalAuth(r)),
	})
}

func AboutTechHandler(w http.ResponseWriter, r *http.Request) {
	ui.RenderPage(w, "about_tech.html", ui.PageData{
		Title:     "Technologies",
		ActiveNav: "about_tech",
		User:      pageUser(optionalAuth(r)),
	})
}
