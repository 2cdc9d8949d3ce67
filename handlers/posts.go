package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"

	"yatube-server/db"
	"yatube-server/types"
	"yatube-server/ui"
)

type postListContent struct {
	Posts []db.Post
	Page  types.PageInfo
}

type groupPostsContent struct {
	postListContent
	Group *db.Group
}

type profileContent struct {
	postListContent
	Author    *db.User
	PostCount int
	Following bool
	IsSelf    bool
}

type postDetailContent struct {
	Post      *db.Post
	PostCount int
	Comments  []db.Comment
	Form      commentForm
	IsOwner   bool
}

type postFormContent struct {
	Form   postForm
	Groups []db.Group
	IsEdit bool
	Post   *db.Post
}

type postForm struct {
	Text    string
	GroupId string
	Errors  map[string]string
}

func (f *postForm) validate() {
	f.Errors = map[string]string{}
	if strings.TrimSpace(f.Text) == "" {
		f.Errors["text"] = "This field is required."
	}
}

func loadPostPage(r *http.Request, count int, list func(limit, offset int) ([]db.Post, error)) (postListContent, error) {
	paginator := types.Paginator{Count: count, PerPage: types.PostsPerPage}
	page := paginator.Page(types.ParsePageNumber(r.URL.Query().Get("page")))

	posts, err := list(page.Limit, page.Offset)
	if err != nil {
		return postListContent{}, err
	}

	return postListContent{Posts: posts, Page: page}, nil
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for IndexHandler")

	auth := optionalAuth(r)

	count, err := db.CountPosts()
	if err != nil {
		log.Printf("Error counting posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	content, err := loadPostPage(r, count, db.ListPosts)
	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	ui.RenderPage(w, "index.html", ui.PageData{
		Title:     "Latest posts",
		ActiveNav: "index",
		User:      pageUser(auth),
		Content:   content,
	})
}

func GroupPostsHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for GroupPostsHandler")

	auth := optionalAuth(r)
	slug := mux.Vars(r)["slug"]

	group, err := db.GetGroupBySlug(slug)
	if err != nil {
		log.Printf("Error getting group: %v\n", err)
		http.Error(w, "Error loading group", http.StatusInternalServerError)
		return
	}

	if group == nil {
		notFound(w, auth)
		return
	}

	count, err := db.CountPostsByGroup(group.Id)
	if err != nil {
		log.Printf("Error counting posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	listContent, err := loadPostPage(r, count, func(limit, offset int) ([]db.Post, error) {
		return db.ListPostsByGroup(group.Id, limit, offset)
	})
	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	ui.RenderPage(w, "group_list.html", ui.PageData{
		Title:   group.Title,
		User:    pageUser(auth),
		Content: groupPostsContent{postListContent: listContent, Group: group},
	})
}

func ProfileHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for ProfileHandler")

	auth := optionalAuth(r)
	username := mux.Vars(r)["username"]

	author, err := db.GetUserByUsername(username)
	if err != nil {
		log.Printf("Error getting user: %v\n", err)
		http.Error(w, "Error loading profile", http.StatusInternalServerError)
		return
	}

	if author == nil {
		notFound(w, auth)
		return
	}

	count, err := db.CountPostsByAuthor(author.Id)
	if err != nil {
		log.Printf("Error counting posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	listContent, err := loadPostPage(r, count, func(limit, offset int) ([]db.Post, error) {
		return db.ListPostsByAuthor(author.Id, limit, offset)
	})
	if err != nil {
		log.Printf("Error listing posts: %v\n", err)
		http.Error(w, "Error loading posts", http.StatusInternalServerError)
		return
	}

	// Following is only meaningful for authenticated viewers; anonymous
	// visitors always see false.
	following := false
	isSelf := false
	if auth != nil {
		isSelf = auth.User.Id == author.Id
		if !isSelf {
			following, err = db.IsFollowing(auth.User.Id, author.Id)
			if err != nil {
				log.Printf("Error checking follow: %v\n", err)
				http.Error(w, "Error loading profile", http.StatusInternalServerError)
				return
			}
		}
	}

	ui.RenderPage(w, "profile.html", ui.PageData{
		Title: "Posts by " + author.Username,
		User:  pageUser(auth),
		Content: profileContent{
			postListContent: listContent,
			Author:          author,
			PostCount:       count,
			Following:       following,
			IsSelf:          isSelf,
		},
	})
}

func PostDetailHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for PostDetailHandler")

	auth := optionalAuth(r)

	post, ok := resolvePost(w, r, auth)
	if !ok {
		return
	}

	postCount, err := db.CountPostsByAuthor(post.AuthorId)
	if err != nil {
		log.Printf("Error counting posts: %v\n", err)
		http.Error(w, "Error loading post", http.StatusInternalServerError)
		return
	}

	comments, err := db.ListCommentsForPost(post.Id)
	if err != nil {
		log.Printf("Error listing comments: %v\n", err)
		http.Error(w, "Error loading comments", http.StatusInternalServerError)
		return
	}

	isOwner := auth != nil && auth.User.Id == post.AuthorId

	ui.RenderPage(w, "post_detail.html", ui.PageData{
		Title: ui.Truncate(post.Text, 30),
		User:  pageUser(auth),
		Content: postDetailContent{
			Post:      post,
			PostCount: postCount,
			Comments:  comments,
			IsOwner:   isOwner,
		},
	})
}

func PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for PostCreateHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	groups, err := db.ListGroups()
	if err != nil {
		log.Printf("Error listing groups: %v\n", err)
		http.Error(w, "Error loading form", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		renderPostForm(w, auth, postForm{}, groups, nil)
		return
	}

	form, groupId, imagePath, ok := parsePostForm(w, r)
	if !ok {
		return
	}

	if len(form.Errors) > 0 {
		renderPostForm(w, auth, form, groups, nil)
		return
	}

	post := &db.Post{
		Text:     form.Text,
		AuthorId: auth.User.Id,
		GroupId:  groupId,
		Image:    imagePath,
	}

	err = db.WithTx(r.Context(), "create post", func(tx *sqlx.Tx) error {
		return db.CreatePost(post, tx)
	})
	if err != nil {
		log.Printf("Error creating post: %v\n", err)
		http.Error(w, "Error creating post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/profile/"+auth.User.Username+"/", http.StatusSeeOther)
}

func PostEditHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("Received request for PostEditHandler")

	auth := authenticate(w, r)
	if auth == nil {
		return
	}

	post, ok := resolvePost(w, r, auth)
	if !ok {
		return
	}

	// Non-owners get bounced to the detail page, not an error.
	if post.AuthorId != auth.User.Id {
		http.Redirect(w, r, fmt.Sprintf("/posts/%d/", post.Id), http.StatusFound)
		return
	}

	groups, err := db.ListGroups()
	if err != nil {
		log.Printf("Error listing groups: %v\n", err)
		http.Error(w, "Error loading form", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodGet {
		form := postForm{Text: post.Text}
		if post.GroupId != nil {
			form.GroupId = strconv.FormatInt(*post.GroupId, 10)
		}
		renderPostForm(w, auth, form, groups, post)
		return
	}

	form, groupId, imagePath, ok := parsePostForm(w, r)
	if !ok {
		return
	}

	if len(form.Errors) > 0 {
		renderPostForm(w, auth, form, groups, post)
		return
	}

	post.Text = form.Text
	post.GroupId = groupId
	if imagePath != nil {
		post.Image = imagePath
	}

	if err := db.UpdatePost(post); err != nil {
		log.Printf("Error updating post: %v\n", err)
		http.Error(w, "Error updating post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/posts/%d/", post.Id), http.StatusSeeOther)
}

// resolvePost parses the {postId} route var and loads the post, rendering 404
// on a miss. The bool reports whether the caller should continue.
func resolvePost(w http.ResponseWriter, r *http.Request, auth *types.ServerAuth) (*db.Post, bool) {
	postId, err := strconv.ParseInt(mux.Vars(r)["postId"], 10, 64)
	if err != nil {
		notFound(w, auth)
		return nil, false
	}

	post, err := db.GetPost(postId)
	if err != nil {
		log.Printf("Error getting post: %v\n", err)
		http.Error(w, "Error loading post", http.StatusInternalServerError)
		return nil, false
	}

	if post == nil {
		notFound(w, auth)
		return nil, false
	}

	return post, true
}

// parsePostForm reads a submitted create/edit form, returning the form with
// any validation errors filled in, the resolved optional group id, and the
// stored image path (nil when nothing was uploaded). The bool reports whether
// the request could be parsed at all.
func parsePostForm(w http.ResponseWriter, r *http.Request) (postForm, *int64, *string, bool) {
	var form postForm

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return form, nil, nil, false
		}
	}

	form.Text = r.FormValue("text")
	form.GroupId = r.FormValue("group")
	form.validate()

	var groupId *int64
	if form.GroupId != "" {
		id, err := strconv.ParseInt(form.GroupId, 10, 64)
		if err != nil {
			form.Errors["group"] = "Select a valid group."
		} else {
			group, err := db.GetGroup(id)
			if err != nil {
				log.Printf("Error getting group: %v\n", err)
				http.Error(w, "Error loading form", http.StatusInternalServerError)
				return form, nil, nil, false
			}
			if group == nil {
				form.Errors["group"] = "Select a valid group."
			} else {
				groupId = &group.Id
			}
		}
	}

	var imagePath *string
	if r.MultipartForm != nil {
		path, imageErr, err := saveUploadedImage(r)
		if err != nil {
			log.Printf("Error saving image: %v\n", err)
			http.Error(w, "Error saving image", http.StatusInternalServerError)
			return form, nil, nil, false
		}
		if imageErr != "" {
			form.Errors["image"] = imageErr
		}
		imagePath = path
	}

	return form, groupId, imagePath, true
}

func renderPostForm(w http.ResponseWriter, auth *types.ServerAuth, form postForm, groups []db.Group, post *db.Post) {
	title := "New post"
	isEdit := post != nil
	if isEdit {
		title = "Edit post"
	}

	ui.RenderPage(w, "create_post.html", ui.PageData{
		Title:     title,
		ActiveNav: "create",
		User:      pageUser(auth),
		Content: postFormContent{
			Form:   form,
			Groups: groups,
			IsEdit: isEdit,
			Post:   post,
		},
	})
}
