package db

import (
	"time"
)

type User struct {
	Id           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type AuthToken struct {
	Id        string     `db:"id"`
	UserId    string     `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type Group struct {
	Id          int64     `db:"id"`
	Title       string    `db:"title"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Post rows are always selected joined to users (and optionally groups), so
// the author's username and group title/slug ride along as extra columns.
type Post struct {
	Id       int64     `db:"id"`
	Text     string    `db:"text"`
	PubDate  time.Time `db:"pub_date"`
	AuthorId string    `db:"author_id"`
	GroupId  *int64    `db:"group_id"`
	Image    *string   `db:"image"`

	AuthorUsername string  `db:"author_username"`
	GroupTitle     *string `db:"group_title"`
	GroupSlug      *string `db:"group_slug"`
}

type Comment struct {
	Id       int64     `db:"id"`
	Text     string    `db:"text"`
	Created  time.Time `db:"created"`
	AuthorId string    `db:"author_id"`
	PostId   *int64    `db:"post_id"`

	AuthorUsername string `db:"author_username"`
}

type Follow struct {
	Id        int64     `db:"id"`
	UserId    string    `db:"user_id"`
	AuthorId  string    `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
}
