package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const postColumns = "p.id, p.text, p.pub_date, p.author_id, p.group_id, p.image, u.username AS author_username, g.title AS group_title, g.slug AS group_slug"

const postFrom = "FROM posts p JOIN users u ON p.author_id = u.id LEFT JOIN groups g ON p.group_id = g.id"

func selectPosts(where string, limit, offset int, args ...interface{}) ([]Post, error) {
	qs := "SELECT " + postColumns + " " + postFrom
	if where != "" {
		qs += " WHERE " + where
	}
	qs += fmt.Sprintf(" ORDER BY p.pub_date DESC, p.id DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var posts []Post
	err := Conn.Select(&posts, qs, args...)

	if err != nil {
		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	return posts, nil
}

func countPosts(where string, args ...interface{}) (int, error) {
	qs := "SELECT COUNT(*) FROM posts p"
	if where != "" {
		qs += " WHERE " + where
	}

	var count int
	err := Conn.QueryRow(qs, args...).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("error counting posts: %v", err)
	}

	return count, nil
}

func GetPost(postId int64) (*Post, error) {
	var post Post
	err := Conn.Get(&post, "SELECT "+postColumns+" "+postFrom+" WHERE p.id = $1", postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting post: %v", err)
	}

	return &post, nil
}

func ListPosts(limit, offset int) ([]Post, error) {
	return selectPosts("", limit, offset)
}

func CountPosts() (int, error) {
	return countPosts("")
}

func ListPostsByGroup(groupId int64, limit, offset int) ([]Post, error) {
	return selectPosts("p.group_id = $1", limit, offset, groupId)
}

func CountPostsByGroup(groupId int64) (int, error) {
	return countPosts("p.group_id = $1", groupId)
}

func ListPostsByAuthor(authorId string, limit, offset int) ([]Post, error) {
	return selectPosts("p.author_id = $1", limit, offset, authorId)
}

func CountPostsByAuthor(authorId string) (int, error) {
	return countPosts("p.author_id = $1", authorId)
}

// ListFollowedPosts returns posts authored by any user the given user follows.
func ListFollowedPosts(userId string, limit, offset int) ([]Post, error) {
	return selectPosts("p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)", limit, offset, userId)
}

func CountFollowedPosts(userId string) (int, error) {
	return countPosts("p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)", userId)
}

func CreatePost(post *Post, tx *sqlx.Tx) error {
	err := tx.QueryRow("INSERT INTO posts (text, author_id, group_id, image) VALUES ($1, $2, $3, $4) RETURNING id, pub_date", post.Text, post.AuthorId, post.GroupId, post.Image).Scan(&post.Id, &post.PubDate)

	if err != nil {
		return fmt.Errorf("error creating post: %v", err)
	}

	return nil
}

func UpdatePost(post *Post) error {
	_, err := Conn.Exec("UPDATE posts SET text = $1, group_id = $2, image = $3 WHERE id = $4", post.Text, post.GroupId, post.Image, post.Id)

	if err != nil {
		return fmt.Errorf("error updating post: %v", err)
	}

	return nil
}

func DeletePost(postId int64) error {
	_, err := Conn.Exec("DELETE FROM posts WHERE id = $1", postId)

	if err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}

	return nil
}
