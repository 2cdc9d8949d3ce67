package db

import (
	"fmt"
)

func CreateComment(postId int64, authorId, text string) (*Comment, error) {
	comment := &Comment{
		Text:     text,
		AuthorId: authorId,
		PostId:   &postId,
	}

	err := Conn.QueryRow("INSERT INTO comments (text, author_id, post_id) VALUES ($1, $2, $3) RETURNING id, created", text, authorId, postId).Scan(&comment.Id, &comment.Created)

	if err != nil {
		return nil, fmt.Errorf("error creating comment: %v", err)
	}

	return comment, nil
}

func ListCommentsForPost(postId int64) ([]Comment, error) {
	var comments []Comment
	err := Conn.Select(&comments, "SELECT c.id, c.text, c.created, c.author_id, c.post_id, u.username AS author_username FROM comments c JOIN users u ON c.author_id = u.id WHERE c.post_id = $1 ORDER BY c.created DESC, c.id DESC", postId)

	if err != nil {
		return nil, fmt.Errorf("error listing comments: %v", err)
	}

	return comments, nil
}
