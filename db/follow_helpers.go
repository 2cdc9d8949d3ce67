package db

import (
	"fmt"
	"log"
)

func IsFollowing(userId, authorId string) (bool, error) {
	var count int
	err := Conn.QueryRow("SELECT COUNT(*) FROM follows WHERE user_id = $1 AND author_id = $2", userId, authorId).Scan(&count)

	if err != nil {
		return false, fmt.Errorf("error checking follow: %v", err)
	}

	return count > 0, nil
}

// CreateFollow adds a follow edge unless the target is the follower or the
// edge already exists. The unique constraint on (user_id, author_id) closes
// the race between the existence check and the insert; a violation from a
// concurrent duplicate is treated as "already following".
func CreateFollow(userId, authorId string) error {
	if userId == authorId {
		return nil
	}

	following, err := IsFollowing(userId, authorId)

	if err != nil {
		return err
	}

	if following {
		return nil
	}

	_, err = Conn.Exec("INSERT INTO follows (user_id, author_id) VALUES ($1, $2)", userId, authorId)

	if err != nil {
		if IsNonUniqueErr(err) {
			log.Printf("duplicate follow suppressed: %s -> %s", userId, authorId)
			return nil
		}

		return fmt.Errorf("error creating follow: %v", err)
	}

	return nil
}

func DeleteFollow(userId, authorId string) error {
	_, err := Conn.Exec("DELETE FROM follows WHERE user_id = $1 AND author_id = $2", userId, authorId)

	if err != nil {
		return fmt.Errorf("error deleting follow: %v", err)
	}

	return nil
}
