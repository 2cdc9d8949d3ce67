package db

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

func GetUser(userId string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE id = $1", userId)

	if err != nil {
		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func GetUserByUsername(username string) (*User, error) {
	var user User
	err := Conn.Get(&user, "SELECT * FROM users WHERE username = $1", username)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting user: %v", err)
	}

	return &user, nil
}

func CreateUser(username, email, password string, tx *sqlx.Tx) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	err = tx.QueryRow("INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at", username, email, string(hash)).Scan(&user.Id, &user.CreatedAt)

	if err != nil {
		if IsNonUniqueErr(err) {
			return nil, fmt.Errorf("username or email already taken")
		}

		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

func DeleteUser(userId string) error {
	_, err := Conn.Exec("DELETE FROM users WHERE id = $1", userId)

	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}

	return nil
}

func ValidatePassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
