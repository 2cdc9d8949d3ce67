package db

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const tokenExpirationDays = 90

func hashToken(token uuid.UUID) string {
	bytes := token[:]
	hashBytes := sha256.Sum256(bytes)
	return hex.EncodeToString(hashBytes[:])
}

func CreateAuthToken(userId string, tx *sqlx.Tx) (string, error) {
	uid := uuid.New()
	hash := hashToken(uid)

	_, err := tx.Exec("INSERT INTO auth_tokens (user_id, token_hash) VALUES ($1, $2)", userId, hash)

	if err != nil {
		return "", fmt.Errorf("error creating auth token: %v", err)
	}

	return uid.String(), nil
}

func ValidateAuthToken(token string) (*AuthToken, error) {
	uid, err := uuid.Parse(token)

	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	hash := hashToken(uid)

	var authToken AuthToken
	err = Conn.Get(&authToken, "SELECT * FROM auth_tokens WHERE token_hash = $1 AND deleted_at IS NULL AND created_at > $2", hash, time.Now().AddDate(0, 0, -tokenExpirationDays))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invalid token")
		}

		return nil, fmt.Errorf("error validating token: %v", err)
	}

	return &authToken, nil
}

func ClearAuthToken(tokenId string) error {
	_, err := Conn.Exec("UPDATE auth_tokens SET deleted_at = NOW() WHERE id = $1", tokenId)

	if err != nil {
		return fmt.Errorf("error clearing auth token: %v", err)
	}

	return nil
}
