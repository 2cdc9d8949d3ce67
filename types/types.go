package types

import (
	"yatube-server/db"
)

type ServerAuth struct {
	AuthToken *db.AuthToken
	User      *db.User
}
