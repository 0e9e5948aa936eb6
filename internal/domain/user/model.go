package user

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"travelmate/internal/domain/document"
)

// User - учетная запись. Логин хранится только в виде хэша.
type User struct {
	ID string
	// Username - SHA-256 логина в hex
	Username string
	// Password - bcrypt-хэш, у старых записей SHA-256 в hex
	Password string
}

// HashLogin возвращает SHA-256 логина в нижнем регистре hex
func HashLogin(login string) string {
	return sha256Hex(login)
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func FromRecord(rec document.Record) User {
	id := rec.Text("id")
	if id == "" {
		id = rec.ID
	}
	return User{
		ID:       id,
		Username: rec.Text("username"),
		Password: rec.Text("password"),
	}
}

func (u User) Fields() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"password": u.Password,
	}
}

func (u User) legacyHash() bool {
	return !strings.HasPrefix(u.Password, "$2")
}
