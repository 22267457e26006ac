package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost used for every stored password.
const HashCost = 10

// User is the single persisted entity. Timestamps are RFC3339Nano UTC
// strings, generated in Go so updated_at can be refreshed on mutation.
type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Hash      string `db:"password_hash" json:"-"`
	CreatedAt string `db:"created_at" json:"createdAt"`
	UpdatedAt string `db:"updated_at" json:"updatedAt"`
}

// Now returns the timestamp format used for created_at/updated_at.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// SetPassword replaces the stored hash with a bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), HashCost)
	if err != nil {
		return err
	}
	u.Hash = string(h)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
// A malformed stored hash simply fails the check.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(plain)) == nil
}

// Sanitized strips the password hash so the value is safe to hand
// to callers outside the auth/persistence boundary.
func (u User) Sanitized() User {
	u.Hash = ""
	return u
}
