package repos

import (
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"userbase/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Demo users (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	// Email uniqueness lives here, not in application code: two racing
	// registrations hit the constraint, never a check-then-insert window.
	schema := `
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures the two demo accounts exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	seeds := []struct {
		Name, Email, Password string
	}{
		{"Alice Johnson", "alice@demo.test", "Passw0rd!"},
		{"Bob Smith", "bob@demo.test", "Passw0rd!"},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, s := range seeds {
		u := domain.User{ID: uuid.NewString(), Name: s.Name, Email: s.Email}
		if err := u.SetPassword(s.Password); err != nil {
			return err
		}
		now := domain.Now()
		if _, err := tx.Exec(`
			INSERT INTO users(id,name,email,password_hash,created_at,updated_at)
			VALUES(?,?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, u.ID, u.Name, u.Email, u.Hash, now, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("[seed] demo users ensured")
	return nil
}
