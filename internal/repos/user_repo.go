package repos

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"userbase/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

// UserPatch carries the optional fields of a partial update.
// Nil means "leave unchanged".
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Create inserts a new user. The UNIQUE column turns a duplicate email
// into domain.ErrConflict even when two inserts race.
func (r *UserRepo) Create(name, email, passwordHash string) (*domain.User, error) {
	now := domain.Now()
	u := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Hash:      passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := r.DB.Exec(`
		INSERT INTO users(id,name,email,password_hash,created_at,updated_at)
		VALUES(?,?,?,?,?,?)
	`, u.ID, u.Name, u.Email, u.Hash, u.CreatedAt, u.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,email,password_hash,created_at,updated_at FROM users WHERE id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,email,password_hash,created_at,updated_at FROM users WHERE email=?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) All() ([]domain.User, error) {
	var users []domain.User
	err := r.DB.Select(&users, `SELECT id,name,email,password_hash,created_at,updated_at FROM users ORDER BY created_at`)
	return users, err
}

// Update applies the non-nil fields of patch and refreshes updated_at.
func (r *UserRepo) Update(id string, patch UserPatch) (*domain.User, error) {
	u, err := r.ByID(id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.Hash = *patch.PasswordHash
	}
	u.UpdatedAt = domain.Now()

	res, err := r.DB.Exec(`
		UPDATE users SET name=?, email=?, password_hash=?, updated_at=?
		WHERE id=?
	`, u.Name, u.Email, u.Hash, u.UpdatedAt, u.ID)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Deleted between the read and the write.
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *UserRepo) Delete(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
