package services

import (
	"userbase/internal/domain"
	"userbase/internal/repos"
)

// UserService is the administrative CRUD surface, independent of the
// self-registration flow. Email uniqueness is the store's job; this
// path does not re-check it (the constraint propagates as a conflict).
type UserService struct {
	Users *repos.UserRepo
}

// UserUpdate carries the optional fields of an update request.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

func (s *UserService) ListAll() ([]domain.User, error) {
	users, err := s.Users.All()
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	return out, nil
}

func (s *UserService) GetByID(id string) (*domain.User, error) {
	u, err := s.Users.ByID(id)
	if err != nil {
		return nil, err
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Create(name, email, password string) (*domain.User, error) {
	var tmp domain.User
	if err := tmp.SetPassword(password); err != nil {
		return nil, err
	}
	u, err := s.Users.Create(name, email, tmp.Hash)
	if err != nil {
		return nil, err
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Update(id string, in UserUpdate) (*domain.User, error) {
	patch := repos.UserPatch{Name: in.Name, Email: in.Email}
	if in.Password != nil {
		var tmp domain.User
		if err := tmp.SetPassword(*in.Password); err != nil {
			return nil, err
		}
		patch.PasswordHash = &tmp.Hash
	}
	u, err := s.Users.Update(id, patch)
	if err != nil {
		return nil, err
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Remove(id string) error {
	return s.Users.Delete(id)
}
