package services

import (
	"errors"
	"fmt"

	"userbase/internal/domain"
	"userbase/internal/repos"
	"userbase/internal/token"
)

var (
	ErrEmailTaken = fmt.Errorf("email already registered: %w", domain.ErrConflict)
	// Identical error for unknown email and wrong password, so callers
	// cannot probe which emails are registered.
	ErrBadCreds = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)
	ErrUserGone = fmt.Errorf("user not found: %w", domain.ErrUnauthorized)
)

type AuthService struct {
	Users  *repos.UserRepo
	Tokens *token.Signer
}

// AuthResult is the register/login response payload.
type AuthResult struct {
	User        domain.User `json:"user"`
	AccessToken string      `json:"accessToken"`
}

func (s *AuthService) Register(name, email, password string) (*AuthResult, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var u domain.User
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	created, err := s.Users.Create(name, email, u.Hash)
	if err != nil {
		// Racing registration lands on the UNIQUE constraint.
		if errors.Is(err, domain.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	tok, err := s.Tokens.Sign(created.ID, created.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: created.Sanitized(), AccessToken: tok}, nil
}

func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrBadCreds
		}
		return nil, err
	}
	if !u.CheckPassword(password) {
		return nil, ErrBadCreds
	}

	tok, err := s.Tokens.Sign(u.ID, u.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u.Sanitized(), AccessToken: tok}, nil
}

// Profile resolves the authenticated user id. A token can outlive its
// user; deletion surfaces here as unauthorized on the next call.
func (s *AuthService) Profile(userID string) (*domain.User, error) {
	if userID == "" {
		return nil, ErrUserGone
	}
	u, err := s.Users.ByID(userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserGone
		}
		return nil, err
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}
