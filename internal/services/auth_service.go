package services

import (
	"errors"

	"membergate/internal/domain"
	"membergate/internal/repos"
)

var (
	ErrDuplicateEmail     = repos.ErrDuplicateEmail
	ErrUnknownEmail       = errors.New("no account with that email")
	ErrInvalidCredentials = errors.New("incorrect password")
)

type AuthService struct {
	Users    *repos.UserRepo
	Hasher   Hasher
	Sessions *SessionService
}

// Register creates the account and binds the session to it in the same
// request: the new user lands logged in, without re-entering the
// password. The ByEmail pre-check only produces the friendly failure;
// under a concurrent duplicate the store's unique constraint still wins
// and Create reports ErrDuplicateEmail.
func (s *AuthService) Register(sid, email, password, name string) (*domain.User, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repos.ErrNotFound) {
		return nil, err
	}
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	id, err := s.Users.Create(email, hash, name)
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.Establish(sid, id); err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Email: email, Name: name, Hash: hash}, nil
}

func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, repos.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, err
	}
	if !s.Hasher.Verify(u.Hash, password) {
		return nil, ErrInvalidCredentials
	}
	if err := s.Sessions.Establish(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Sessions.Terminate(sid)
}

// CurrentUser resolves the session token to a full user record.
// Anonymous callers get repos.ErrNotFound.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	id := s.Sessions.Resolve(sid)
	if !id.IsAuthenticated() {
		return nil, repos.ErrNotFound
	}
	return s.Users.ByID(id.UserID)
}
