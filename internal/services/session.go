package services

import (
	"membergate/internal/domain"
	"membergate/internal/repos"
)

// SessionService maps opaque client-held tokens to identities. Tokens
// are random v4 UUIDs, so there is no signing secret; a tampered token
// simply fails to resolve. Sessions have no expiry.
type SessionService struct {
	Sessions *repos.SessionRepo
}

func (s *SessionService) Establish(sid, userID string) error {
	return s.Sessions.Bind(sid, userID)
}

// Resolve never fails: an unknown or unbound token is Anonymous.
func (s *SessionService) Resolve(sid string) domain.Identity {
	if sid == "" {
		return domain.Anonymous
	}
	uid, err := s.Sessions.UserID(sid)
	if err != nil || uid == "" {
		return domain.Anonymous
	}
	return domain.Authenticated(uid)
}

func (s *SessionService) Terminate(sid string) error {
	return s.Sessions.Unbind(sid)
}
