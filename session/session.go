package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/taskman/client-go/internal/stream"
	"github.com/taskman/client-go/store"
)

// RoleAdmin is the role claim value that unlocks the admin area.
const RoleAdmin = "ADMIN"

// Session derives logical session facts from the token currently held by
// the store. It keeps no durable state of its own; every read goes back to
// the store so concurrent logout is observed immediately.
//
// The token's claims are decoded without signature verification. This is a
// UI convenience only — authoritative authorization stays server-side.
type Session struct {
	store         store.Store
	parser        *jwt.Parser
	authenticated *stream.Value[bool]
}

func New(s store.Store) *Session {
	_, ok := s.Token()
	return &Session{
		store:         s,
		parser:        jwt.NewParser(),
		authenticated: stream.NewValue(ok),
	}
}

// IsAuthenticated reports whether a credential is currently stored.
// Presence of a token is the sole client-side signal of "logged in".
func (s *Session) IsAuthenticated() bool {
	_, ok := s.store.Token()
	return ok
}

// Role returns the role claim of the current token, or "" when there is no
// token, the claims do not decode, or the claim is absent. A malformed
// token is a normal "no role" outcome, never an error.
func (s *Session) Role() string {
	claims := s.claims()
	if claims == nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// IsAdmin reports whether the current role is RoleAdmin.
func (s *Session) IsAdmin() bool {
	return s.Role() == RoleAdmin
}

// Subject returns the sub claim of the current token, or "" when absent.
func (s *Session) Subject() string {
	claims := s.claims()
	if claims == nil {
		return ""
	}
	subject, _ := claims.GetSubject()
	return subject
}

// Token exposes the raw stored credential for the transport layer.
func (s *Session) Token() (string, bool) {
	return s.store.Token()
}

// Login persists the token and publishes the authenticated transition.
func (s *Session) Login(token string) error {
	if err := s.store.SaveToken(token); err != nil {
		return err
	}
	s.authenticated.Set(true)
	return nil
}

// Logout clears the stored credential. Clearing an absent credential is a
// no-op, so concurrent logouts are safe.
func (s *Session) Logout() error {
	if err := s.store.ClearToken(); err != nil {
		return err
	}
	s.authenticated.Set(false)
	return nil
}

// Authenticated is the push view of IsAuthenticated, emitting on login and
// logout transitions.
func (s *Session) Authenticated() *stream.Value[bool] {
	return s.authenticated
}

func (s *Session) claims() jwt.MapClaims {
	token, ok := s.store.Token()
	if !ok || token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}
