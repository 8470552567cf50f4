package router

import "github.com/taskman/client-go/session"

// RequireAuth allows navigation only for an authenticated session,
// redirecting to the login view otherwise.
func RequireAuth(s *session.Session) Guard {
	return func() (string, bool) {
		if !s.IsAuthenticated() {
			return Login, false
		}
		return "", true
	}
}

// RequireAdmin is the stricter predicate for admin-only views:
// unauthenticated sessions go to login, authenticated non-admins to
// access-denied. A malformed token yields no role and is treated as
// non-admin rather than an error.
func RequireAdmin(s *session.Session) Guard {
	return func() (string, bool) {
		if !s.IsAuthenticated() {
			return Login, false
		}
		if !s.IsAdmin() {
			return AccessDenied, false
		}
		return "", true
	}
}
