package session

import (
	"errors"

	"golang.org/x/oauth2"
)

// ErrNoCredential is returned by the TokenSource when no token is stored.
var ErrNoCredential = errors.New("no credential")

type tokenSource struct {
	session *Session
}

func (t *tokenSource) Token() (*oauth2.Token, error) {
	token, ok := t.session.Token()
	if !ok {
		return nil, ErrNoCredential
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// TokenSource adapts the session to oauth2.TokenSource so oauth2-aware
// HTTP stacks can consume the stored credential directly.
func (s *Session) TokenSource() oauth2.TokenSource {
	return &tokenSource{session: s}
}
