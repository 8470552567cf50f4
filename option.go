package taskman

import (
	"net/http"

	"github.com/taskman/client-go/store"
	"go.uber.org/zap"
)

// Option configures the Client before its transport is wired.
type Option func(*Client)

// WithStore sets the credential/preference store. Pass a store.FileStore
// to survive restarts; the default is in-memory.
func WithStore(s store.Store) Option {
	return func(c *Client) {
		c.store = s
	}
}

// WithTransport sets the transport underneath the request interceptor.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.base = transport
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
