package transport

import (
	"net/http"

	"github.com/taskman/client-go/loading"
	"github.com/taskman/client-go/router"
	"go.uber.org/zap"
)

type Option func(*RoundTripper)

// WithLoading sets the loading coordinator.
func WithLoading(coordinator *loading.Coordinator) Option {
	return func(t *RoundTripper) {
		t.loading = coordinator
	}
}

// WithRouter sets the navigator used for 401/403 redirects.
func WithRouter(r *router.Router) Option {
	return func(t *RoundTripper) {
		t.router = r
	}
}

// WithTransport sets the underlying transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(t *RoundTripper) {
		t.transport = transport
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *RoundTripper) {
		t.logger = logger
	}
}
