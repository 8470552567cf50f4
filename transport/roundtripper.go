package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/taskman/client-go/loading"
	"github.com/taskman/client-go/router"
	"github.com/taskman/client-go/session"
	"go.uber.org/zap"
)

// RoundTripper is the pipeline stage between the resource clients and the
// network transport. It attaches the current credential, brackets the
// round trip with the loading coordinator, and reacts to authorization
// failures: 401 tears the session down and redirects to login, 403
// redirects to access-denied. The response is always handed back
// unchanged, so per-call status handling downstream still runs.
type RoundTripper struct {
	session   *session.Session
	loading   *loading.Coordinator
	router    *router.Router
	transport http.RoundTripper
	logger    *zap.Logger
}

func New(session *session.Session, options ...Option) *RoundTripper {
	ret := &RoundTripper{
		session:   session,
		loading:   loading.NewCoordinator(),
		router:    router.New(),
		transport: http.DefaultTransport,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Loading exposes the coordinator bracketing every round trip.
func (r *RoundTripper) Loading() *loading.Coordinator {
	return r.loading
}

// Router exposes the navigator the interceptor redirects through.
func (r *RoundTripper) Router() *router.Router {
	return r.router
}

func (r *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	r.loading.Enter()
	defer r.loading.Leave()

	next := clone(req)
	if token, ok := r.session.Token(); ok && token != "" {
		next.Header.Set("Authorization", "Bearer "+token)
	}
	if next.Header.Get("X-Request-Id") == "" {
		next.Header.Set("X-Request-Id", uuid.NewString())
	}

	resp, err := r.transport.RoundTrip(next)
	if err != nil {
		r.logger.Debug("transport failure",
			zap.String("url", req.URL.String()), zap.Error(err))
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		// invalid or expired credential: tear down and send to login;
		// both steps are idempotent under concurrent 401s
		_ = r.session.Logout()
		r.router.Navigate(router.Login)
		r.logger.Debug("unauthorized, session cleared",
			zap.String("url", req.URL.String()))
	case http.StatusForbidden:
		r.router.Navigate(router.AccessDenied)
		r.logger.Debug("forbidden", zap.String("url", req.URL.String()))
	}
	return resp, nil
}
