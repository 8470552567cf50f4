package router

import (
	"sync"

	"github.com/taskman/client-go/internal/stream"
	"go.uber.org/zap"
)

// Navigation targets consumed and produced by the session core.
const (
	Home         = "/"
	Login        = "/login"
	Register     = "/register"
	AccessDenied = "/access-denied"
	Tasks        = "/tasks"
	Categories   = "/categories"
	Admin        = "/admin"
)

// Guard is evaluated before entering a protected route. It returns the
// path to redirect to when navigation is denied. Guards are pure checks
// against current session state; they never perform network calls.
type Guard func() (redirect string, allowed bool)

// Router keeps the registered routes, their guards and the current
// location. Navigating to the current location is a no-op, never an error.
type Router struct {
	mux     sync.RWMutex
	guards  map[string][]Guard
	current *stream.Value[string]
	logger  *zap.Logger
}

type Option func(*Router)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

func New(options ...Option) *Router {
	ret := &Router{
		guards:  map[string][]Guard{},
		current: stream.NewValue(Home),
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	for _, path := range []string{Home, Login, Register, AccessDenied} {
		ret.guards[path] = nil
	}
	return ret
}

// Register adds a route with optional guards. Registering an existing
// route replaces its guards.
func (r *Router) Register(path string, guards ...Guard) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.guards[path] = guards
}

// Navigate moves to path, running its guards first. A denied guard
// redirects instead; an unregistered path falls back to Home. The return
// value reports whether the requested destination was entered.
func (r *Router) Navigate(path string) bool {
	r.mux.RLock()
	guards, known := r.guards[path]
	r.mux.RUnlock()

	if !known {
		r.logger.Debug("unknown route", zap.String("path", path))
		r.current.Set(Home)
		return false
	}
	for _, guard := range guards {
		if redirect, allowed := guard(); !allowed {
			r.logger.Debug("navigation denied",
				zap.String("path", path), zap.String("redirect", redirect))
			r.current.Set(redirect)
			return false
		}
	}
	r.current.Set(path)
	return true
}

// Current returns the current location.
func (r *Router) Current() string {
	return r.current.Get()
}

// Location is the push view of the current location.
func (r *Router) Location() *stream.Value[string] {
	return r.current
}
