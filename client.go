package taskman

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/taskman/client-go/loading"
	"github.com/taskman/client-go/router"
	"github.com/taskman/client-go/session"
	"github.com/taskman/client-go/store"
	"github.com/taskman/client-go/theme"
	"github.com/taskman/client-go/transport"
	"go.uber.org/zap"
)

// Client is the task-manager client: resource services on top of a shared
// session, router and loading coordinator, with every outbound request
// passing through the credential-attaching interceptor.
type Client struct {
	baseURL string
	http    *http.Client
	base    http.RoundTripper
	store   store.Store
	session *session.Session
	loading *loading.Coordinator
	router  *router.Router
	logger  *zap.Logger

	Tasks      *TaskService
	Categories *CategoryService
	Users      *UserService
	Admin      *AdminService
	Theme      *theme.Manager
}

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("baseURL was empty")
	}
	ret := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		store:   store.NewMemoryStore(),
		base:    http.DefaultTransport,
		logger:  zap.NewNop(),
	}
	for _, opt := range options {
		opt(ret)
	}

	ret.session = session.New(ret.store)
	ret.loading = loading.NewCoordinator()
	ret.router = router.New(router.WithLogger(ret.logger))
	ret.router.Register(router.Tasks, router.RequireAuth(ret.session))
	ret.router.Register(router.Categories, router.RequireAuth(ret.session))
	ret.router.Register(router.Admin, router.RequireAdmin(ret.session))

	interceptor := transport.New(ret.session,
		transport.WithLoading(ret.loading),
		transport.WithRouter(ret.router),
		transport.WithTransport(ret.base),
		transport.WithLogger(ret.logger))
	ret.http = &http.Client{Transport: interceptor}

	ret.Tasks = &TaskService{client: ret}
	ret.Categories = &CategoryService{client: ret}
	ret.Users = &UserService{client: ret}
	ret.Admin = &AdminService{client: ret}
	ret.Theme = theme.New(ret.store)
	return ret, nil
}

// Session exposes the derived session state.
func (c *Client) Session() *session.Session {
	return c.session
}

// Loading exposes the coordinator driving the global progress indicator.
func (c *Client) Loading() *loading.Coordinator {
	return c.loading
}

// Router exposes the navigator with the registered access gates.
func (c *Client) Router() *router.Router {
	return c.router
}

// Store exposes the durable client-side key-value area.
func (c *Client) Store() store.Store {
	return c.store
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, messages map[int]string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	URL := c.baseURL + path
	if len(query) > 0 {
		URL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, URL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(data) == 0 {
			return nil
		}
		return json.Unmarshal(data, out)
	}
	return statusError(resp.StatusCode, data, messages)
}
