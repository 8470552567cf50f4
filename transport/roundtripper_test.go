package transport

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskman/client-go/router"
	"github.com/taskman/client-go/session"
	"github.com/taskman/client-go/store"
)

func newFixture(t *testing.T, status int, token string) (*http.Client, *session.Session, *RoundTripper, *httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	var mux sync.Mutex
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		mux.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	backing := store.NewMemoryStore()
	if token != "" {
		backing = store.NewMemoryStore(store.WithToken(token))
	}
	sess := session.New(backing)
	rt := New(sess)
	client := &http.Client{Transport: rt}
	return client, sess, rt, server, &seen
}

func TestRoundTripper_AttachesBearerHeader(t *testing.T) {
	client, _, _, server, seen := newFixture(t, http.StatusOK, "a.b.c")
	resp, err := client.Get(server.URL + "/api/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, []string{"Bearer a.b.c"}, *seen)
}

func TestRoundTripper_UnauthenticatedRequestUnmodified(t *testing.T) {
	client, _, _, server, seen := newFixture(t, http.StatusOK, "")
	resp, err := client.Get(server.URL + "/api/auth/login")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, []string{""}, *seen)
}

func TestRoundTripper_SuccessPassesThrough(t *testing.T) {
	client, sess, rt, server, _ := newFixture(t, http.StatusOK, "a.b.c")
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, router.Home, rt.Router().Current())
	assert.False(t, rt.Loading().IsLoading())
}

func TestRoundTripper_UnauthorizedClearsSessionAndRedirects(t *testing.T) {
	client, sess, rt, server, _ := newFixture(t, http.StatusUnauthorized, "a.b.c")
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	// caller still observes the original failure status
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, router.Login, rt.Router().Current())
}

func TestRoundTripper_ForbiddenKeepsCredential(t *testing.T) {
	client, sess, rt, server, _ := newFixture(t, http.StatusForbidden, "a.b.c")
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.True(t, sess.IsAuthenticated())
	token, _ := sess.Token()
	assert.Equal(t, "a.b.c", token)
	assert.Equal(t, router.AccessDenied, rt.Router().Current())
}

func TestRoundTripper_OtherStatusesHaveNoSideEffects(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict} {
		client, sess, rt, server, _ := newFixture(t, status, "a.b.c")
		resp, err := client.Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, status, resp.StatusCode)
		assert.True(t, sess.IsAuthenticated())
		assert.Equal(t, router.Home, rt.Router().Current())
	}
}

func TestRoundTripper_ConcurrentUnauthorized(t *testing.T) {
	client, sess, rt, server, _ := newFixture(t, http.StatusUnauthorized, "a.b.c")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := client.Get(server.URL)
			if err == nil {
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	// double-clear and double-navigate are no-ops, not failures
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, router.Login, rt.Router().Current())
	assert.False(t, rt.Loading().IsLoading())
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestRoundTripper_TransportFailurePairsLoading(t *testing.T) {
	sess := session.New(store.NewMemoryStore(store.WithToken("a.b.c")))
	rt := New(sess, WithTransport(failingTransport{}))
	client := &http.Client{Transport: rt}

	_, err := client.Get("http://unreachable.invalid/")
	require.Error(t, err)

	// the failure is surfaced untouched and leaves no outstanding count
	assert.False(t, rt.Loading().IsLoading())
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, router.Home, rt.Router().Current())
}

func TestRoundTripper_LoadingBusyDuringRequest(t *testing.T) {
	release := make(chan struct{})
	ready := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(ready)
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sess := session.New(store.NewMemoryStore())
	rt := New(sess)
	client := &http.Client{Transport: rt}

	done := make(chan struct{})
	go func() {
		defer close(done)
		resp, err := client.Get(server.URL)
		if err == nil {
			resp.Body.Close()
		}
	}()

	<-ready
	assert.True(t, rt.Loading().IsLoading())
	close(release)
	<-done
	assert.False(t, rt.Loading().IsLoading())
}

func TestRoundTripper_AttachesRequestID(t *testing.T) {
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sess := session.New(store.NewMemoryStore())
	client := &http.Client{Transport: New(sess)}
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, requestID)
}
