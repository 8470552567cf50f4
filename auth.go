package taskman

import (
	"context"
	"net/http"

	"github.com/taskman/client-go/router"
)

var authMessages = map[int]string{
	http.StatusBadRequest:   "Invalid input. Please check your email and password.",
	http.StatusUnauthorized: "Invalid email or password.",
	http.StatusNotFound:     "User not found.",
	http.StatusConflict:     "Email already exists.",
}

// Login authenticates against the service, persists the issued token and
// navigates to the task list.
func (c *Client) Login(ctx context.Context, request AuthRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, request, &response, authMessages); err != nil {
		return nil, err
	}
	if err := c.session.Login(response.Token); err != nil {
		return nil, err
	}
	c.router.Navigate(router.Tasks)
	return &response, nil
}

// Register creates an account; the service logs the new user straight in.
func (c *Client) Register(ctx context.Context, request RegisterRequest) (*AuthResponse, error) {
	var response AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, request, &response, authMessages); err != nil {
		return nil, err
	}
	if err := c.session.Login(response.Token); err != nil {
		return nil, err
	}
	c.router.Navigate(router.Tasks)
	return &response, nil
}

// Logout clears the stored credential and navigates home. Logging out
// while already logged out is a no-op.
func (c *Client) Logout() error {
	if err := c.session.Logout(); err != nil {
		return err
	}
	c.router.Navigate(router.Home)
	return nil
}
